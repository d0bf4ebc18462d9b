package api

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries optional profile fields; absent fields keep their
// stored value.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
}

// CreateTeamRequest is the team creation payload.
type CreateTeamRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	Tasks       []string `json:"tasks"`
}

// UpdateTeamRequest carries optional team fields.
type UpdateTeamRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Members     *[]string `json:"members"`
	Tasks       *[]string `json:"tasks"`
}

// CreateProjectRequest is the project creation payload.
type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}

// UpdateProjectRequest carries optional project fields.
type UpdateProjectRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Tasks       *[]string `json:"tasks"`
}

// CreateTaskRequest is the task creation payload.
type CreateTaskRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Stage       *string  `json:"stage"`
	Priority    string   `json:"priority"`
	Owners      []string `json:"owners"`
	Accountable []string `json:"accountable"`
	Subscribers []string `json:"subscribers"`
	ProjectID   *string  `json:"projectId"`
}

// UpdateTaskRequest carries the updatable task fields. Stage is not part of
// the update payload.
type UpdateTaskRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	Owners      *[]string `json:"owners"`
	Accountable *[]string `json:"accountable"`
	Subscribers *[]string `json:"subscribers"`
}

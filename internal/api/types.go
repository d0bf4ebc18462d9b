// Package api defines the transport request/response types.
package api

import "time"

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	// CodeInvalidArgument signals malformed or missing input.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeNotFound signals a missing resource.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeEmailExists signals a duplicate registration email.
	CodeEmailExists ErrorCode = "EMAIL_EXISTS"
	// CodeUnauthorized signals failed authentication.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// CodeInternal signals an unexpected failure.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorBody carries the code/message pair of a failed request.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// User is the transport representation of a user. The password hash is never
// serialized.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Team is the transport representation of a team.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	Tasks       []string  `json:"tasks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Task is the transport representation of a task.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Stage       *string   `json:"stage,omitempty"`
	Priority    string    `json:"priority"`
	Owners      []string  `json:"owners"`
	Accountable []string  `json:"accountable"`
	Subscribers []string  `json:"subscribers"`
	ProjectID   *string   `json:"projectId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Project is the transport representation of a project. Tasks is the id list
// declared on the project itself; ProjectTasks is the foreign-key include.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Tasks        []string  `json:"tasks"`
	ProjectTasks []Task    `json:"projectTasks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credentials is the register response payload.
type Credentials struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

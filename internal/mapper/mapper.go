// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/entities"
)

// ToAPIUser maps entities.User to transport model, dropping the hash.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAPIUserList maps a slice of entities.User to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	return api.Team{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Members:     emptyIfNil(t.Members),
		Tasks:       emptyIfNil(t.Tasks),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToAPITeamList maps a slice of entities.Team to transport slice.
func ToAPITeamList(list []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	var stage *string
	if t.Stage != nil {
		s := string(*t.Stage)
		stage = &s
	}
	return api.Task{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		Stage:       stage,
		Priority:    string(t.Priority),
		Owners:      emptyIfNil(t.Owners),
		Accountable: emptyIfNil(t.Accountable),
		Subscribers: emptyIfNil(t.Subscribers),
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToAPITaskList maps a slice of entities.Task to transport slice.
func ToAPITaskList(list []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}

// ToAPIProject maps entities.Project to transport model, include attached.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Tasks:        emptyIfNil(p.TaskIDs),
		ProjectTasks: ToAPITaskList(p.ProjectTasks),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToAPIProjectList maps a slice of entities.Project to transport slice.
func ToAPIProjectList(list []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// FromRegisterRequest builds an entities.User from the registration payload.
func FromRegisterRequest(req api.RegisterRequest) entities.User {
	return entities.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entities.Role(req.Role),
	}
}

// FromUpdateUserRequest builds a partial user update.
func FromUpdateUserRequest(req api.UpdateUserRequest) entities.UserUpdate {
	upd := entities.UserUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Role != nil {
		role := entities.Role(*req.Role)
		upd.Role = &role
	}
	return upd
}

// FromCreateTeamRequest builds an entities.Team from the creation payload.
func FromCreateTeamRequest(req api.CreateTeamRequest) entities.Team {
	return entities.Team{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		Tasks:       req.Tasks,
	}
}

// FromUpdateTeamRequest builds a partial team update.
func FromUpdateTeamRequest(req api.UpdateTeamRequest) entities.TeamUpdate {
	return entities.TeamUpdate{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		Tasks:       req.Tasks,
	}
}

// FromCreateProjectRequest builds an entities.Project from the creation payload.
func FromCreateProjectRequest(req api.CreateProjectRequest) entities.Project {
	return entities.Project{
		Name:        req.Name,
		Description: req.Description,
		TaskIDs:     req.Tasks,
	}
}

// FromUpdateProjectRequest builds a partial project update.
func FromUpdateProjectRequest(req api.UpdateProjectRequest) entities.ProjectUpdate {
	return entities.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		TaskIDs:     req.Tasks,
	}
}

// FromCreateTaskRequest builds an entities.Task from the creation payload.
func FromCreateTaskRequest(req api.CreateTaskRequest) entities.Task {
	var stage *entities.TaskStage
	if req.Stage != nil {
		s := entities.TaskStage(*req.Stage)
		stage = &s
	}
	return entities.Task{
		Name:        req.Name,
		Description: req.Description,
		Status:      entities.TaskStatus(req.Status),
		Stage:       stage,
		Priority:    entities.TaskPriority(req.Priority),
		Owners:      req.Owners,
		Accountable: req.Accountable,
		Subscribers: req.Subscribers,
		ProjectID:   req.ProjectID,
	}
}

// FromUpdateTaskRequest builds a partial task update.
func FromUpdateTaskRequest(req api.UpdateTaskRequest) entities.TaskUpdate {
	upd := entities.TaskUpdate{
		Name:        req.Name,
		Description: req.Description,
		Owners:      req.Owners,
		Accountable: req.Accountable,
		Subscribers: req.Subscribers,
	}
	if req.Status != nil {
		status := entities.TaskStatus(*req.Status)
		upd.Status = &status
	}
	if req.Priority != nil {
		priority := entities.TaskPriority(*req.Priority)
		upd.Priority = &priority
	}
	return upd
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

package domain

import (
	"context"
	"time"

	"github.com/DickensJuma/asha-pm/internal/auth"
	"github.com/DickensJuma/asha-pm/internal/entities"
	"github.com/DickensJuma/asha-pm/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	creds   *auth.Credentials
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	creds *auth.Credentials,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		creds:   creds,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func validRole(r entities.Role) bool {
	return r == entities.RoleAdmin || r == entities.RoleUser
}

func validStatus(s entities.TaskStatus) bool {
	return s == entities.StatusOpen || s == entities.StatusClosed
}

func validStage(s entities.TaskStage) bool {
	switch s {
	case entities.StageBacklog, entities.StageTodo, entities.StageInProgress,
		entities.StageDone, entities.StageArchive:
		return true
	}
	return false
}

func validPriority(p entities.TaskPriority) bool {
	switch p {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh:
		return true
	}
	return false
}

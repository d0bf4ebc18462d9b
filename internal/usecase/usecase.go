package usecase

import (
	"context"
	"time"

	"github.com/DickensJuma/asha-pm/internal/auth"
	"github.com/DickensJuma/asha-pm/internal/repository"
	"github.com/DickensJuma/asha-pm/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TeamUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, creds *auth.Credentials, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, creds, timeout)
}

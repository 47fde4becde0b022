package services

import (
	"github.com/ku-alexej/shareit/pkg/app"
	"github.com/ku-alexej/shareit/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the user context.
type Services struct {
	User *UserService
}

// New wires the user services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		User: NewUserService(repo),
	}
}

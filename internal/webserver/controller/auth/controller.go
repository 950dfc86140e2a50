package auth

import (
	"time"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

type authRepository interface {
	FindByEmail(email string) (*model.User, error)
}

type Config struct {
	Secret         []byte
	SessionTimeout time.Duration
}

type Controller struct {
	repository authRepository
	config     Config
}

func NewController(repository authRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}

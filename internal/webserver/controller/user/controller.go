package user

import (
	"github.com/cloudkeep/cloudkeep/internal/invitation"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

type invitationsService interface {
	Invite(accountID uint, email string, expirationDays int, sender invitation.Sender) (*model.Invitation, error)
	ListPending(accountID uint) ([]model.Invitation, error)
	Delete(invitationID uint) error
	Redeem(code string, user *model.User) (*model.Invitation, error)
}

type usersRepository interface {
	FindByUuid(uuid string) (*model.User, error)
}

type Config struct {
	// DefaultExpirationDays applies when an invite request does not name
	// its own expiration.
	DefaultExpirationDays int
}

type Controller struct {
	invitations invitationsService
	users       usersRepository
	sender      invitation.Sender
	config      Config
}

func NewController(invitations invitationsService, users usersRepository, sender invitation.Sender, cfg Config) *Controller {
	return &Controller{
		invitations: invitations,
		users:       users,
		sender:      sender,
		config:      cfg,
	}
}

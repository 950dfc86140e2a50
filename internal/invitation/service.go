package invitation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

// ErrExpired signals a redemption attempted at or after the invitation's
// expiration date. Expired invitations are not retried.
var ErrExpired = errors.New("invitation expired")

type Sender interface {
	Send(address, subject, body string) error
}

type invitationsRepository interface {
	Create(invitation *model.Invitation) error
	FindByCode(code string) (*model.Invitation, error)
	FindByAccount(accountID uint) ([]model.Invitation, error)
	Delete(id uint) error
}

type membershipsRepository interface {
	Add(accountID, userID uint, role string) error
}

type Config struct {
	// Endpoint is the externally reachable base URL embedded in redemption
	// links, e.g. https://console.cloudkeep.example.
	Endpoint string
}

// Service issues and redeems time-limited, single-use account invitations.
// It applies no retry policy of its own; storage-level failures surface to
// the caller as-is.
type Service struct {
	invitations invitationsRepository
	memberships membershipsRepository
	config      Config
}

func NewService(invitations invitationsRepository, memberships membershipsRepository, cfg Config) *Service {
	return &Service{
		invitations: invitations,
		memberships: memberships,
		config:      cfg,
	}
}

// Invite persists an invitation expiring expirationDays days from now and
// mails the redemption link to the invited address.
func (s *Service) Invite(accountID uint, email string, expirationDays int, sender Sender) (*model.Invitation, error) {
	created := time.Now().UTC()

	invitation := &model.Invitation{
		AccountID:      accountID,
		UserEmail:      email,
		ExpirationDate: created.Add(time.Duration(expirationDays) * 24 * time.Hour),
		RedemptionCode: uuid.NewString(),
	}
	invitation.CreatedAt = created

	if err := s.invitations.Create(invitation); err != nil {
		return nil, err
	}

	if err := sender.Send(email, invitation.Subject(), invitation.Body(s.config.Endpoint)); err != nil {
		return nil, err
	}
	return invitation, nil
}

// ListPending returns every stored invitation for the account. No expiry
// filtering happens here; expiration is enforced at redemption time.
func (s *Service) ListPending(accountID uint) ([]model.Invitation, error) {
	return s.invitations.FindByAccount(accountID)
}

// Delete removes an invitation unconditionally.
func (s *Service) Delete(invitationID uint) error {
	return s.invitations.Delete(invitationID)
}

// Redeem grants the user membership of the inviting account and consumes
// the invitation. Redemption is valid strictly before the expiration date.
func (s *Service) Redeem(code string, user *model.User) (*model.Invitation, error) {
	invitation, err := s.invitations.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if invitation.Expired(time.Now().UTC()) {
		return nil, ErrExpired
	}

	if err := s.memberships.Add(invitation.AccountID, user.ID, model.MembershipMember); err != nil {
		return nil, err
	}
	if err := s.invitations.Delete(invitation.ID); err != nil {
		return nil, err
	}
	return invitation, nil
}

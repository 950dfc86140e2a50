package account

import (
	"errors"
	"fmt"
	"log"

	"github.com/cloudkeep/cloudkeep/internal/instance"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

var (
	// ErrSubdomainAlreadyExists signals a uniqueness violation on account
	// creation. The caller is expected to offer an alternate subdomain,
	// not to retry the same one.
	ErrSubdomainAlreadyExists = errors.New("subdomain already in use")

	// ErrAccountCancelled is returned when a status transition is requested
	// on a cancelled account. Cancellation is terminal.
	ErrAccountCancelled = errors.New("account is cancelled")
)

type accountsRepository interface {
	Create(account *model.Account) error
	FindByID(id uint) (*model.Account, error)
	FindLiveBySubdomain(subdomain string) (*model.Account, error)
	Save(account *model.Account) error
}

type instancesRepository interface {
	FindByAccount(accountID uint) ([]model.Instance, error)
}

type membershipsRepository interface {
	Add(accountID, userID uint, role string) error
}

type sender interface {
	SendBCC(addresses []string, subject, body string) error
}

// CreationInfo carries the user-supplied details of a new account.
type CreationInfo struct {
	Subdomain   string
	OrgName     string
	Department  string
	ServicePlan string
}

type Config struct {
	// AdminAddresses receives operational notices such as cancellations.
	AdminAddresses []string
}

// Service owns the account status state machine: pending -> active <->
// inactive, with active|inactive -> cancelled as the terminal transition.
type Service struct {
	accounts    accountsRepository
	instances   instancesRepository
	memberships membershipsRepository
	sender      sender
	config      Config
}

func NewService(accounts accountsRepository, instances instancesRepository, memberships membershipsRepository, sender sender, cfg Config) *Service {
	return &Service{
		accounts:    accounts,
		instances:   instances,
		memberships: memberships,
		sender:      sender,
		config:      cfg,
	}
}

// Create allocates a new pending account and attaches the owning user with
// the owner role. The subdomain must not be held by any non-cancelled
// account.
func (s *Service) Create(info CreationInfo, owner *model.User) (*model.Account, error) {
	existing, err := s.accounts.FindLiveBySubdomain(info.Subdomain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSubdomainAlreadyExists
	}

	account := &model.Account{
		Subdomain:   info.Subdomain,
		OrgName:     info.OrgName,
		Department:  info.Department,
		ServicePlan: info.ServicePlan,
		Status:      model.StatusPending,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}
	if err := s.memberships.Add(account.ID, owner.ID, model.MembershipOwner); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Get(id uint) (*model.Account, error) {
	return s.accounts.FindByID(id)
}

// Activate transitions the account to active. A stale optimistic-lock
// counter surfaces model.ErrConcurrentUpdate; the caller must reload and
// retry.
func (s *Service) Activate(id uint) (*model.Account, error) {
	return s.transition(id, model.StatusActive)
}

// Deactivate transitions the account to inactive.
func (s *Service) Deactivate(id uint) (*model.Account, error) {
	return s.transition(id, model.StatusInactive)
}

// Cancel marks the account cancelled and notifies the administrative
// recipients. It refuses to touch the account while a live instance exists.
func (s *Service) Cancel(id uint, requestingUser *model.User) error {
	account, err := s.accounts.FindByID(id)
	if err != nil {
		return err
	}

	instances, err := s.instances.FindByAccount(id)
	if err != nil {
		return err
	}
	if len(instances) > 0 {
		return fmt.Errorf("cannot cancel account %q while an instance is running: %w",
			account.Subdomain, instance.ErrNotAvailable)
	}

	account.Status = model.StatusCancelled
	if err := s.accounts.Save(account); err != nil {
		return err
	}

	subject := "CloudKeep Account Cancelled"
	body := fmt.Sprintf("Account with subdomain %s has been cancelled at the request of %s.",
		account.Subdomain, requestingUser.Email)
	if err := s.sender.SendBCC(s.config.AdminAddresses, subject, body); err != nil {
		log.Printf("error sending cancellation notice for account %d: %s\n", id, err)
	}
	return nil
}

func (s *Service) transition(id uint, status string) (*model.Account, error) {
	account, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !account.Live() {
		return nil, ErrAccountCancelled
	}

	account.Status = status
	if err := s.accounts.Save(account); err != nil {
		return nil, err
	}
	return account, nil
}

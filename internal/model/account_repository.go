package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

func (a *AccountRepository) Create(account *Account) error {
	if result := a.DB.Create(account); result.Error != nil {
		log.Printf("error creating account: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (a *AccountRepository) FindByID(id uint) (*Account, error) {
	var account Account

	result := a.DB.First(&account, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &account, nil
}

// FindLiveBySubdomain returns the non-cancelled account holding the given
// subdomain, or nil if the subdomain is free. Cancelled accounts do not
// reserve their subdomain.
func (a *AccountRepository) FindLiveBySubdomain(subdomain string) (*Account, error) {
	var account Account

	result := a.DB.Where("subdomain = ? AND status <> ?", subdomain, StatusCancelled).First(&account)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &account, nil
}

// Save persists the account conditioned on its counter being unchanged since
// load. On success the in-memory counter is bumped along with the stored one;
// a stale counter leaves the row untouched and returns ErrConcurrentUpdate.
func (a *AccountRepository) Save(account *Account) error {
	loaded := account.Counter

	result := a.DB.Model(&Account{}).
		Where("id = ? AND counter = ?", account.ID, loaded).
		Updates(map[string]interface{}{
			"subdomain":    account.Subdomain,
			"org_name":     account.OrgName,
			"department":   account.Department,
			"service_plan": account.ServicePlan,
			"status":       account.Status,
			"counter":      loaded + 1,
		})
	if result.Error != nil {
		log.Printf("error updating account %d: %s\n", account.ID, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	account.Counter = loaded + 1
	return nil
}

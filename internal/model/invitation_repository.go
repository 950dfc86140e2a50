package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func (i *InvitationRepository) Create(invitation *Invitation) error {
	if result := i.DB.Create(invitation); result.Error != nil {
		log.Printf("error creating invitation: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (i *InvitationRepository) FindByCode(code string) (*Invitation, error) {
	var invitation Invitation

	result := i.DB.Where("redemption_code = ?", code).First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrInvitationNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &invitation, nil
}

// FindByAccount returns every stored invitation for the account. Expired
// invitations are included, expiry is enforced at redemption time only.
func (i *InvitationRepository) FindByAccount(accountID uint) ([]Invitation, error) {
	var invitations []Invitation

	result := i.DB.Where("account_id = ?", accountID).Order("id ASC").Find(&invitations)
	if result.Error != nil {
		log.Printf("error listing invitations for account %d: %s\n", accountID, result.Error)
		return nil, result.Error
	}
	return invitations, nil
}

func (i *InvitationRepository) Delete(id uint) error {
	result := i.DB.Delete(&Invitation{}, id)
	if result.Error != nil {
		log.Printf("error deleting invitation %d: %s\n", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

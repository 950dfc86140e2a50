package model

import (
	"log"

	"gorm.io/gorm"
)

type MembershipRepository struct {
	DB *gorm.DB
}

func (m *MembershipRepository) Add(accountID, userID uint, role string) error {
	membership := &AccountUser{
		AccountID: accountID,
		UserID:    userID,
		Role:      role,
	}
	if result := m.DB.Create(membership); result.Error != nil {
		log.Printf("error attaching user %d to account %d: %s\n", userID, accountID, result.Error)
		return result.Error
	}
	return nil
}

func (m *MembershipRepository) FindByAccount(accountID uint) ([]AccountUser, error) {
	var memberships []AccountUser

	result := m.DB.Where("account_id = ?", accountID).Order("id ASC").Find(&memberships)
	if result.Error != nil {
		log.Printf("error listing members of account %d: %s\n", accountID, result.Error)
		return nil, result.Error
	}
	return memberships, nil
}

package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type BindingRepository struct {
	DB *gorm.DB
}

func (b *BindingRepository) Create(binding *StorageBinding) error {
	if result := b.DB.Create(binding); result.Error != nil {
		log.Printf("error creating storage binding: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (b *BindingRepository) FindByID(id uint) (*StorageBinding, error) {
	var binding StorageBinding

	result := b.DB.First(&binding, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrBindingNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &binding, nil
}

// FindByAccount returns the account's bindings, primary first.
func (b *BindingRepository) FindByAccount(accountID uint) ([]StorageBinding, error) {
	var bindings []StorageBinding

	result := b.DB.Where("account_id = ?", accountID).Order("`primary` DESC, id ASC").Find(&bindings)
	if result.Error != nil {
		log.Printf("error listing storage bindings for account %d: %s\n", accountID, result.Error)
		return nil, result.Error
	}
	return bindings, nil
}

// Delete removes a binding. Removal is single-use: deleting an id a second
// time reports ErrBindingNotFound.
func (b *BindingRepository) Delete(id uint) error {
	result := b.DB.Delete(&StorageBinding{}, id)
	if result.Error != nil {
		log.Printf("error deleting storage binding %d: %s\n", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBindingNotFound
	}
	return nil
}

package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type InstanceRepository struct {
	DB *gorm.DB
}

func (i *InstanceRepository) Create(instance *Instance) error {
	if result := i.DB.Create(instance); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateInstance
		}
		log.Printf("error creating instance: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (i *InstanceRepository) FindByID(id uint) (*Instance, error) {
	var instance Instance

	result := i.DB.First(&instance, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrInstanceNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &instance, nil
}

func (i *InstanceRepository) FindByAccount(accountID uint) ([]Instance, error) {
	var instances []Instance

	result := i.DB.Where("account_id = ?", accountID).Order("id ASC").Find(&instances)
	if result.Error != nil {
		log.Printf("error listing instances for account %d: %s\n", accountID, result.Error)
		return nil, result.Error
	}
	return instances, nil
}

func (i *InstanceRepository) Save(instance *Instance) error {
	if result := i.DB.Model(&Instance{}).
		Where("id = ?", instance.ID).
		Updates(map[string]interface{}{
			"host_name":            instance.HostName,
			"provider_instance_id": instance.ProviderInstanceID,
			"version":              instance.Version,
			"initialized":          instance.Initialized,
			"state":                instance.State,
		}); result.Error != nil {
		log.Printf("error updating instance %d: %s\n", instance.ID, result.Error)
		return result.Error
	}
	return nil
}

func (i *InstanceRepository) Delete(id uint) error {
	result := i.DB.Delete(&Instance{}, id)
	if result.Error != nil {
		log.Printf("error deleting instance %d: %s\n", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInstanceNotFound
	}
	return nil
}

package model_test

import (
	"errors"
	"testing"

	"github.com/cloudkeep/cloudkeep/internal/infrastructure"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

func TestBindingOrdering(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	repo := &model.BindingRepository{DB: db}

	secondary := &model.StorageBinding{AccountID: 1, ProviderAccountID: "sec-1", ProviderType: "glacier"}
	if err := repo.Create(secondary); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	primary := &model.StorageBinding{AccountID: 1, ProviderAccountID: "pri-1", ProviderType: "s3", Primary: true}
	if err := repo.Create(primary); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	bindings, err := repo.FindByAccount(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("Expected 2 bindings, got %d", len(bindings))
	}
	if !bindings[0].Primary {
		t.Errorf("Expected the primary binding first, got %s", bindings[0].ProviderAccountID)
	}
}

func TestBindingDeleteTwice(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	repo := &model.BindingRepository{DB: db}

	binding := &model.StorageBinding{AccountID: 1, ProviderAccountID: "sec-1", ProviderType: "glacier"}
	if err := repo.Create(binding); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := repo.Delete(binding.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.Delete(binding.ID); !errors.Is(err, model.ErrBindingNotFound) {
		t.Errorf("Expected ErrBindingNotFound on second delete, got %v", err)
	}
}

package model_test

import (
	"errors"
	"testing"

	"github.com/cloudkeep/cloudkeep/internal/infrastructure"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

func TestVersionedSave(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	repo := &model.AccountRepository{DB: db}

	account := &model.Account{Subdomain: "acme", ServicePlan: model.PlanProfessional, Status: model.StatusPending}
	if err := repo.Create(account); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("Saving bumps the counter", func(t *testing.T) {
		loaded, err := repo.FindByID(account.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		loaded.Status = model.StatusActive
		if err := repo.Save(loaded); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if loaded.Counter != 1 {
			t.Errorf("Expected counter 1, got %d", loaded.Counter)
		}

		stored, err := repo.FindByID(account.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if stored.Status != model.StatusActive {
			t.Errorf("Expected status %s, got %s", model.StatusActive, stored.Status)
		}
		if stored.Counter != 1 {
			t.Errorf("Expected stored counter 1, got %d", stored.Counter)
		}
	})

	t.Run("Saving with a stale counter is rejected", func(t *testing.T) {
		first, err := repo.FindByID(account.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		second, err := repo.FindByID(account.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		first.Status = model.StatusInactive
		if err := repo.Save(first); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		second.Status = model.StatusActive
		if err := repo.Save(second); !errors.Is(err, model.ErrConcurrentUpdate) {
			t.Errorf("Expected ErrConcurrentUpdate, got %v", err)
		}

		stored, err := repo.FindByID(account.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if stored.Status != model.StatusInactive {
			t.Errorf("Lost update: expected status %s, got %s", model.StatusInactive, stored.Status)
		}
	})
}

func TestFindLiveBySubdomain(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	repo := &model.AccountRepository{DB: db}

	account := &model.Account{Subdomain: "acme", Status: model.StatusActive}
	if err := repo.Create(account); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("Live accounts hold their subdomain", func(t *testing.T) {
		found, err := repo.FindLiveBySubdomain("acme")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found == nil || found.ID != account.ID {
			t.Errorf("Expected account %d, got %v", account.ID, found)
		}
	})

	t.Run("Cancelled accounts free their subdomain", func(t *testing.T) {
		loaded, err := repo.FindByID(account.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		loaded.Status = model.StatusCancelled
		if err := repo.Save(loaded); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		found, err := repo.FindLiveBySubdomain("acme")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("Expected no live account for subdomain, got %d", found.ID)
		}
	})

	t.Run("Unknown subdomains are free", func(t *testing.T) {
		found, err := repo.FindLiveBySubdomain("unknown")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("Expected no account, got %d", found.ID)
		}
	})
}

func TestFindByIDUnknownAccount(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	repo := &model.AccountRepository{DB: db}

	if _, err := repo.FindByID(99); !errors.Is(err, model.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

package webserver_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cloudkeep/cloudkeep/internal/infrastructure"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

type invitationResponse struct {
	ID             uint
	AccountID      uint
	UserEmail      string
	ExpirationDate time.Time
	RedemptionCode string
}

func TestUserInvitation(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock)
	token := login(t, app, "admin@example.com", "admin")

	createAccount(t, app, token, "acme")

	t.Run("An invalid email address is rejected", func(t *testing.T) {
		response := request(t, app, http.MethodPost, "/accounts/1/invitations", token, `{"email": "not-an-address"}`)
		if response.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status %d, received %d", http.StatusBadRequest, response.StatusCode)
		}
	})

	var invited invitationResponse
	t.Run("Invite a user", func(t *testing.T) {
		response := request(t, app, http.MethodPost, "/accounts/1/invitations", token, `{"email": "member@example.com", "expiration_days": 7}`)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("Expected status %d, received %d", http.StatusCreated, response.StatusCode)
		}
		decode(t, response, &invited)

		expected := 7 * 24 * time.Hour
		if lifetime := invited.ExpirationDate.Sub(time.Now().UTC()); lifetime > expected || lifetime < expected-time.Minute {
			t.Errorf("Expected the invitation to expire in %s, expires in %s", expected, lifetime)
		}
	})

	t.Run("The redemption link is mailed to the invitee", func(t *testing.T) {
		if !smtpMock.CalledSend() {
			t.Fatal("Expected an invitation email to be sent")
		}
		if smtpMock.LastAddress() != "member@example.com" {
			t.Errorf("Unexpected recipient %s", smtpMock.LastAddress())
		}
		if !strings.Contains(smtpMock.LastBody(), "/users/redeem/"+invited.RedemptionCode) {
			t.Error("Expected the email body to carry the redemption link")
		}
	})

	t.Run("List the account's invitations", func(t *testing.T) {
		response := request(t, app, http.MethodGet, "/accounts/1/invitations", token, "")
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected status %d, received %d", http.StatusOK, response.StatusCode)
		}

		var invitations []invitationResponse
		decode(t, response, &invitations)
		if len(invitations) != 1 || invitations[0].UserEmail != "member@example.com" {
			t.Errorf("Unexpected invitations %+v", invitations)
		}
	})

	t.Run("Redeem the invitation", func(t *testing.T) {
		addRegularUser(t, db, "member@example.com", "secret")
		memberToken := login(t, app, "member@example.com", "secret")

		response := request(t, app, http.MethodPost, "/users/redeem/"+invited.RedemptionCode, memberToken, "")
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected status %d, received %d", http.StatusOK, response.StatusCode)
		}

		var redeemed struct {
			AccountID uint `json:"account_id"`
		}
		decode(t, response, &redeemed)
		if redeemed.AccountID != 1 {
			t.Errorf("Expected account 1, got %d", redeemed.AccountID)
		}
	})

	t.Run("A redeemed invitation is gone", func(t *testing.T) {
		memberToken := login(t, app, "member@example.com", "secret")

		response := request(t, app, http.MethodPost, "/users/redeem/"+invited.RedemptionCode, memberToken, "")
		if response.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status %d, received %d", http.StatusNotFound, response.StatusCode)
		}
	})

	t.Run("An expired invitation cannot be redeemed", func(t *testing.T) {
		invitations := &model.InvitationRepository{DB: db}
		expired := &model.Invitation{
			AccountID:      1,
			UserEmail:      "member@example.com",
			ExpirationDate: time.Now().UTC().Add(-time.Hour),
			RedemptionCode: "expired-code",
		}
		if err := invitations.Create(expired); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		memberToken := login(t, app, "member@example.com", "secret")
		response := request(t, app, http.MethodPost, "/users/redeem/expired-code", memberToken, "")
		if response.StatusCode != http.StatusGone {
			t.Errorf("Expected status %d, received %d", http.StatusGone, response.StatusCode)
		}
	})

	t.Run("Delete an invitation", func(t *testing.T) {
		response := request(t, app, http.MethodPost, "/accounts/1/invitations", token, `{"email": "other@example.com"}`)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("Expected status %d, received %d", http.StatusCreated, response.StatusCode)
		}
		var created invitationResponse
		decode(t, response, &created)

		response = request(t, app, http.MethodDelete, fmt.Sprintf("/accounts/1/invitations/%d", created.ID), token, "")
		if response.StatusCode != http.StatusNoContent {
			t.Fatalf("Expected status %d, received %d", http.StatusNoContent, response.StatusCode)
		}

		response = request(t, app, http.MethodDelete, fmt.Sprintf("/accounts/1/invitations/%d", created.ID), token, "")
		if response.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status %d, received %d", http.StatusNotFound, response.StatusCode)
		}
	})
}

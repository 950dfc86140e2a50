package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudkeep/cloudkeep/internal/account"
	"github.com/cloudkeep/cloudkeep/internal/infrastructure"
	"github.com/cloudkeep/cloudkeep/internal/instance"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

type serviceFixture struct {
	service     *account.Service
	accounts    *model.AccountRepository
	instances   *model.InstanceRepository
	memberships *model.MembershipRepository
	sender      *infrastructure.SMTPMock
	owner       *model.User
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()

	db := infrastructure.Connect(":memory:")
	accounts := &model.AccountRepository{DB: db}
	instances := &model.InstanceRepository{DB: db}
	memberships := &model.MembershipRepository{DB: db}
	users := &model.UserRepository{DB: db}
	sender := &infrastructure.SMTPMock{}

	owner := &model.User{
		Uuid:     "b0a0f1e6-0000-0000-0000-000000000001",
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: model.Hash("secret"),
		Role:     model.RoleRegular,
	}
	require.NoError(t, users.Create(owner))

	service := account.NewService(accounts, instances, memberships, sender, account.Config{
		AdminAddresses: []string{"ops@example.com"},
	})
	return serviceFixture{
		service:     service,
		accounts:    accounts,
		instances:   instances,
		memberships: memberships,
		sender:      sender,
		owner:       owner,
	}
}

func TestCreate(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.Create(account.CreationInfo{
		Subdomain:   "acme",
		OrgName:     "Acme Corp",
		Department:  "Research",
		ServicePlan: model.PlanProfessional,
	}, f.owner)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, "acme", created.Subdomain)

	members, err := f.memberships.FindByAccount(created.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, f.owner.ID, members[0].UserID)
	assert.Equal(t, model.MembershipOwner, members[0].Role)
}

func TestCreateDuplicateSubdomain(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Create(account.CreationInfo{Subdomain: "acme"}, f.owner)
	require.NoError(t, err)

	_, err = f.service.Create(account.CreationInfo{Subdomain: "acme"}, f.owner)
	assert.ErrorIs(t, err, account.ErrSubdomainAlreadyExists)
}

func TestCreateReusesCancelledSubdomain(t *testing.T) {
	f := newServiceFixture(t)

	first, err := f.service.Create(account.CreationInfo{Subdomain: "acme"}, f.owner)
	require.NoError(t, err)
	require.NoError(t, f.service.Cancel(first.ID, f.owner))

	second, err := f.service.Create(account.CreationInfo{Subdomain: "acme"}, f.owner)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStatusTransitions(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.Create(account.CreationInfo{Subdomain: "acme"}, f.owner)
	require.NoError(t, err)

	activated, err := f.service.Activate(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, activated.Status)

	deactivated, err := f.service.Deactivate(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, deactivated.Status)

	t.Run("Cancellation is terminal", func(t *testing.T) {
		require.NoError(t, f.service.Cancel(created.ID, f.owner))

		_, err := f.service.Activate(created.ID)
		assert.ErrorIs(t, err, account.ErrAccountCancelled)
		_, err = f.service.Deactivate(created.ID)
		assert.ErrorIs(t, err, account.ErrAccountCancelled)
	})
}

func TestCancelRefusedWhileInstanceExists(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.Create(account.CreationInfo{Subdomain: "acme"}, f.owner)
	require.NoError(t, err)
	require.NoError(t, f.instances.Create(&model.Instance{
		AccountID: created.ID,
		HostName:  "acme.cloudkeep.example.com",
		State:     model.InstanceRunning,
	}))

	err = f.service.Cancel(created.ID, f.owner)
	assert.ErrorIs(t, err, instance.ErrNotAvailable)

	stored, err := f.service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.False(t, f.sender.CalledSendBCC())
}

func TestCancelNotifiesAdministrators(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.service.Create(account.CreationInfo{Subdomain: "acme"}, f.owner)
	require.NoError(t, err)
	require.NoError(t, f.service.Cancel(created.ID, f.owner))

	assert.True(t, f.sender.CalledSendBCC())
	assert.Equal(t, []string{"ops@example.com"}, f.sender.LastAddresses())
	assert.Equal(t, "CloudKeep Account Cancelled", f.sender.LastSubject())
	assert.Contains(t, f.sender.LastBody(), "acme")
	assert.Contains(t, f.sender.LastBody(), f.owner.Email)
}

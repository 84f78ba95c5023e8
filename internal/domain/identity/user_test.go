package identity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("Dan", "Dan@Example.com", "password1")
	require.NoError(t, err)
	u.ClearDomainEvents()
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("creates customer account with normalized email", func(t *testing.T) {
		u, err := NewUser("Dan", "Dan@Example.com", "password1")

		require.NoError(t, err)
		assert.Equal(t, RoleUser, u.Role)
		assert.Equal(t, "dan@example.com", u.Email)
		assert.True(t, u.VerifyPassword("password1"))
		assert.False(t, u.VerifyPassword("wrong"))

		events := u.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeUserRegistered, events[0].EventType())
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser("Dan", "dan@example.com", "short1")
		assert.Error(t, err)
		_, err = NewUser("Dan", "dan@example.com", "lettersonly")
		assert.Error(t, err)
		_, err = NewUser("Dan", "dan@example.com", "12345678")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("Dan", "not-an-email", "password1")
		assert.Error(t, err)
	})
}

func TestUser_SetRole(t *testing.T) {
	t.Run("assigns known role and raises event", func(t *testing.T) {
		u := newTestUser(t)

		require.NoError(t, u.SetRole(RoleCashier))

		assert.Equal(t, RoleCashier, u.Role)
		events := u.GetDomainEvents()
		require.Len(t, events, 1)
		rc := events[0].(*UserRoleChangedEvent)
		assert.Equal(t, RoleUser, rc.OldRole)
		assert.Equal(t, RoleCashier, rc.NewRole)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		u := newTestUser(t)
		assert.Error(t, u.SetRole(Role("superuser")))
	})

	t.Run("no event when role unchanged", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.SetRole(RoleUser))
		assert.Empty(t, u.GetDomainEvents())
	})
}

func TestUser_SetSalary(t *testing.T) {
	t.Run("staff roles carry salary", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.SetRole(RoleStaff))

		require.NoError(t, u.SetSalary(decimal.NewFromInt(1200)))
		assert.True(t, u.Salary.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("customer role cannot carry salary", func(t *testing.T) {
		u := newTestUser(t)
		assert.Error(t, u.SetSalary(decimal.NewFromInt(100)))
	})

	t.Run("rejects negative salary", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.SetRole(RoleStaff))
		assert.Error(t, u.SetSalary(decimal.NewFromInt(-1)))
	})
}

func TestUser_ChangePassword(t *testing.T) {
	u := newTestUser(t)

	assert.Error(t, u.ChangePassword("wrong", "newpassword1"))

	require.NoError(t, u.ChangePassword("password1", "newpassword1"))
	assert.True(t, u.VerifyPassword("newpassword1"))
}

func TestRole_Gates(t *testing.T) {
	t.Run("order processors", func(t *testing.T) {
		for _, r := range []Role{RoleAdmin, RoleStaff, RoleCashier, RoleManager} {
			assert.True(t, r.CanProcessOrders(), string(r))
		}
		for _, r := range []Role{RoleUser, RoleShopkeeper, RoleDelivery, RoleModerator} {
			assert.False(t, r.CanProcessOrders(), string(r))
		}
	})

	t.Run("POS access", func(t *testing.T) {
		for _, r := range []Role{RoleAdmin, RoleShopkeeper, RoleStaff, RoleCashier, RoleManager} {
			assert.True(t, r.HasPOSAccess(), string(r))
		}
		for _, r := range []Role{RoleUser, RoleDelivery, RoleEmployee} {
			assert.False(t, r.HasPOSAccess(), string(r))
		}
	})
}

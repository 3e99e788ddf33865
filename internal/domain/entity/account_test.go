package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStatus_SuspendKeepsReason(t *testing.T) {
	account := &Account{Status: AccountStatusApproved}
	reason := "chargeback abuse"

	account.ApplyStatus(AccountStatusSuspended, &reason)

	assert.Equal(t, AccountStatusSuspended, account.Status)
	require.NotNil(t, account.SuspendReason)
	assert.Equal(t, reason, *account.SuspendReason)
}

func TestApplyStatus_ApproveClearsReason(t *testing.T) {
	reason := "chargeback abuse"
	account := &Account{Status: AccountStatusSuspended, SuspendReason: &reason}

	account.ApplyStatus(AccountStatusApproved, nil)

	assert.Equal(t, AccountStatusApproved, account.Status)
	assert.Nil(t, account.SuspendReason)
}

func TestApplyStatus_PendingClearsReason(t *testing.T) {
	reason := "under review"
	account := &Account{Status: AccountStatusSuspended, SuspendReason: &reason}

	account.ApplyStatus(AccountStatusPending, &reason)

	assert.Nil(t, account.SuspendReason)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleBuyer.IsValid())
	assert.True(t, RoleManager.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestAccountStatus_IsValid(t *testing.T) {
	assert.True(t, AccountStatusPending.IsValid())
	assert.False(t, AccountStatus("banned").IsValid())
}

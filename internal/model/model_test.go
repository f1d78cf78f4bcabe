package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStatusValid(t *testing.T) {
	for _, s := range []TransactionStatus{StatusProcessing, StatusDelivered, StatusCompleted, StatusCanceled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, TransactionStatus("bogus").Valid())
	assert.False(t, TransactionStatus("").Valid())
	assert.False(t, TransactionStatus("Processing").Valid(), "statuses are case sensitive")
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserPasswordRoundTrip(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("correct horse"))

	assert.NotEqual(t, "correct horse", u.Password, "password is stored hashed")
	assert.True(t, u.CheckPassword("correct horse"))
	assert.False(t, u.CheckPassword("wrong horse"))
}

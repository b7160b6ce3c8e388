package authn

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/teller-in-go/pkg/authenticator"
	"github.com/doodlesbykumbi/teller-in-go/pkg/store/flatfile"
)

func setupTestStore(t *testing.T) *flatfile.Store {
	t.Helper()

	accounts := flatfile.New(filepath.Join(t.TempDir(), "accounts.dat"))
	_, err := accounts.Create(1001, "Ann", "pw1", 500.0)
	require.NoError(t, err)

	return accounts
}

func TestAuthenticator_Name(t *testing.T) {
	auth := New(setupTestStore(t))
	assert.Equal(t, "authn", auth.Name())
}

func TestAuthenticator_Authenticate_Success(t *testing.T) {
	auth := New(setupTestStore(t))

	account, err := auth.Authenticate(context.Background(), authenticator.Input{
		Number:   1001,
		Password: "pw1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1001, account.Number)
	assert.Equal(t, "Ann", account.Name)
}

func TestAuthenticator_Authenticate_WrongPassword(t *testing.T) {
	auth := New(setupTestStore(t))

	_, err := auth.Authenticate(context.Background(), authenticator.Input{
		Number:   1001,
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestAuthenticator_Authenticate_UnknownAccount(t *testing.T) {
	auth := New(setupTestStore(t))

	_, err := auth.Authenticate(context.Background(), authenticator.Input{
		Number:   9999,
		Password: "pw1",
	})
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestAuthenticator_Authenticate_PasswordIsCaseSensitive(t *testing.T) {
	auth := New(setupTestStore(t))

	_, err := auth.Authenticate(context.Background(), authenticator.Input{
		Number:   1001,
		Password: "PW1",
	})
	assert.ErrorIs(t, err, ErrBadCredentials)
}

package authn

import (
	"context"
	"errors"
	"fmt"

	"github.com/doodlesbykumbi/teller-in-go/pkg/authenticator"
	"github.com/doodlesbykumbi/teller-in-go/pkg/model"
	"github.com/doodlesbykumbi/teller-in-go/pkg/store"
)

// ErrUnknownAccount is returned when no account exists for the supplied number
var ErrUnknownAccount = errors.New("unknown account")

// ErrBadCredentials is returned when the password doesn't match
var ErrBadCredentials = errors.New("invalid credentials")

// Ensure Authenticator implements authenticator.Authenticator
var _ authenticator.Authenticator = (*Authenticator)(nil)

// Authenticator implements password authentication against the account
// registry.
//
// The two failure modes stay distinguishable here so callers can log which
// one occurred; the session controller collapses both into a single
// login-failed outcome before anything reaches the user.
type Authenticator struct {
	store store.AccountsStore
}

// New creates a new password authenticator
func New(accounts store.AccountsStore) *Authenticator {
	return &Authenticator{store: accounts}
}

// Name returns the authenticator name
func (a *Authenticator) Name() string {
	return "authn"
}

// Authenticate looks up the account and compares the password by exact
// equality. Returns a copy of the account on success.
func (a *Authenticator) Authenticate(_ context.Context, input authenticator.Input) (model.Account, error) {
	account, err := a.store.Find(input.Number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Account{}, fmt.Errorf("account %d: %w", input.Number, ErrUnknownAccount)
		}
		return model.Account{}, fmt.Errorf("authentication failed: %w", err)
	}

	if !account.PasswordMatches(input.Password) {
		return model.Account{}, fmt.Errorf("account %d: %w", input.Number, ErrBadCredentials)
	}

	return account, nil
}

// Package session implements the authenticated-session state machine that
// gates the balance operations.
//
// A Controller is either anonymous or authenticated. Only Login is reachable
// while anonymous; Deposit, Withdraw, ShowInfo and Logout are reachable only
// while authenticated. The controller never holds a reference into the
// registry, only the number of the authenticated account, and goes through
// the store contract for every operation.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/doodlesbykumbi/teller-in-go/pkg/authenticator"
	"github.com/doodlesbykumbi/teller-in-go/pkg/model"
	"github.com/doodlesbykumbi/teller-in-go/pkg/store"
)

// ErrLoginFailed is the single user-visible outcome for a failed login.
// Unknown account and wrong password both collapse into it; the underlying
// reason only shows up in logs.
var ErrLoginFailed = errors.New("login failed")

// ErrNotAuthenticated is returned when a gated operation is attempted
// without an active session
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrSessionActive is returned when Login is attempted while a session is
// already active
var ErrSessionActive = errors.New("a session is already active")

// Controller drives one login-to-logout cycle at a time.
type Controller struct {
	store store.AccountsStore
	auth  authenticator.Authenticator

	mu     sync.Mutex
	state  State
	number int
	id     uuid.UUID
}

// NewController creates a Controller in the anonymous state.
func NewController(accounts store.AccountsStore, auth authenticator.Authenticator) *Controller {
	return &Controller{
		store: accounts,
		auth:  auth,
		state: StateAnonymous,
	}
}

// State returns the controller's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ID returns the identifier of the active session, or uuid.Nil while
// anonymous. A fresh ID is minted on every successful login.
func (c *Controller) ID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// Login authenticates the credential pair and transitions to the
// authenticated state. On failure the controller stays anonymous and the
// error is always ErrLoginFailed, regardless of the reason.
func (c *Controller) Login(ctx context.Context, number int, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateAuthenticated {
		return ErrSessionActive
	}

	account, err := c.auth.Authenticate(ctx, authenticator.Input{
		Number:   number,
		Password: password,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"account": number,
		}).WithError(err).Info("login rejected")
		return ErrLoginFailed
	}

	c.state = StateAuthenticated
	c.number = account.Number
	c.id = uuid.New()

	log.WithFields(log.Fields{
		"account": account.Number,
		"session": c.id,
	}).Info("login successful")
	return nil
}

// Logout releases the account and returns to the anonymous state. The
// session ID is cleared, so nothing minted during the session stays usable.
func (c *Controller) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAuthenticated {
		return ErrNotAuthenticated
	}

	log.WithFields(log.Fields{
		"account": c.number,
		"session": c.id,
	}).Info("logged out")

	c.state = StateAnonymous
	c.number = 0
	c.id = uuid.Nil
	return nil
}

// Deposit adds amount to the authenticated account and returns the new
// balance.
func (c *Controller) Deposit(amount float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAuthenticated {
		return 0, ErrNotAuthenticated
	}
	balance, err := c.store.Deposit(c.number, amount)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"account": c.number,
		"session": c.id,
		"amount":  amount,
	}).Info("deposit")
	return balance, nil
}

// Withdraw removes amount from the authenticated account and returns the
// new balance. Fails with store.ErrInsufficientFunds, balance unchanged, if
// amount exceeds it.
func (c *Controller) Withdraw(amount float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAuthenticated {
		return 0, ErrNotAuthenticated
	}
	balance, err := c.store.Withdraw(c.number, amount)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"account": c.number,
		"session": c.id,
		"amount":  amount,
	}).Info("withdrawal")
	return balance, nil
}

// ShowInfo returns a read-only copy of the authenticated account.
func (c *Controller) ShowInfo() (model.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAuthenticated {
		return model.Account{}, ErrNotAuthenticated
	}

	account, err := c.store.Find(c.number)
	if err != nil {
		return model.Account{}, fmt.Errorf("authenticated account vanished: %w", err)
	}
	return account, nil
}

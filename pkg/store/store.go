package store

import (
	"errors"

	"github.com/doodlesbykumbi/teller-in-go/pkg/model"
)

// ErrNotFound is returned when no account exists for a number
var ErrNotFound = errors.New("account not found")

// ErrDuplicateAccount is returned when creating an account whose number is taken
var ErrDuplicateAccount = errors.New("account number already in use")

// ErrInsufficientFunds is returned when a withdrawal exceeds the balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidAmount is returned for non-positive deposit or withdrawal amounts
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrNoStore is returned by Load when no ledger file exists yet. Callers
// treat it as "no existing data", never as a failure.
var ErrNoStore = errors.New("no existing ledger file")

// AccountsStore abstracts the account registry.
//
// Implementations own the backing collection and its persistence round-trip.
// Lookups return copies, and mutations are keyed by account number, so no
// caller ever holds a reference into the registry's backing storage.
type AccountsStore interface {
	// Create adds a new account and persists the full registry.
	// Returns ErrDuplicateAccount if the number is already taken.
	Create(number int, name, password string, balance float64) (model.Account, error)

	// Find returns a copy of the account with the given number.
	// Returns ErrNotFound if no such account exists.
	Find(number int) (model.Account, error)

	// Deposit increases the account's balance by amount and returns the new
	// balance. Returns ErrInvalidAmount for non-positive amounts.
	Deposit(number int, amount float64) (float64, error)

	// Withdraw decreases the account's balance by amount and returns the new
	// balance. Returns ErrInsufficientFunds, with the balance unchanged, if
	// amount exceeds the balance. Returns ErrInvalidAmount for non-positive
	// amounts.
	Withdraw(number int, amount float64) (float64, error)

	// List returns copies of all accounts in registry order.
	List() []model.Account

	// Save rewrites the entire persisted ledger.
	Save() error
}

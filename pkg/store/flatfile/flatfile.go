package flatfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/doodlesbykumbi/teller-in-go/pkg/model"
	"github.com/doodlesbykumbi/teller-in-go/pkg/store"
)

// Ensure Store implements store.AccountsStore
var _ store.AccountsStore = (*Store)(nil)

// Store implements store.AccountsStore backed by a flat ledger file.
//
// All operations take the store mutex, so a Store is safe to share even
// though the interactive teller only ever drives it from one goroutine.
type Store struct {
	path string

	mu       sync.Mutex
	accounts []model.Account
}

// New creates a Store for the ledger file at path. The registry starts
// empty; call Load to read any existing ledger.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the ledger file into the registry, replacing any accounts
// already held. Returns store.ErrNoStore if the file doesn't exist; the
// registry is left empty and the store stays fully usable.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.accounts = nil
			return store.ErrNoStore
		}
		return fmt.Errorf("failed to open ledger file %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	s.accounts = decode(f)
	log.WithFields(log.Fields{
		"path":     s.path,
		"accounts": len(s.accounts),
	}).Debug("ledger loaded")
	return nil
}

// Save rewrites the entire ledger file from the registry. The write goes to
// a temp file in the same directory, which is then renamed over the ledger,
// so readers never observe a partial write.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file in %s: %w", dir, err)
	}

	if err := encode(tmp, s.accounts); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to sync temp ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace ledger file %s: %w", s.path, err)
	}

	log.WithFields(log.Fields{
		"path":     s.path,
		"accounts": len(s.accounts),
	}).Debug("ledger saved")
	return nil
}

// Create adds a new account and immediately persists the full registry.
// Returns store.ErrDuplicateAccount if the number is already taken.
func (s *Store) Create(number int, name, password string, balance float64) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.indexOf(number); ok {
		return model.Account{}, fmt.Errorf("account %d: %w", number, store.ErrDuplicateAccount)
	}

	account := model.Account{
		Number:   number,
		Name:     name,
		Password: password,
		Balance:  balance,
	}
	s.accounts = append(s.accounts, account)

	if err := s.saveLocked(); err != nil {
		// Keep the registry and ledger in step: a create that can't be
		// persisted didn't happen.
		s.accounts = s.accounts[:len(s.accounts)-1]
		return model.Account{}, err
	}

	log.WithFields(log.Fields{
		"account": account.Number,
		"name":    account.Name,
	}).Info("account created")
	return account, nil
}

// Find returns a copy of the account with the given number, or
// store.ErrNotFound.
func (s *Store) Find(number int) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(number)
	if !ok {
		return model.Account{}, fmt.Errorf("account %d: %w", number, store.ErrNotFound)
	}
	return s.accounts[i], nil
}

// Deposit increases the account's balance and returns the new balance.
func (s *Store) Deposit(number int, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return 0, fmt.Errorf("deposit of %g: %w", amount, store.ErrInvalidAmount)
	}
	i, ok := s.indexOf(number)
	if !ok {
		return 0, fmt.Errorf("account %d: %w", number, store.ErrNotFound)
	}

	s.accounts[i].Balance += amount
	return s.accounts[i].Balance, nil
}

// Withdraw decreases the account's balance and returns the new balance. The
// balance is never driven negative: a withdrawal exceeding it fails with
// store.ErrInsufficientFunds and leaves the balance unchanged.
func (s *Store) Withdraw(number int, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return 0, fmt.Errorf("withdrawal of %g: %w", amount, store.ErrInvalidAmount)
	}
	i, ok := s.indexOf(number)
	if !ok {
		return 0, fmt.Errorf("account %d: %w", number, store.ErrNotFound)
	}
	if amount > s.accounts[i].Balance {
		return 0, fmt.Errorf("withdrawal of %g from balance %g: %w",
			amount, s.accounts[i].Balance, store.ErrInsufficientFunds)
	}

	s.accounts[i].Balance -= amount
	return s.accounts[i].Balance, nil
}

// List returns copies of all accounts in registry order.
func (s *Store) List() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// indexOf scans the registry from the front for the first account with the
// given number. Callers must hold s.mu.
func (s *Store) indexOf(number int) (int, bool) {
	for i, a := range s.accounts {
		if a.Number == number {
			return i, true
		}
	}
	return 0, false
}

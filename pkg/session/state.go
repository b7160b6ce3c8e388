package session

//go:generate go run github.com/dmarkham/enumer -type State -trimprefix State -transform lower -output state_enumer.go

// State is the session controller's position in its two-state machine.
type State int

const (
	// StateAnonymous is the initial state: no account is held and only
	// Login is reachable.
	StateAnonymous State = iota

	// StateAuthenticated holds exactly one account number and exposes the
	// balance operations.
	StateAuthenticated
)

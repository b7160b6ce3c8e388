package authenticator

import (
	"context"

	"github.com/doodlesbykumbi/teller-in-go/pkg/model"
)

// Authenticator validates a credential pair against the account registry
type Authenticator interface {
	// Name returns the authenticator name (e.g., "authn")
	Name() string

	// Authenticate validates the credentials and returns a copy of the
	// matched account on success
	Authenticate(ctx context.Context, input Input) (model.Account, error)
}

// Input contains the credential pair for authentication
type Input struct {
	Number   int
	Password string
}

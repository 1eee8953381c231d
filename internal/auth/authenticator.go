// Package auth handles accounts and bearer tokens. Accounts are optional:
// they only decide whose form a request reads and writes.
package auth

import (
	"context"

	"github.com/mmynk/billsplit/internal/models"
)

// Authenticator registers and verifies accounts.
type Authenticator interface {
	// Register creates a new account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks that a credential is acceptable before it is stored.
	ValidateCredential(credential string) error
}

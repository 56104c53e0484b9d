// Package credentials persists the credential token between runs. It is the
// terminal client's analogue of browser localStorage: written on successful
// authentication, read at startup and on every outbound request, deleted on
// logout or token invalidation.
package credentials

import "context"

type Repository interface {
	// Token returns the stored credential token, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Save stores the credential token, replacing any previous one.
	Save(ctx context.Context, token string) error

	// Delete removes the stored token. Deleting an absent token is not an
	// error.
	Delete(ctx context.Context) error
}

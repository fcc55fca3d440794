// Package auth implements the volunteer credential gate: a pluggable
// verifier seam with a static single-credential implementation, and
// in-memory sessions with an expiry. This is a soft UI gate that toggles
// edit affordances, not a security boundary; a real identity provider can
// be substituted behind Verifier without changing callers.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/shelterpaws/cattery/pkg/types"
)

// MsgBadCredentials is the user-facing message for a failed login.
const MsgBadCredentials = "שם משתמש או סיסמה שגויים."

// ErrInvalidCredentials reports a failed credential check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks a submitted credential pair.
type Verifier interface {
	// Verify returns nil on success and ErrInvalidCredentials on a
	// mismatch.
	Verify(ctx context.Context, username, password string) error
}

// StaticVerifier compares against the one credential pair held in
// process-wide configuration.
type StaticVerifier struct {
	credential types.Credential
}

var _ Verifier = (*StaticVerifier)(nil)

// NewStaticVerifier creates a verifier for the configured volunteer
// credential pair.
func NewStaticVerifier(credential types.Credential) *StaticVerifier {
	return &StaticVerifier{credential: credential}
}

// Verify compares both fields in constant time.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.credential.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.credential.Password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

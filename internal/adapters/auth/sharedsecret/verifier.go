package sharedsecret

import (
	"crypto/subtle"

	"github.com/scrandle/api/internal/core/ports"
)

type verifier struct {
	secret string
}

// NewVerifier builds a CredentialVerifier backed by a single shared
// secret. An empty secret verifies nothing, so an unset env var fails
// closed instead of waving every request through.
func NewVerifier(secret string) ports.CredentialVerifier {
	return &verifier{
		secret: secret,
	}
}

func (v *verifier) Verify(token string) bool {
	if v.secret == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(v.secret)) == 1
}

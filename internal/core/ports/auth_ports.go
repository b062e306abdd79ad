package ports

// CredentialVerifier checks an opaque bearer credential.
type CredentialVerifier interface {
	Verify(token string) bool
}

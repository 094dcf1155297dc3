package service

// ResetTokenIssuer defines the interface for minting password-reset tokens.
// The raw value is high-entropy and returned for out-of-band delivery; only
// the hash is ever persisted.
type ResetTokenIssuer interface {
	// Generate mints a new random token, returning the raw value and the hash
	// to store.
	Generate() (raw string, hash string, err error)

	// Hash computes the storage hash of a raw token for comparison at
	// redemption time.
	Hash(raw string) string
}

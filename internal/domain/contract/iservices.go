package contract

import "time"

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// IUUIDGenerator issues entity ids.
type IUUIDGenerator interface {
	NewUUID() string
	// NewID returns "<prefix>_<unix millis>_<random suffix>".
	NewID(prefix string) string
}

// ITokenGenerator mints and recognizes session bearer tokens.
type ITokenGenerator interface {
	NewSessionToken() (string, error)
	IsWellFormed(token string) bool
}

// IClock abstracts wall time so expiry and analytics can be tested.
type IClock interface {
	Now() time.Time
}

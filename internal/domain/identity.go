// Package domain contains entity without logic, just meta-data
package domain

import "errors"

// MaxIdentityLen follows RFC 5321's limit on address length; identities
// are usually emails but any opaque string works.
const MaxIdentityLen = 254

var (
	ErrIdentityEmpty   = errors.New("identity empty")
	ErrIdentityTooLong = errors.New("identity too long")
)

// Identity names a participant across reconnects. Supplied by the client,
// never verified beyond length.
type Identity string

// ParseIdentity is a tiny helper to avoid ad-hoc casts in adapters.
func ParseIdentity(raw string) (Identity, error) {
	if len(raw) == 0 {
		return "", ErrIdentityEmpty
	}
	if len(raw) > MaxIdentityLen {
		return "", ErrIdentityTooLong
	}
	return Identity(raw), nil
}

package token

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", crerr.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Compare returns usecase.ErrUnauthorized when password does not match hash.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("%w: password mismatch", usecase.ErrUnauthorized)
	default:
		return crerr.Wrap(err, "compare password hash")
	}
}

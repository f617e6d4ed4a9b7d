package session

import "errors"

// ProductsKeyPrefix prefixes the per-user product document key.
const ProductsKeyPrefix = "products_"

var ErrNoSession = errors.New("no authenticated user")

// Session identifies the authenticated user. The zero value means "no session".
type Session struct {
	Email string `json:"email"`
}

func New(email string) Session {
	return Session{Email: email}
}

func (s Session) Valid() bool {
	return s.Email != ""
}

// ProductsKey is the storage key of the user's product list.
func (s Session) ProductsKey() (string, error) {
	if !s.Valid() {
		return "", ErrNoSession
	}
	return ProductsKeyPrefix + s.Email, nil
}

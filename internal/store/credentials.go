package store

import (
	"errors"
	"sync"

	"snippet-blog/internal/domain"
)

// ErrInvalidCredentials indicates the username is already registered with a
// different password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialStore holds registered accounts in memory and applies the
// login-or-register policy: an unseen username is registered with the supplied
// password, a known one must present the stored password verbatim.
type CredentialStore struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{accounts: make(map[string]*domain.Account)}
}

// LoginOrRegister returns the account for username, creating it with the given
// password on first sight. The check-and-create is atomic, so two concurrent
// calls with the same new username settle on a single account and the loser of
// the race is validated against it like any other login.
func (s *CredentialStore) LoginOrRegister(username, password string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[username]
	if !ok {
		account = &domain.Account{Username: username, Password: password}
		s.accounts[username] = account
		return account, nil
	}

	// Passwords are stored and compared in plaintext. Known gap.
	if account.Password != password {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

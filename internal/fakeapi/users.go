package fakeapi

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/learnpath/internal/api"
)

// Seeded account available on every fresh server.
const (
	SeedEmail    = "cypresstest@gmail.com"
	SeedPassword = "12345678"
	SeedUsername = "cypresstest"
)

var (
	errEmailTaken    = errors.New("email already registered")
	errUsernameTaken = errors.New("username already taken")
	errBadLogin      = errors.New("incorrect Username or Password")
)

type user struct {
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash []byte
}

type userStore struct {
	mu         sync.RWMutex
	byEmail    map[string]*user
	byUsername map[string]*user
	cost       int
}

func newUserStore(cost int) *userStore {
	return &userStore{
		byEmail:    make(map[string]*user),
		byUsername: make(map[string]*user),
		cost:       cost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userStore) create(in api.RegistrationInput) (*user, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}

	u := &user{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     strings.TrimSpace(in.Username),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[u.Email]; ok {
		return nil, errEmailTaken
	}
	if _, ok := s.byUsername[u.Username]; ok {
		return nil, errUsernameTaken
	}
	s.byEmail[u.Email] = u
	s.byUsername[u.Username] = u
	return u, nil
}

func (s *userStore) authenticate(email, password string) (*user, error) {
	s.mu.RLock()
	u, ok := s.byEmail[normalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, errBadLogin
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, errBadLogin
	}
	return u, nil
}

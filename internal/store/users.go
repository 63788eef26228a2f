package store

import (
	"strings"

	"workboard/internal/models"
)

// NewUser is the input for AddUser.
type NewUser struct {
	Name   string
	Email  string
	Role   models.UserRole
	Avatar string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AddUser adds a user to the directory, de-duplicating by normalized
// (lower-cased, trimmed) email: if an equivalent email already exists the
// existing user is returned unchanged and the directory does not grow.
// AddUser is the only writer of the user collection, which makes normalized
// email uniqueness a standing invariant. Users are never deleted.
func (s *Store) AddUser(input NewUser) (models.User, error) {
	if input.Name == "" {
		return models.User{}, ErrNameRequired
	}
	if !input.Role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := normalizeEmail(input.Email)
	for _, u := range s.state.Users {
		if normalizeEmail(u.Email) == normalized {
			return u, nil
		}
	}

	user := models.User{
		ID:     s.newID(),
		Name:   input.Name,
		Email:  input.Email,
		Role:   input.Role,
		Avatar: input.Avatar,
	}
	s.state.Users = append(s.state.Users, user)
	s.commit()
	return user, nil
}

// SetCurrentUser sets the active session identity. Per the original store
// this is a pure assignment: the user is not required to exist in the
// directory.
func (s *Store) SetCurrentUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.state.CurrentUser = &u
	s.commit()
}

// ClearCurrentUser ends the active session.
func (s *Store) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentUser = nil
	s.commit()
}

// CurrentUser returns a copy of the active session identity, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentUser == nil {
		return models.User{}, false
	}
	return *s.state.CurrentUser, true
}

// Users returns a copy of the user directory.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.state.Users))
	copy(out, s.state.Users)
	return out
}

// UserByID looks up a user in the directory.
func (s *Store) UserByID(userID string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.ID == userID {
			return u, true
		}
	}
	return models.User{}, false
}

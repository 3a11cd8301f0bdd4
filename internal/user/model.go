package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"date"`
	UpdatedAt    time.Time `json:"-"`
}

// Owner is the public part of a user embedded in profile responses.
type Owner struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Owner returns the public projection of u.
func (u *User) Owner() Owner {
	return Owner{ID: u.ID.String(), Name: u.Name, Avatar: u.Avatar}
}

// ParseID parses a user identity, reporting malformed values as ErrNotFound.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return id, nil
}

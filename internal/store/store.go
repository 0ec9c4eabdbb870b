// Package store provides durable storage for users, subjects and study
// sessions. Implementations are injected into the services rather than
// shared through a package-level handle.
package store

import (
	"context"
	"errors"

	"github.com/studybuddy-dev/studybuddy/internal/models"
)

// ErrNotFound is returned by keyed lookups when no row matches.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

type SubjectStore interface {
	CreateSubject(ctx context.Context, subject *models.Subject) error
	SubjectByID(ctx context.Context, id uint) (*models.Subject, error)
	SubjectsByOwner(ctx context.Context, ownerID uint) ([]models.Subject, error)
	UpdateSubject(ctx context.Context, subject *models.Subject) error
	// DeleteSubject removes the subject and every study session that
	// references it.
	DeleteSubject(ctx context.Context, id uint) error
}

type SessionStore interface {
	CreateSession(ctx context.Context, session *models.StudySession) error
	// SessionByID returns the session with its owning subject attached.
	SessionByID(ctx context.Context, id uint) (*models.StudySession, error)
	// SessionsByOwner returns the owner's sessions ordered by start time
	// descending, optionally filtered by status.
	SessionsByOwner(ctx context.Context, ownerID uint, status string) ([]models.StudySession, error)
	UpdateSession(ctx context.Context, session *models.StudySession) error
	DeleteSession(ctx context.Context, id uint) error
}

type Store interface {
	UserStore
	SubjectStore
	SessionStore
}

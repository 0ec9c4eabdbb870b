package service

import (
	"context"
	"errors"

	"github.com/studybuddy-dev/studybuddy/internal/models"
	"github.com/studybuddy-dev/studybuddy/internal/store"
)

// ResourceGuard confirms existence and ownership before any single-resource
// read or mutation. It is a pure read-then-compare with no side effects.
type ResourceGuard struct {
	store store.Store
}

func NewResourceGuard(s store.Store) *ResourceGuard {
	return &ResourceGuard{store: s}
}

func (g *ResourceGuard) Subject(ctx context.Context, userID, subjectID uint) (*models.Subject, error) {
	subject, err := g.store.SubjectByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Resource: "subject"}
		}
		return nil, err
	}
	if subject.UserID != userID {
		return nil, &NotFoundError{Resource: "subject"}
	}
	return subject, nil
}

func (g *ResourceGuard) Session(ctx context.Context, userID, sessionID uint) (*models.StudySession, error) {
	session, err := g.store.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Resource: "session"}
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, &NotFoundError{Resource: "session"}
	}
	return session, nil
}

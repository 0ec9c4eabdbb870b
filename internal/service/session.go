package service

import (
	"context"

	"github.com/studybuddy-dev/studybuddy/internal/models"
	"github.com/studybuddy-dev/studybuddy/internal/store"
)

// SessionService orchestrates validation, ownership checks and store calls
// for study sessions. Each store call is a single atomic statement executed
// sequentially; there is no lock between the ownership check and the write,
// so concurrent requests against the same resource can race. Accepted for
// this domain.
type SessionService struct {
	store store.Store
	guard *ResourceGuard
}

func NewSessionService(s store.Store) *SessionService {
	return &SessionService{store: s, guard: NewResourceGuard(s)}
}

func (s *SessionService) Create(ctx context.Context, userID uint, input CreateSessionInput) (*models.StudySession, error) {
	validated, err := validateCreate(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.guard.Subject(ctx, userID, validated.SubjectID); err != nil {
		return nil, err
	}

	session := &models.StudySession{
		UserID:      userID,
		SubjectID:   validated.SubjectID,
		Title:       validated.Title,
		Description: validated.Description,
		StartTime:   validated.StartTime,
		EndTime:     validated.EndTime,
		Status:      validated.Status,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	// Re-fetch joined with the subject so the response reflects exactly
	// what was persisted, including generated id and timestamps.
	return s.store.SessionByID(ctx, session.ID)
}

func (s *SessionService) Update(ctx context.Context, userID, sessionID uint, input UpdateSessionInput) (*models.StudySession, error) {
	existing, err := s.guard.Session(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if input.SubjectID.Set && input.SubjectID.Value != existing.SubjectID {
		if _, err := s.guard.Subject(ctx, userID, input.SubjectID.Value); err != nil {
			return nil, err
		}
	}

	validated, err := validateUpdate(existing, input)
	if err != nil {
		return nil, err
	}

	// Full replace of the mutable field set, even though the request was
	// sparse.
	existing.SubjectID = validated.SubjectID
	existing.Title = validated.Title
	existing.Description = validated.Description
	existing.StartTime = validated.StartTime
	existing.EndTime = validated.EndTime
	existing.Status = validated.Status

	if err := s.store.UpdateSession(ctx, existing); err != nil {
		return nil, err
	}

	return s.store.SessionByID(ctx, sessionID)
}

func (s *SessionService) Delete(ctx context.Context, userID, sessionID uint) error {
	if _, err := s.guard.Session(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.store.DeleteSession(ctx, sessionID)
}

func (s *SessionService) List(ctx context.Context, userID uint, status string) ([]models.StudySession, error) {
	if status != "" && !models.ValidSessionStatus(status) {
		return nil, &ValidationError{Reason: ReasonInvalidStatus, Field: "status"}
	}
	return s.store.SessionsByOwner(ctx, userID, status)
}

func (s *SessionService) GetByID(ctx context.Context, userID, sessionID uint) (*models.StudySession, error) {
	return s.guard.Session(ctx, userID, sessionID)
}

package service

import (
	"context"
	"strings"

	"github.com/studybuddy-dev/studybuddy/internal/models"
	"github.com/studybuddy-dev/studybuddy/internal/store"
	"github.com/studybuddy-dev/studybuddy/internal/types"
)

type CreateSubjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateSubjectInput struct {
	Name        types.Optional[string] `json:"name"`
	Description types.Optional[string] `json:"description"`
}

type SubjectService struct {
	store store.Store
	guard *ResourceGuard
}

func NewSubjectService(s store.Store) *SubjectService {
	return &SubjectService{store: s, guard: NewResourceGuard(s)}
}

func (s *SubjectService) Create(ctx context.Context, userID uint, input CreateSubjectInput) (*models.Subject, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, &ValidationError{Reason: ReasonMissingField, Field: "name"}
	}

	subject := &models.Subject{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.store.CreateSubject(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) List(ctx context.Context, userID uint) ([]models.Subject, error) {
	return s.store.SubjectsByOwner(ctx, userID)
}

func (s *SubjectService) GetByID(ctx context.Context, userID, subjectID uint) (*models.Subject, error) {
	return s.guard.Subject(ctx, userID, subjectID)
}

func (s *SubjectService) Update(ctx context.Context, userID, subjectID uint, input UpdateSubjectInput) (*models.Subject, error) {
	subject, err := s.guard.Subject(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}

	if input.Name.Set {
		if strings.TrimSpace(input.Name.Value) == "" {
			return nil, &ValidationError{Reason: ReasonMissingField, Field: "name"}
		}
		subject.Name = input.Name.Value
	}
	if input.Description.Set {
		subject.Description = input.Description.Value
	}

	if err := s.store.UpdateSubject(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// Delete removes the subject and, through the store, every study session
// that references it.
func (s *SubjectService) Delete(ctx context.Context, userID, subjectID uint) error {
	if _, err := s.guard.Subject(ctx, userID, subjectID); err != nil {
		return err
	}
	return s.store.DeleteSubject(ctx, subjectID)
}

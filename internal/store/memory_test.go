package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studybuddy-dev/studybuddy/internal/models"
)

func TestMemoryNotFound(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	_, err := mem.UserByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = mem.UserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = mem.SubjectByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = mem.SessionByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionOrderingAndJoin(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	user := &models.User{Name: "A", Email: "a@example.com", PasswordHash: "x"}
	require.NoError(t, mem.CreateUser(ctx, user))
	subject := &models.Subject{UserID: user.ID, Name: "Algebra"}
	require.NoError(t, mem.CreateSubject(ctx, subject))

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		session := &models.StudySession{
			UserID:    user.ID,
			SubjectID: subject.ID,
			Title:     title,
			StartTime: base.Add(time.Duration(i) * time.Hour),
			EndTime:   base.Add(time.Duration(i)*time.Hour + 30*time.Minute),
			Status:    models.StatusPending,
		}
		require.NoError(t, mem.CreateSession(ctx, session))
	}

	sessions, err := mem.SessionsByOwner(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "newest", sessions[0].Title)
	assert.Equal(t, "oldest", sessions[2].Title)
	assert.Equal(t, "Algebra", sessions[0].Subject.Name)
}

func TestMemoryDeleteSubjectCascade(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	subject := &models.Subject{UserID: 1, Name: "Algebra"}
	require.NoError(t, mem.CreateSubject(ctx, subject))

	session := &models.StudySession{
		UserID:    1,
		SubjectID: subject.ID,
		Title:     "Chapter 3",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
		Status:    models.StatusPending,
	}
	require.NoError(t, mem.CreateSession(ctx, session))

	require.NoError(t, mem.DeleteSubject(ctx, subject.ID))

	_, err := mem.SessionByID(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studybuddy-dev/studybuddy/internal/models"
	"github.com/studybuddy-dev/studybuddy/internal/store"
	"github.com/studybuddy-dev/studybuddy/internal/types"
)

// countingStore tracks session writes so tests can assert that rejected
// requests never reach the store.
type countingStore struct {
	store.Store
	creates int
	updates int
}

func (c *countingStore) CreateSession(ctx context.Context, session *models.StudySession) error {
	c.creates++
	return c.Store.CreateSession(ctx, session)
}

func (c *countingStore) UpdateSession(ctx context.Context, session *models.StudySession) error {
	c.updates++
	return c.Store.UpdateSession(ctx, session)
}

func seedUser(t *testing.T, m store.Store, email string) uint {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, PasswordHash: "x"}
	require.NoError(t, m.CreateUser(context.Background(), user))
	return user.ID
}

func seedSubject(t *testing.T, m store.Store, userID uint, name string) uint {
	t.Helper()
	subject := &models.Subject{UserID: userID, Name: name}
	require.NoError(t, m.CreateSubject(context.Background(), subject))
	return subject.ID
}

func sessionInput(subjectID uint) CreateSessionInput {
	id := subjectID
	return CreateSessionInput{
		SubjectID: &id,
		Title:     "Chapter 3",
		StartTime: "2024-01-01T10:00:00Z",
		EndTime:   "2024-01-01T11:00:00Z",
	}
}

func TestCreateSession(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	userID := seedUser(t, mem, "a@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")

	session, err := svc.Create(context.Background(), userID, sessionInput(subjectID))
	require.NoError(t, err)

	assert.NotZero(t, session.ID)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, subjectID, session.SubjectID)
	assert.Equal(t, models.StatusPending, session.Status)
	assert.Equal(t, "Algebra", session.Subject.Name)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), session.StartTime.UTC())
}

func TestCreateSessionInvalidTimeRangeNoWrite(t *testing.T) {
	mem := store.NewMemory()
	counting := &countingStore{Store: mem}
	svc := NewSessionService(counting)
	userID := seedUser(t, mem, "a@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")

	for _, endTime := range []string{"2024-01-01T10:00:00Z", "2024-01-01T09:30:00Z"} {
		input := sessionInput(subjectID)
		input.EndTime = endTime

		_, err := svc.Create(context.Background(), userID, input)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, ReasonInvalidTimeRange, validationErr.Reason)
	}

	assert.Zero(t, counting.creates)
}

func TestCreateSessionSubjectNotOwned(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	ownerID := seedUser(t, mem, "a@example.com")
	otherID := seedUser(t, mem, "b@example.com")
	subjectID := seedSubject(t, mem, ownerID, "Algebra")

	_, err := svc.Create(context.Background(), otherID, sessionInput(subjectID))

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "subject", notFoundErr.Resource)
}

func TestUpdateSessionCoalescing(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	userID := seedUser(t, mem, "a@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")

	created, err := svc.Create(context.Background(), userID, sessionInput(subjectID))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), userID, created.ID, UpdateSessionInput{
		Status: types.Some(models.StatusCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, created.StartTime.Equal(updated.StartTime))
	assert.True(t, created.EndTime.Equal(updated.EndTime))
	assert.Equal(t, created.SubjectID, updated.SubjectID)
}

func TestUpdateSessionExplicitClearDescription(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	userID := seedUser(t, mem, "a@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")

	input := sessionInput(subjectID)
	input.Description = "first pass"
	created, err := svc.Create(context.Background(), userID, input)
	require.NoError(t, err)

	// Explicit null clears; the same body without the key would coalesce.
	var update UpdateSessionInput
	require.NoError(t, json.Unmarshal([]byte(`{"description": null}`), &update))

	updated, err := svc.Update(context.Background(), userID, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)

	var noop UpdateSessionInput
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Chapter 4"}`), &noop))

	updated, err = svc.Update(context.Background(), userID, created.ID, noop)
	require.NoError(t, err)
	assert.Equal(t, "Chapter 4", updated.Title)
	assert.Equal(t, "", updated.Description)
}

func TestUpdateSessionCoalescedTimeRangeNoWrite(t *testing.T) {
	mem := store.NewMemory()
	counting := &countingStore{Store: mem}
	svc := NewSessionService(counting)
	userID := seedUser(t, mem, "a@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")

	created, err := svc.Create(context.Background(), userID, sessionInput(subjectID))
	require.NoError(t, err)

	// New start after the retained end time.
	_, err = svc.Update(context.Background(), userID, created.ID, UpdateSessionInput{
		StartTime: types.Some("2024-01-01T12:00:00Z"),
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, ReasonInvalidTimeRange, validationErr.Reason)
	assert.Zero(t, counting.updates)
}

func TestUpdateSessionSubjectChangeChecksOwnership(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	userID := seedUser(t, mem, "a@example.com")
	otherID := seedUser(t, mem, "b@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")
	foreignSubjectID := seedSubject(t, mem, otherID, "Biology")

	created, err := svc.Create(context.Background(), userID, sessionInput(subjectID))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), userID, created.ID, UpdateSessionInput{
		SubjectID: types.Some(foreignSubjectID),
	})

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "subject", notFoundErr.Resource)

	// Switching to another owned subject works.
	secondSubjectID := seedSubject(t, mem, userID, "Geometry")
	updated, err := svc.Update(context.Background(), userID, created.ID, UpdateSessionInput{
		SubjectID: types.Some(secondSubjectID),
	})
	require.NoError(t, err)
	assert.Equal(t, secondSubjectID, updated.SubjectID)
	assert.Equal(t, "Geometry", updated.Subject.Name)
}

func TestSessionNonLeakage(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	ownerID := seedUser(t, mem, "a@example.com")
	otherID := seedUser(t, mem, "b@example.com")
	subjectID := seedSubject(t, mem, ownerID, "Algebra")

	created, err := svc.Create(context.Background(), ownerID, sessionInput(subjectID))
	require.NoError(t, err)

	foreignID := created.ID
	missingID := created.ID + 100

	for _, id := range []uint{foreignID, missingID} {
		_, err := svc.GetByID(context.Background(), otherID, id)
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "session", notFoundErr.Resource)

		_, err = svc.Update(context.Background(), otherID, id, UpdateSessionInput{
			Status: types.Some(models.StatusCancelled),
		})
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "session", notFoundErr.Resource)

		err = svc.Delete(context.Background(), otherID, id)
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "session", notFoundErr.Resource)
	}

	// Owner still sees the untouched session.
	session, err := svc.GetByID(context.Background(), ownerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, session.Status)
}

func TestListSessions(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	userID := seedUser(t, mem, "a@example.com")
	otherID := seedUser(t, mem, "b@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")
	otherSubjectID := seedSubject(t, mem, otherID, "Biology")

	early := sessionInput(subjectID)
	early.Title = "Early"
	late := sessionInput(subjectID)
	late.Title = "Late"
	late.StartTime = "2024-02-01T10:00:00Z"
	late.EndTime = "2024-02-01T11:00:00Z"

	_, err := svc.Create(context.Background(), userID, early)
	require.NoError(t, err)
	created, err := svc.Create(context.Background(), userID, late)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), otherID, sessionInput(otherSubjectID))
	require.NoError(t, err)

	sessions, err := svc.List(context.Background(), userID, "")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Late", sessions[0].Title)
	assert.Equal(t, "Early", sessions[1].Title)

	_, err = svc.Update(context.Background(), userID, created.ID, UpdateSessionInput{
		Status: types.Some(models.StatusCompleted),
	})
	require.NoError(t, err)

	completed, err := svc.List(context.Background(), userID, models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Late", completed[0].Title)

	_, err = svc.List(context.Background(), userID, "paused")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, ReasonInvalidStatus, validationErr.Reason)
}

func TestDeleteSession(t *testing.T) {
	mem := store.NewMemory()
	svc := NewSessionService(mem)
	userID := seedUser(t, mem, "a@example.com")
	subjectID := seedSubject(t, mem, userID, "Algebra")

	created, err := svc.Create(context.Background(), userID, sessionInput(subjectID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), userID, created.ID))

	_, err = svc.GetByID(context.Background(), userID, created.ID)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

// Full walkthrough: create subject, create session with defaulted status,
// reject a zero-length session, deny cross-user access, partial-update
// status only, cascade on subject delete.
func TestSessionLifecycle(t *testing.T) {
	mem := store.NewMemory()
	sessions := NewSessionService(mem)
	subjects := NewSubjectService(mem)
	userA := seedUser(t, mem, "a@example.com")
	userB := seedUser(t, mem, "b@example.com")

	subject, err := subjects.Create(context.Background(), userA, CreateSubjectInput{Name: "Algebra"})
	require.NoError(t, err)

	created, err := sessions.Create(context.Background(), userA, CreateSessionInput{
		SubjectID: &subject.ID,
		Title:     "Chapter 3",
		StartTime: "2024-01-01T10:00:00Z",
		EndTime:   "2024-01-01T11:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)

	_, err = sessions.Create(context.Background(), userA, CreateSessionInput{
		SubjectID: &subject.ID,
		Title:     "Zero length",
		StartTime: "2024-01-01T10:00:00Z",
		EndTime:   "2024-01-01T10:00:00Z",
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, ReasonInvalidTimeRange, validationErr.Reason)

	_, err = sessions.GetByID(context.Background(), userB, created.ID)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	updated, err := sessions.Update(context.Background(), userA, created.ID, UpdateSessionInput{
		Status: types.Some(models.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "Chapter 3", updated.Title)
	assert.True(t, created.StartTime.Equal(updated.StartTime))

	require.NoError(t, subjects.Delete(context.Background(), userA, subject.ID))

	remaining, err := sessions.List(context.Background(), userA, "")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

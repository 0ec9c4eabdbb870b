package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/studybuddy-dev/studybuddy/internal/models"
)

// Memory is an in-memory Store implementation used in tests.
type Memory struct {
	mu       sync.Mutex
	users    map[uint]models.User
	subjects map[uint]models.Subject
	sessions map[uint]models.StudySession
	lastID   uint
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uint]models.User),
		subjects: make(map[uint]models.Subject),
		sessions: make(map[uint]models.StudySession),
	}
}

func (m *Memory) nextID() uint {
	m.lastID++
	return m.lastID
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) UserByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateSubject(_ context.Context, subject *models.Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	subject.ID = m.nextID()
	subject.CreatedAt = time.Now()
	subject.UpdatedAt = subject.CreatedAt
	m.subjects[subject.ID] = *subject
	return nil
}

func (m *Memory) SubjectByID(_ context.Context, id uint) (*models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subject, ok := m.subjects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &subject, nil
}

func (m *Memory) SubjectsByOwner(_ context.Context, ownerID uint) ([]models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var subjects []models.Subject
	for _, subject := range m.subjects {
		if subject.UserID == ownerID {
			subjects = append(subjects, subject)
		}
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].CreatedAt.After(subjects[j].CreatedAt)
	})
	return subjects, nil
}

func (m *Memory) UpdateSubject(_ context.Context, subject *models.Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.subjects[subject.ID]; !ok {
		return ErrNotFound
	}
	subject.UpdatedAt = time.Now()
	m.subjects[subject.ID] = *subject
	return nil
}

func (m *Memory) DeleteSubject(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.subjects, id)
	for sessionID, session := range m.sessions {
		if session.SubjectID == id {
			delete(m.sessions, sessionID)
		}
	}
	return nil
}

func (m *Memory) CreateSession(_ context.Context, session *models.StudySession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.ID = m.nextID()
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	m.sessions[session.ID] = *session
	return nil
}

func (m *Memory) SessionByID(_ context.Context, id uint) (*models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.attachSubject(&session)
	return &session, nil
}

func (m *Memory) SessionsByOwner(_ context.Context, ownerID uint, status string) ([]models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sessions []models.StudySession
	for _, session := range m.sessions {
		if session.UserID != ownerID {
			continue
		}
		if status != "" && session.Status != status {
			continue
		}
		m.attachSubject(&session)
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	return sessions, nil
}

func (m *Memory) UpdateSession(_ context.Context, session *models.StudySession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[session.ID]; !ok {
		return ErrNotFound
	}
	session.UpdatedAt = time.Now()
	stored := *session
	stored.Subject = models.Subject{}
	m.sessions[session.ID] = stored
	return nil
}

func (m *Memory) DeleteSession(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

func (m *Memory) attachSubject(session *models.StudySession) {
	if subject, ok := m.subjects[session.SubjectID]; ok {
		session.Subject = subject
	}
}

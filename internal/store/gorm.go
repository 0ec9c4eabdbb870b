package store

import (
	"context"
	"errors"

	"github.com/studybuddy-dev/studybuddy/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Subject{},
		&models.StudySession{},
	}

	migrator := db.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := db.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}

// GormStore implements Store on top of a gorm-managed PostgreSQL database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return s.db.WithContext(ctx).Create(subject).Error
}

func (s *GormStore) SubjectByID(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &subject, nil
}

func (s *GormStore) SubjectsByOwner(ctx context.Context, ownerID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *GormStore) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(subject).Error
}

// DeleteSubject removes the subject's sessions in the same transaction.
// The cascade runs at the application layer because soft deletes never
// reach the database's foreign key constraints.
func (s *GormStore) DeleteSubject(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", id).Delete(&models.StudySession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Subject{}, id).Error
	})
}

func (s *GormStore) CreateSession(ctx context.Context, session *models.StudySession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *GormStore) SessionByID(ctx context.Context, id uint) (*models.StudySession, error) {
	var session models.StudySession
	if err := s.db.WithContext(ctx).Preload("Subject").First(&session, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &session, nil
}

func (s *GormStore) SessionsByOwner(ctx context.Context, ownerID uint, status string) ([]models.StudySession, error) {
	query := s.db.WithContext(ctx).
		Preload("Subject").
		Where("user_id = ?", ownerID)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var sessions []models.StudySession
	if err := query.Order("start_time DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateSession writes the full mutable field set. The preloaded Subject
// association is omitted so the write stays a single-row statement.
func (s *GormStore) UpdateSession(ctx context.Context, session *models.StudySession) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(session).Error
}

func (s *GormStore) DeleteSession(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.StudySession{}, id).Error
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

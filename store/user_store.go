package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/models"
	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
	// FindByIDAndRole is the Create precondition lookup: the learner id must
	// belong to a learner, the mentor id to a mentor.
	FindByIDAndRole(id uuid.UUID, role string) (*models.User, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByIDAndRole(id uuid.UUID, role string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ? AND role = ?", id, role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

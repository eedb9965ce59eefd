package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/models"
	"gorm.io/gorm"
)

// FeedbackFilter narrows the mentor-facing review listing.
type FeedbackFilter struct {
	MentorID uuid.UUID
	Subject  string
	Rating   int
}

type FeedbackStore interface {
	Create(feedback *models.Feedback) error
	FindByScheduleID(scheduleID string) (*models.Feedback, error)
	List(filter FeedbackFilter) ([]models.Feedback, error)
}

type GormFeedbackStore struct {
	db *gorm.DB
}

func NewFeedbackStore(db *gorm.DB) *GormFeedbackStore {
	return &GormFeedbackStore{db: db}
}

// Create inserts the feedback row. The unique index on schedule_id makes a
// concurrent double-submit lose here rather than after a stale pre-check.
func (s *GormFeedbackStore) Create(feedback *models.Feedback) error {
	if err := s.db.Create(feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormFeedbackStore) FindByScheduleID(scheduleID string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := s.db.First(&feedback, "schedule_id = ?", scheduleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (s *GormFeedbackStore) List(filter FeedbackFilter) ([]models.Feedback, error) {
	query := s.db.Model(&models.Feedback{})
	if filter.MentorID != uuid.Nil {
		query = query.Where("mentor_id = ?", filter.MentorID)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Rating != 0 {
		query = query.Where("rating = ?", filter.Rating)
	}

	var feedbacks []models.Feedback
	if err := query.Order("created_at desc").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

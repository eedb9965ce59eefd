package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/models"
	"gorm.io/gorm"
)

// ScheduleFilter narrows List results. Zero values mean "no constraint".
type ScheduleFilter struct {
	Status    string
	LearnerID uuid.UUID
	MentorID  uuid.UUID
}

// ScheduleUpdate carries the partial-update field set. Only the allow-listed
// fields exist here; anything else a caller submits never reaches the store.
type ScheduleUpdate struct {
	Status      *string
	Date        *string
	Time        *string
	MeetingLink *string
	Location    *string
	Notes       *string
}

type ScheduleStore interface {
	Create(schedule *models.Schedule) error
	FindByScheduleID(scheduleID string) (*models.Schedule, error)
	List(filter ScheduleFilter) ([]models.Schedule, error)
	Update(scheduleID string, fields ScheduleUpdate) (*models.Schedule, error)
	SoftCancel(scheduleID string) (*models.Schedule, error)
}

type GormScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{db: db}
}

func (s *GormScheduleStore) Create(schedule *models.Schedule) error {
	if err := s.db.Create(schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormScheduleStore) FindByScheduleID(scheduleID string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.db.First(&schedule, "schedule_id = ?", scheduleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// List returns matching schedules most recent session first. An empty result
// is not an error.
func (s *GormScheduleStore) List(filter ScheduleFilter) ([]models.Schedule, error) {
	query := s.db.Model(&models.Schedule{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.LearnerID != uuid.Nil {
		query = query.Where("learner_id = ?", filter.LearnerID)
	}
	if filter.MentorID != uuid.Nil {
		query = query.Where("mentor_id = ?", filter.MentorID)
	}

	var schedules []models.Schedule
	if err := query.Order("date desc, time desc").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *GormScheduleStore) Update(scheduleID string, fields ScheduleUpdate) (*models.Schedule, error) {
	changes := map[string]interface{}{}
	if fields.Status != nil {
		changes["status"] = *fields.Status
	}
	if fields.Date != nil {
		changes["date"] = *fields.Date
	}
	if fields.Time != nil {
		changes["time"] = *fields.Time
	}
	if fields.MeetingLink != nil {
		changes["meeting_link"] = *fields.MeetingLink
	}
	if fields.Location != nil {
		changes["location"] = *fields.Location
	}
	if fields.Notes != nil {
		changes["notes"] = *fields.Notes
	}

	if len(changes) > 0 {
		result := s.db.Model(&models.Schedule{}).Where("schedule_id = ?", scheduleID).Updates(changes)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return s.FindByScheduleID(scheduleID)
}

// SoftCancel flips the status to cancelled and keeps the row. Cancelling an
// already-cancelled schedule is a no-op, not an error.
func (s *GormScheduleStore) SoftCancel(scheduleID string) (*models.Schedule, error) {
	status := models.ScheduleStatusCancelled
	return s.Update(scheduleID, ScheduleUpdate{Status: &status})
}

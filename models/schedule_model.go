package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusConfirmed = "confirmed"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

const (
	ModalityOnline   = "online"
	ModalityInPerson = "in-person"
	ModalityHybrid   = "hybrid"
)

type Schedule struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ScheduleID string    `gorm:"size:12;not null;uniqueIndex" json:"scheduleId"`

	LearnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"learnerId"`
	LearnerName string    `gorm:"size:255;not null" json:"learnerName"`
	MentorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"mentorId"`
	MentorName  string    `gorm:"size:255;not null" json:"mentorName"`

	Subject  string `gorm:"size:255;not null" json:"subject"`
	Date     string `gorm:"size:10;not null" json:"date"`
	Time     string `gorm:"size:20;not null" json:"time"`
	Duration string `gorm:"size:50;not null" json:"duration"`
	Modality string `gorm:"size:20;not null" json:"modality"`

	MeetingLink *string `gorm:"size:255" json:"meetingLink,omitempty"`
	Location    *string `gorm:"size:255" json:"location,omitempty"`

	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// IsParty reports whether the given user is the learner or mentor on the
// schedule.
func (s *Schedule) IsParty(userID uuid.UUID) bool {
	return s.LearnerID == userID || s.MentorID == userID
}

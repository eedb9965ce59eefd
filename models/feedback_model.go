package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	FeedbackID string    `gorm:"size:12;not null;uniqueIndex" json:"feedbackId"`

	// One feedback per schedule, enforced by the unique index rather than a
	// read-before-write.
	ScheduleID string `gorm:"size:12;not null;uniqueIndex" json:"scheduleId"`

	LearnerID   uuid.UUID `gorm:"type:uuid;not null" json:"learnerId"`
	LearnerName string    `gorm:"size:255;not null" json:"learnerName"`
	MentorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"mentorId"`
	MentorName  string    `gorm:"size:255;not null" json:"mentorName"`

	Subject     string `gorm:"size:255;not null" json:"subject"`
	SessionDate string `gorm:"size:10;not null" json:"sessionDate"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

package services

import (
	"fmt"
	"log"
	"math"

	"github.com/kentanne/CCSPals-sub001/models"
	"github.com/kentanne/CCSPals-sub001/store"
	"github.com/kentanne/CCSPals-sub001/utils"
)

type SubmitFeedbackInput struct {
	ScheduleID string
	Rating     float64
	Comment    string
}

// FeedbackService guards the write-once, learner-only feedback flow and the
// mentor-facing review browsing.
type FeedbackService struct {
	feedback  store.FeedbackStore
	schedules store.ScheduleStore
	users     store.UserStore

	newID  func(prefix string) string
	notify NotifyFunc
}

func NewFeedbackService(feedback store.FeedbackStore, schedules store.ScheduleStore, users store.UserStore, notify NotifyFunc) *FeedbackService {
	if notify == nil {
		notify = func(string, string, string, string) {}
	}
	return &FeedbackService{
		feedback:  feedback,
		schedules: schedules,
		users:     users,
		newID:     utils.GenerateID,
		notify:    notify,
	}
}

func (s *FeedbackService) Submit(requester Principal, input SubmitFeedbackInput) (*models.Feedback, error) {
	if requester.Role != "learner" {
		return nil, fail(KindForbidden, "Only learners can submit feedback")
	}
	if input.Rating != math.Trunc(input.Rating) || input.Rating < 1 || input.Rating > 5 {
		return nil, fail(KindValidationFailed, "Rating must be a whole number between 1 and 5")
	}
	if input.Comment == "" {
		return nil, fail(KindValidationFailed, "Missing required fields")
	}

	schedule, err := s.schedules.FindByScheduleID(input.ScheduleID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fail(KindNotFound, "Schedule not found")
		}
		log.Printf("🔥 Failed to load schedule %s: %v", input.ScheduleID, err)
		return nil, fail(KindUnexpected, "Failed to load schedule")
	}
	if schedule.LearnerID != requester.UserID {
		return nil, fail(KindForbidden, "You are not the learner for this session")
	}
	if schedule.Status != models.ScheduleStatusCompleted {
		return nil, fail(KindInvalidState, "Feedback can only be submitted for completed sessions")
	}

	// Friendly pre-check; the unique index on schedule_id is the real guard
	// against a concurrent double-submit.
	if _, err := s.feedback.FindByScheduleID(input.ScheduleID); err == nil {
		return nil, fail(KindConflict, "Feedback already submitted for this session")
	} else if err != store.ErrNotFound {
		log.Printf("🔥 Failed to check existing feedback for %s: %v", input.ScheduleID, err)
		return nil, fail(KindUnexpected, "Failed to check existing feedback")
	}

	feedback := &models.Feedback{
		FeedbackID:  s.newID("FB"),
		ScheduleID:  schedule.ScheduleID,
		LearnerID:   schedule.LearnerID,
		LearnerName: s.learnerName(schedule),
		MentorID:    schedule.MentorID,
		MentorName:  schedule.MentorName,
		Subject:     schedule.Subject,
		SessionDate: schedule.Date,
		Rating:      int(input.Rating),
		Comment:     input.Comment,
	}

	if err := s.feedback.Create(feedback); err != nil {
		if err == store.ErrDuplicate {
			return nil, fail(KindConflict, "Feedback already submitted for this session")
		}
		log.Printf("🔥 Failed to create feedback for %s: %v", input.ScheduleID, err)
		return nil, fail(KindUnexpected, "Failed to create feedback")
	}

	go func() {
		mentor, err := s.users.FindByID(schedule.MentorID)
		if err != nil {
			return
		}
		s.notify(mentor.FullName, mentor.Email, "You received new feedback",
			fmt.Sprintf("<h1>New Feedback</h1><p>%s rated your %s session %d/5.</p>",
				feedback.LearnerName, feedback.Subject, feedback.Rating))
	}()

	return feedback, nil
}

// learnerName resolves the display name frozen onto the feedback row: the
// name denormalized on the schedule, else the learner's current profile name,
// else their username, else "Anonymous".
func (s *FeedbackService) learnerName(schedule *models.Schedule) string {
	if schedule.LearnerName != "" {
		return schedule.LearnerName
	}
	learner, err := s.users.FindByID(schedule.LearnerID)
	if err != nil {
		return "Anonymous"
	}
	return displayName(learner)
}

func (s *FeedbackService) List(filter store.FeedbackFilter) ([]models.Feedback, error) {
	feedbacks, err := s.feedback.List(filter)
	if err != nil {
		log.Printf("🔥 Failed to list feedback: %v", err)
		return nil, fail(KindUnexpected, "Failed to list feedback")
	}
	return feedbacks, nil
}

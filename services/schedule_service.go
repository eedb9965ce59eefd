package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/models"
	"github.com/kentanne/CCSPals-sub001/store"
	"github.com/kentanne/CCSPals-sub001/utils"
)

// Principal is the verified identity attached to every request by the auth
// middleware.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

type CreateScheduleInput struct {
	LearnerID   uuid.UUID
	MentorID    uuid.UUID
	Subject     string
	Date        string
	Time        string
	Duration    string
	Modality    string
	MeetingLink string
	Location    string
	Notes       string
}

// NotifyFunc sends a transactional email. Dispatched on a goroutine so a
// slow mail provider never holds up the response.
type NotifyFunc func(toName, toEmail, subject, htmlContent string)

// ScheduleService owns the session lifecycle: creation, party-scoped reads
// and updates, status transitions and soft-cancellation.
type ScheduleService struct {
	schedules store.ScheduleStore
	users     store.UserStore

	newID  func(prefix string) string
	notify NotifyFunc
}

func NewScheduleService(schedules store.ScheduleStore, users store.UserStore, notify NotifyFunc) *ScheduleService {
	if notify == nil {
		notify = func(string, string, string, string) {}
	}
	return &ScheduleService{
		schedules: schedules,
		users:     users,
		newID:     utils.GenerateID,
		notify:    notify,
	}
}

// Legal status transitions. Completed and cancelled are terminal; Cancel
// handles the edges into cancelled.
var scheduleTransitions = map[string][]string{
	models.ScheduleStatusPending:   {models.ScheduleStatusConfirmed, models.ScheduleStatusCancelled},
	models.ScheduleStatusConfirmed: {models.ScheduleStatusCompleted, models.ScheduleStatusCancelled},
}

func validModality(modality string) bool {
	switch modality {
	case models.ModalityOnline, models.ModalityInPerson, models.ModalityHybrid:
		return true
	}
	return false
}

func (s *ScheduleService) Create(requester Principal, input CreateScheduleInput) (*models.Schedule, error) {
	if input.LearnerID == uuid.Nil || input.MentorID == uuid.Nil ||
		input.Subject == "" || input.Date == "" || input.Time == "" ||
		input.Duration == "" || input.Modality == "" {
		return nil, fail(KindValidationFailed, "Missing required fields")
	}
	if !validModality(input.Modality) {
		return nil, fail(KindValidationFailed, "Modality must be online, in-person or hybrid")
	}
	if input.Modality == models.ModalityOnline && input.MeetingLink == "" {
		return nil, fail(KindValidationFailed, "Missing required fields")
	}
	if input.Modality != models.ModalityOnline && input.Location == "" {
		return nil, fail(KindValidationFailed, "Missing required fields")
	}

	learner, err := s.users.FindByIDAndRole(input.LearnerID, "learner")
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fail(KindNotFound, "Learner not found")
		}
		return nil, fail(KindUnexpected, "Failed to look up learner")
	}
	mentor, err := s.users.FindByIDAndRole(input.MentorID, "mentor")
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fail(KindNotFound, "Mentor not found")
		}
		return nil, fail(KindUnexpected, "Failed to look up mentor")
	}

	if requester.UserID != input.LearnerID && requester.UserID != input.MentorID {
		return nil, fail(KindForbidden, "You are not a party to this schedule")
	}

	schedule := &models.Schedule{
		ScheduleID:  s.newID("SCH"),
		LearnerID:   learner.ID,
		LearnerName: displayName(learner),
		MentorID:    mentor.ID,
		MentorName:  displayName(mentor),
		Subject:     input.Subject,
		Date:        input.Date,
		Time:        input.Time,
		Duration:    input.Duration,
		Modality:    input.Modality,
		Status:      models.ScheduleStatusPending,
	}
	if input.Modality == models.ModalityOnline {
		schedule.MeetingLink = &input.MeetingLink
	} else {
		schedule.Location = &input.Location
	}
	if input.Notes != "" {
		schedule.Notes = &input.Notes
	}

	if err := s.schedules.Create(schedule); err != nil {
		if err == store.ErrDuplicate {
			return nil, fail(KindConflict, "Schedule identifier collision, please retry")
		}
		log.Printf("🔥 Failed to create schedule: %v", err)
		return nil, fail(KindUnexpected, "Failed to create schedule")
	}

	go func() {
		body := fmt.Sprintf("<h1>Session Booked</h1><p>A %s session on %s at %s is awaiting confirmation.</p>",
			schedule.Subject, schedule.Date, schedule.Time)
		s.notify(learner.FullName, learner.Email, "Your session is booked", body)
		s.notify(mentor.FullName, mentor.Email, "You have a new session", body)
	}()

	return schedule, nil
}

// load fetches a schedule and enforces the party rule shared by Read, Update,
// Transition and Cancel.
func (s *ScheduleService) load(requester Principal, scheduleID string) (*models.Schedule, error) {
	schedule, err := s.schedules.FindByScheduleID(scheduleID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fail(KindNotFound, "Schedule not found")
		}
		log.Printf("🔥 Failed to load schedule %s: %v", scheduleID, err)
		return nil, fail(KindUnexpected, "Failed to load schedule")
	}
	if !schedule.IsParty(requester.UserID) {
		return nil, fail(KindForbidden, "You are not a party to this schedule")
	}
	return schedule, nil
}

func (s *ScheduleService) Read(requester Principal, scheduleID string) (*models.Schedule, error) {
	return s.load(requester, scheduleID)
}

func (s *ScheduleService) Update(requester Principal, scheduleID string, fields store.ScheduleUpdate) (*models.Schedule, error) {
	if _, err := s.load(requester, scheduleID); err != nil {
		return nil, err
	}

	updated, err := s.schedules.Update(scheduleID, fields)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, fail(KindNotFound, "Schedule not found")
		}
		log.Printf("🔥 Failed to update schedule %s: %v", scheduleID, err)
		return nil, fail(KindUnexpected, "Failed to update schedule")
	}
	return updated, nil
}

// Transition moves a schedule along the lifecycle state machine. Same party
// rule as Update; illegal edges are rejected rather than applied blindly.
func (s *ScheduleService) Transition(requester Principal, scheduleID, newStatus string) (*models.Schedule, error) {
	switch newStatus {
	case models.ScheduleStatusPending, models.ScheduleStatusConfirmed,
		models.ScheduleStatusCompleted, models.ScheduleStatusCancelled:
	default:
		return nil, fail(KindValidationFailed, "Unknown schedule status")
	}

	schedule, err := s.load(requester, scheduleID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range scheduleTransitions[schedule.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fail(KindInvalidState,
			fmt.Sprintf("Cannot move a %s schedule to %s", schedule.Status, newStatus))
	}

	return s.Update(requester, scheduleID, store.ScheduleUpdate{Status: &newStatus})
}

// Cancel soft-cancels the schedule: the row is kept for history and a repeat
// cancel succeeds without side effects.
func (s *ScheduleService) Cancel(requester Principal, scheduleID string) (*models.Schedule, error) {
	schedule, err := s.load(requester, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule.Status == models.ScheduleStatusCompleted {
		return nil, fail(KindInvalidState, "Completed schedules cannot be cancelled")
	}

	cancelled, err := s.schedules.SoftCancel(scheduleID)
	if err != nil {
		log.Printf("🔥 Failed to cancel schedule %s: %v", scheduleID, err)
		return nil, fail(KindUnexpected, "Failed to cancel schedule")
	}

	go s.notifyCancellation(requester, cancelled)

	return cancelled, nil
}

func (s *ScheduleService) notifyCancellation(requester Principal, schedule *models.Schedule) {
	otherID := schedule.MentorID
	if requester.UserID == schedule.MentorID {
		otherID = schedule.LearnerID
	}
	other, err := s.users.FindByID(otherID)
	if err != nil {
		log.Printf("Could not load counterparty for cancellation notice: %v", err)
		return
	}
	s.notify(other.FullName, other.Email, "Session cancelled",
		fmt.Sprintf("<h1>Session Cancelled</h1><p>The %s session on %s at %s has been cancelled.</p>",
			schedule.Subject, schedule.Date, schedule.Time))
}

// ListOwn returns the requester's own schedules. The party filter is forced
// from the principal's role, so one user can never browse another's history.
func (s *ScheduleService) ListOwn(requester Principal, status string) ([]models.Schedule, error) {
	filter := store.ScheduleFilter{Status: status}
	if requester.Role == "mentor" {
		filter.MentorID = requester.UserID
	} else {
		filter.LearnerID = requester.UserID
	}
	return s.list(filter)
}

// ListAsAdmin accepts arbitrary filters; the admin role is enforced by the
// route guard.
func (s *ScheduleService) ListAsAdmin(filter store.ScheduleFilter) ([]models.Schedule, error) {
	return s.list(filter)
}

func (s *ScheduleService) list(filter store.ScheduleFilter) ([]models.Schedule, error) {
	schedules, err := s.schedules.List(filter)
	if err != nil {
		log.Printf("🔥 Failed to list schedules: %v", err)
		return nil, fail(KindUnexpected, "Failed to list schedules")
	}
	return schedules, nil
}

func displayName(user *models.User) string {
	if user.FullName != "" {
		return user.FullName
	}
	if user.Username != "" {
		return user.Username
	}
	return "Anonymous"
}

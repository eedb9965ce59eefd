package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/models"
	"github.com/kentanne/CCSPals-sub001/store"
)

type stubScheduleStore struct {
	schedules map[string]*models.Schedule
}

func newStubScheduleStore() *stubScheduleStore {
	return &stubScheduleStore{schedules: map[string]*models.Schedule{}}
}

func (s *stubScheduleStore) Create(schedule *models.Schedule) error {
	if _, ok := s.schedules[schedule.ScheduleID]; ok {
		return store.ErrDuplicate
	}
	cp := *schedule
	s.schedules[schedule.ScheduleID] = &cp
	return nil
}

func (s *stubScheduleStore) FindByScheduleID(scheduleID string) (*models.Schedule, error) {
	schedule, ok := s.schedules[scheduleID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *schedule
	return &cp, nil
}

func (s *stubScheduleStore) List(filter store.ScheduleFilter) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, schedule := range s.schedules {
		if filter.Status != "" && schedule.Status != filter.Status {
			continue
		}
		if filter.LearnerID != uuid.Nil && schedule.LearnerID != filter.LearnerID {
			continue
		}
		if filter.MentorID != uuid.Nil && schedule.MentorID != filter.MentorID {
			continue
		}
		out = append(out, *schedule)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (s *stubScheduleStore) Update(scheduleID string, fields store.ScheduleUpdate) (*models.Schedule, error) {
	schedule, ok := s.schedules[scheduleID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if fields.Status != nil {
		schedule.Status = *fields.Status
	}
	if fields.Date != nil {
		schedule.Date = *fields.Date
	}
	if fields.Time != nil {
		schedule.Time = *fields.Time
	}
	if fields.MeetingLink != nil {
		link := *fields.MeetingLink
		schedule.MeetingLink = &link
	}
	if fields.Location != nil {
		loc := *fields.Location
		schedule.Location = &loc
	}
	if fields.Notes != nil {
		notes := *fields.Notes
		schedule.Notes = &notes
	}
	cp := *schedule
	return &cp, nil
}

func (s *stubScheduleStore) SoftCancel(scheduleID string) (*models.Schedule, error) {
	status := models.ScheduleStatusCancelled
	return s.Update(scheduleID, store.ScheduleUpdate{Status: &status})
}

type stubUserStore struct {
	users map[uuid.UUID]*models.User
}

func newStubUserStore(users ...*models.User) *stubUserStore {
	s := &stubUserStore{users: map[uuid.UUID]*models.User{}}
	for _, u := range users {
		cp := *u
		s.users[u.ID] = &cp
	}
	return s
}

func (s *stubUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *stubUserStore) FindByIDAndRole(id uuid.UUID, role string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok || user.Role != role {
		return nil, store.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

type stubFeedbackStore struct {
	bySchedule map[string]*models.Feedback
}

func newStubFeedbackStore() *stubFeedbackStore {
	return &stubFeedbackStore{bySchedule: map[string]*models.Feedback{}}
}

func (s *stubFeedbackStore) Create(feedback *models.Feedback) error {
	if _, ok := s.bySchedule[feedback.ScheduleID]; ok {
		return store.ErrDuplicate
	}
	cp := *feedback
	s.bySchedule[feedback.ScheduleID] = &cp
	return nil
}

func (s *stubFeedbackStore) FindByScheduleID(scheduleID string) (*models.Feedback, error) {
	feedback, ok := s.bySchedule[scheduleID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *feedback
	return &cp, nil
}

func (s *stubFeedbackStore) List(filter store.FeedbackFilter) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, feedback := range s.bySchedule {
		if filter.MentorID != uuid.Nil && feedback.MentorID != filter.MentorID {
			continue
		}
		if filter.Subject != "" && feedback.Subject != filter.Subject {
			continue
		}
		if filter.Rating != 0 && feedback.Rating != filter.Rating {
			continue
		}
		out = append(out, *feedback)
	}
	return out, nil
}

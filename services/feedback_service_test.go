package services

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/models"
	"github.com/kentanne/CCSPals-sub001/store"
	"github.com/stretchr/testify/require"
)

var feedbackIDPattern = regexp.MustCompile(`^FB-[A-Z0-9]{8}$`)

type feedbackFixture struct {
	svc       *FeedbackService
	schedules *stubScheduleStore
	learner   *models.User
	mentor    *models.User
	schedule  *models.Schedule
}

func newFeedbackFixture(t *testing.T, status string) *feedbackFixture {
	t.Helper()
	learner, mentor := testLearner(), testMentor()

	schedules := newStubScheduleStore()
	schedule := &models.Schedule{
		ScheduleID:  "SCH-TEST0001",
		LearnerID:   learner.ID,
		LearnerName: learner.FullName,
		MentorID:    mentor.ID,
		MentorName:  mentor.FullName,
		Subject:     "Algebra",
		Date:        "2025-01-10",
		Time:        "14:00",
		Duration:    "1 hour",
		Modality:    models.ModalityOnline,
		Status:      status,
	}
	require.NoError(t, schedules.Create(schedule))

	users := newStubUserStore(learner, mentor)
	svc := NewFeedbackService(newStubFeedbackStore(), schedules, users, nil)
	return &feedbackFixture{svc: svc, schedules: schedules, learner: learner, mentor: mentor, schedule: schedule}
}

func (f *feedbackFixture) submit(rating float64, comment string) (*models.Feedback, error) {
	return f.svc.Submit(Principal{UserID: f.learner.ID, Role: "learner"}, SubmitFeedbackInput{
		ScheduleID: f.schedule.ScheduleID,
		Rating:     rating,
		Comment:    comment,
	})
}

func TestSubmitFeedback(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)

	feedback, err := f.submit(5, "Great session")
	require.NoError(t, err)
	require.Regexp(t, feedbackIDPattern, feedback.FeedbackID)
	require.Equal(t, f.schedule.ScheduleID, feedback.ScheduleID)
	require.Equal(t, "Lena Cruz", feedback.LearnerName)
	require.Equal(t, "Marco Reyes", feedback.MentorName)
	require.Equal(t, "Algebra", feedback.Subject)
	require.Equal(t, "2025-01-10", feedback.SessionDate)
	require.Equal(t, 5, feedback.Rating)
}

func TestSubmitFeedbackTwiceConflicts(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)

	_, err := f.submit(5, "Great session")
	require.NoError(t, err)

	_, err = f.submit(5, "Great session")
	require.Equal(t, KindConflict, KindOf(err))
	require.EqualError(t, err, "Feedback already submitted for this session")
}

func TestSubmitFeedbackRequiresLearnerRole(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)

	_, err := f.svc.Submit(Principal{UserID: f.mentor.ID, Role: "mentor"}, SubmitFeedbackInput{
		ScheduleID: f.schedule.ScheduleID, Rating: 5, Comment: "nice",
	})
	require.Equal(t, KindForbidden, KindOf(err))
}

func TestSubmitFeedbackRequiresScheduleLearner(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)

	_, err := f.svc.Submit(Principal{UserID: uuid.New(), Role: "learner"}, SubmitFeedbackInput{
		ScheduleID: f.schedule.ScheduleID, Rating: 5, Comment: "nice",
	})
	require.Equal(t, KindForbidden, KindOf(err))
}

func TestSubmitFeedbackScheduleNotFound(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)

	_, err := f.svc.Submit(Principal{UserID: f.learner.ID, Role: "learner"}, SubmitFeedbackInput{
		ScheduleID: "SCH-MISSING1", Rating: 5, Comment: "nice",
	})
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestSubmitFeedbackRequiresCompletedStatus(t *testing.T) {
	for _, status := range []string{
		models.ScheduleStatusPending,
		models.ScheduleStatusConfirmed,
		models.ScheduleStatusCancelled,
	} {
		f := newFeedbackFixture(t, status)
		_, err := f.submit(4, "too soon")
		require.Equal(t, KindInvalidState, KindOf(err), "status %s", status)
	}
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	for _, rating := range []float64{0, 6, -1, 4.5} {
		f := newFeedbackFixture(t, models.ScheduleStatusCompleted)
		_, err := f.submit(rating, "comment")
		require.Equal(t, KindValidationFailed, KindOf(err), "rating %v", rating)
	}

	for rating := 1; rating <= 5; rating++ {
		f := newFeedbackFixture(t, models.ScheduleStatusCompleted)
		feedback, err := f.submit(float64(rating), "comment")
		require.NoError(t, err, "rating %d", rating)
		require.Equal(t, rating, feedback.Rating)
	}
}

func TestSubmitFeedbackRequiresComment(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)
	_, err := f.submit(3, "")
	require.Equal(t, KindValidationFailed, KindOf(err))
}

func TestLearnerNameFallback(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)

	// Blank denormalized name falls back to the learner's username when the
	// profile has no full name.
	f.schedule.LearnerName = ""
	f.schedules.schedules[f.schedule.ScheduleID].LearnerName = ""
	users := newStubUserStore(&models.User{ID: f.learner.ID, Username: "lena", Role: "learner"}, f.mentor)
	f.svc.users = users

	feedback, err := f.submit(4, "solid")
	require.NoError(t, err)
	require.Equal(t, "lena", feedback.LearnerName)
}

func TestLearnerNameFallsBackToAnonymous(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)

	f.schedules.schedules[f.schedule.ScheduleID].LearnerName = ""
	f.svc.users = newStubUserStore(f.mentor) // learner record gone

	feedback, err := f.submit(4, "solid")
	require.NoError(t, err)
	require.Equal(t, "Anonymous", feedback.LearnerName)
}

func TestFeedbackList(t *testing.T) {
	f := newFeedbackFixture(t, models.ScheduleStatusCompleted)
	_, err := f.submit(5, "Great session")
	require.NoError(t, err)

	byMentor, err := f.svc.List(store.FeedbackFilter{MentorID: f.mentor.ID})
	require.NoError(t, err)
	require.Len(t, byMentor, 1)

	byRating, err := f.svc.List(store.FeedbackFilter{Rating: 3})
	require.NoError(t, err)
	require.Empty(t, byRating)

	bySubject, err := f.svc.List(store.FeedbackFilter{Subject: "Algebra"})
	require.NoError(t, err)
	require.Len(t, bySubject, 1)
}

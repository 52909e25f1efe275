package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

var june15 = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func hm(h, m int) domain.TimeOfDay {
	return domain.NewTimeOfDay(h, m, 0)
}

func newEventService(t *testing.T) (*EventService, *mockEventRepo, *mockCategoryRepo) {
	t.Helper()
	events := &mockEventRepo{}
	categories := &mockCategoryRepo{}
	t.Cleanup(func() {
		events.AssertExpectations(t)
		categories.AssertExpectations(t)
	})

	return NewEventService(events, categories), events, categories
}

func validInput() domain.EventInput {
	return domain.EventInput{
		Name:            "Training",
		Date:            june15,
		StartTime:       hm(9, 0),
		EndTime:         hm(10, 0),
		CategoryID:      "OPTOMETRIE",
		Location:        "Bucuresti",
		MaxParticipants: 2,
	}
}

func TestEventService_HasTimeConflict(t *testing.T) {
	a := domain.Event{ID: "A", Date: june15, StartTime: hm(9, 0), EndTime: hm(10, 0)}

	tests := []struct {
		name        string
		overlapping []domain.Event
		exclude     string
		want        bool
	}{
		{"no events on date", nil, "", false},
		{"overlapping event", []domain.Event{a}, "", true},
		{"only self overlaps", []domain.Event{a}, "A", false},
		{"unknown exclude id", []domain.Event{a}, "missing", true},
		{"candidate outside interval", []domain.Event{{ID: "L", Date: june15, StartTime: hm(14, 0), EndTime: hm(15, 0)}}, "", false},
		{"candidate on another date", []domain.Event{{ID: "O", Date: june15.AddDate(0, 0, 1), StartTime: hm(9, 0), EndTime: hm(11, 0)}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, events, _ := newEventService(t)
			events.On("FindOverlapping", mock.Anything, june15, hm(9, 30), hm(10, 30)).Return(tt.overlapping, nil)

			got, err := svc.HasTimeConflict(context.Background(), june15, hm(9, 30), hm(10, 30), tt.exclude)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventService_HasTimeConflict_RepoError(t *testing.T) {
	svc, events, _ := newEventService(t)
	boom := errors.New("boom")
	events.On("FindOverlapping", mock.Anything, june15, hm(9, 0), hm(10, 0)).Return(nil, boom)

	_, err := svc.HasTimeConflict(context.Background(), june15, hm(9, 0), hm(10, 0), "")

	assert.ErrorIs(t, err, boom)
}

func TestEventService_CreateEvent(t *testing.T) {
	svc, events, categories := newEventService(t)
	in := validInput()

	categories.On("ExistsByID", mock.Anything, "OPTOMETRIE").Return(true, nil)
	events.On("FindOverlapping", mock.Anything, june15, hm(9, 0), hm(10, 0)).Return(nil, nil)
	events.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Name == "Training" && e.MaxParticipants == 2 && e.CategoryID == "OPTOMETRIE"
	})).Return(domain.Event{ID: "e1", Name: "Training", MaxParticipants: 2}, nil)

	created, err := svc.CreateEvent(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "e1", created.ID)
	assert.Equal(t, 2, created.AvailableSpots())
	assert.False(t, created.IsFull())
}

func TestEventService_CreateEvent_CategoryNotFoundWinsOverTimeErrors(t *testing.T) {
	svc, _, categories := newEventService(t)
	in := validInput()
	in.EndTime = in.StartTime

	categories.On("ExistsByID", mock.Anything, "OPTOMETRIE").Return(false, nil)

	_, err := svc.CreateEvent(context.Background(), in)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestEventService_CreateEvent_EndNotAfterStart(t *testing.T) {
	for _, end := range []domain.TimeOfDay{hm(9, 0), hm(8, 0)} {
		t.Run(end.String(), func(t *testing.T) {
			svc, _, _ := newEventService(t)
			in := validInput()
			in.CategoryID = ""
			in.EndTime = end

			_, err := svc.CreateEvent(context.Background(), in)

			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.ErrorIs(t, err, ErrEndBeforeStart)
			assert.EqualError(t, err, "End time must be after start time")
		})
	}
}

func TestEventService_CreateEvent_TimeConflict(t *testing.T) {
	svc, events, _ := newEventService(t)
	in := validInput()
	in.CategoryID = ""

	events.On("FindOverlapping", mock.Anything, june15, hm(9, 0), hm(10, 0)).
		Return([]domain.Event{{ID: "A"}}, nil)

	_, err := svc.CreateEvent(context.Background(), in)

	assert.ErrorIs(t, err, ErrTimeConflict)
	events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_UpdateEvent_ExcludesSelf(t *testing.T) {
	svc, events, _ := newEventService(t)
	in := validInput()
	in.CategoryID = ""
	in.Name = "Renamed"
	in.Description = ""

	existing := domain.Event{ID: "A", Name: "Old", Description: "old", Date: june15, StartTime: hm(9, 0), EndTime: hm(10, 0)}
	events.On("FindByID", mock.Anything, "A").Return(existing, nil)
	events.On("FindOverlapping", mock.Anything, june15, hm(9, 0), hm(10, 0)).Return([]domain.Event{existing}, nil)
	events.On("Update", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.ID == "A" && e.Name == "Renamed" && e.Description == ""
	})).Return(domain.Event{ID: "A", Name: "Renamed"}, nil)

	updated, err := svc.UpdateEvent(context.Background(), "A", in)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestEventService_UpdateEvent_CapacityBelowRegistered(t *testing.T) {
	existing := domain.Event{
		ID: "A", Date: june15, StartTime: hm(9, 0), EndTime: hm(10, 0), MaxParticipants: 3,
		Participants: []domain.Participant{{ID: "p1"}, {ID: "p2"}},
	}

	tests := []struct {
		name    string
		max     int
		wantErr error
	}{
		{"below registered", 1, ErrCapacityBelowRegistered},
		{"equal to registered", 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, events, _ := newEventService(t)
			events.On("FindByID", mock.Anything, "A").Return(existing, nil)
			events.On("FindOverlapping", mock.Anything, june15, hm(9, 0), hm(10, 0)).Return([]domain.Event{existing}, nil)
			if tt.wantErr == nil {
				events.On("Update", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
					return e.MaxParticipants == tt.max
				})).Return(domain.Event{ID: "A", MaxParticipants: tt.max}, nil)
			}

			in := validInput()
			in.CategoryID = ""
			in.MaxParticipants = tt.max

			_, err := svc.UpdateEvent(context.Background(), "A", in)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	svc, events, _ := newEventService(t)
	events.On("FindByID", mock.Anything, "missing").
		Return(domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", ErrEventNotFound))

	_, err := svc.UpdateEvent(context.Background(), "missing", validInput())

	assert.ErrorIs(t, err, ErrEventNotFound)
}

// Scenario: A 09:00-10:00; B 09:30-10:30 conflicts; C 10:00-11:00 conflicts
// on the boundary; D 10:01-11:00 succeeds.
func TestEventService_ConflictScenario(t *testing.T) {
	a := domain.Event{ID: "A", Date: june15, StartTime: hm(9, 0), EndTime: hm(10, 0)}

	tests := []struct {
		name       string
		start, end domain.TimeOfDay
		wantErr    error
	}{
		{"B partial overlap", hm(9, 30), hm(10, 30), ErrTimeConflict},
		{"C touching boundary", hm(10, 0), hm(11, 0), ErrTimeConflict},
		{"D after A", hm(10, 1), hm(11, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, events, _ := newEventService(t)
			events.On("FindOverlapping", mock.Anything, june15, tt.start, tt.end).Return([]domain.Event{a}, nil)
			if tt.wantErr == nil {
				events.On("Create", mock.Anything, mock.Anything).Return(domain.Event{ID: "D"}, nil)
			}

			in := validInput()
			in.CategoryID = ""
			in.StartTime, in.EndTime = tt.start, tt.end

			_, err := svc.CreateEvent(context.Background(), in)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestEventService_DeleteEvent(t *testing.T) {
	svc, events, _ := newEventService(t)
	events.On("ExistsByID", mock.Anything, "e1").Return(true, nil)
	events.On("Delete", mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.DeleteEvent(context.Background(), "e1"))
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	svc, events, _ := newEventService(t)
	events.On("ExistsByID", mock.Anything, "missing").Return(false, nil)

	err := svc.DeleteEvent(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrEventNotFound)
	events.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestEventService_ListEventsByMonth(t *testing.T) {
	svc, events, _ := newEventService(t)
	first := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	events.On("FindByDateRange", mock.Anything, first, last).Return([]domain.Event{{ID: "e1"}}, nil)

	got, err := svc.ListEventsByMonth(context.Background(), 2024, time.February)

	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListEventsByMonth(context.Background(), 2024, 13)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEventService_ListEventsByDateRange_RejectsReversedRange(t *testing.T) {
	svc, _, _ := newEventService(t)

	_, err := svc.ListEventsByDateRange(context.Background(), june15, june15.AddDate(0, 0, -1))

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEventService_HasAvailableSpots(t *testing.T) {
	svc, events, _ := newEventService(t)
	events.On("FindByID", mock.Anything, "open").Return(domain.Event{MaxParticipants: 2, Participants: []domain.Participant{{ID: "p1"}}}, nil)
	events.On("FindByID", mock.Anything, "full").Return(domain.Event{MaxParticipants: 1, Participants: []domain.Participant{{ID: "p1"}}}, nil)

	open, err := svc.HasAvailableSpots(context.Background(), "open")
	require.NoError(t, err)
	assert.True(t, open)

	full, err := svc.HasAvailableSpots(context.Background(), "full")
	require.NoError(t, err)
	assert.False(t, full)
}

func TestEventService_ListEventsByCategoryAndLocation(t *testing.T) {
	svc, events, _ := newEventService(t)
	events.On("FindByCategoryID", mock.Anything, "OPTOMETRIE").Return([]domain.Event{{ID: "e1"}}, nil)
	events.On("FindByLocation", mock.Anything, "cluj").Return(nil, errors.New("db down"))

	byCategory, err := svc.ListEventsByCategory(context.Background(), "OPTOMETRIE")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	_, err = svc.ListEventsByLocation(context.Background(), "cluj")
	assert.Error(t, err)
}

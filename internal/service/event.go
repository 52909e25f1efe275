package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository"
)

var (
	ErrEventNotFound   = repository.ErrEventNotFound
	ErrTimeConflict    = errors.New("there is already an event scheduled during this time")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEndBeforeStart  = &ArgumentError{Msg: "End time must be after start time"}

	ErrCapacityBelowRegistered = &ArgumentError{Msg: "Max participants cannot be lower than the number of registered participants"}
)

// ArgumentError is a caller mistake; Msg is safe to show to the client.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id string) (domain.Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByDate(ctx context.Context, date time.Time) ([]domain.Event, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]domain.Event, error)
	FindByLocation(ctx context.Context, location string) ([]domain.Event, error)
	FindOverlapping(ctx context.Context, date time.Time, start, end domain.TimeOfDay) ([]domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type CategoryChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type EventService struct {
	repo       EventRepository
	categories CategoryChecker
}

func NewEventService(repo EventRepository, categories CategoryChecker) *EventService {
	return &EventService{
		repo:       repo,
		categories: categories,
	}
}

// HasTimeConflict reports whether any event on date, other than excludeEventID,
// overlaps [start, end]. Touching intervals count as overlapping.
func (s *EventService) HasTimeConflict(ctx context.Context, date time.Time, start, end domain.TimeOfDay, excludeEventID string) (bool, error) {
	overlapping, err := s.repo.FindOverlapping(ctx, date, start, end)
	if err != nil {
		return false, fmt.Errorf("s.repo.FindOverlapping -> %w", err)
	}

	for _, e := range overlapping {
		if excludeEventID != "" && e.ID == excludeEventID {
			continue
		}
		if e.Overlaps(date, start, end) {
			return true, nil
		}
	}

	return false, nil
}

func (s *EventService) CreateEvent(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	if err := s.validate(ctx, in, ""); err != nil {
		return domain.Event{}, err
	}

	var event domain.Event
	event.Apply(in)

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.validate(ctx, in, id); err != nil {
		return domain.Event{}, err
	}
	if in.MaxParticipants < len(event.Participants) {
		return domain.Event{}, ErrCapacityBelowRegistered
	}

	event.Apply(in)

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// validate runs the scheduling checks in order; the first failure wins.
func (s *EventService) validate(ctx context.Context, in domain.EventInput, excludeEventID string) error {
	if in.CategoryID != "" {
		exists, err := s.categories.ExistsByID(ctx, in.CategoryID)
		if err != nil {
			return fmt.Errorf("s.categories.ExistsByID -> %w", err)
		}
		if !exists {
			return ErrCategoryNotFound
		}
	}

	if !in.EndTime.After(in.StartTime) {
		return ErrEndBeforeStart
	}

	conflict, err := s.HasTimeConflict(ctx, in.Date, in.StartTime, in.EndTime, excludeEventID)
	if err != nil {
		return fmt.Errorf("s.HasTimeConflict -> %w", err)
	}
	if conflict {
		return ErrTimeConflict
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.ExistsByID -> %w", err)
	}
	if !exists {
		return ErrEventNotFound
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Event, error) {
	if month < time.January || month > time.December {
		return nil, &ArgumentError{Msg: "Month must be between 1 and 12"}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	events, err := s.repo.FindByDateRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDateRange -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByDay(ctx context.Context, date time.Time) ([]domain.Event, error) {
	events, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDate -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByCategory(ctx context.Context, categoryID string) ([]domain.Event, error) {
	events, err := s.repo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCategoryID -> %w", err)
	}

	return events, nil
}

// ListEventsByDateRange includes both from and to.
func (s *EventService) ListEventsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	if to.Before(from) {
		return nil, &ArgumentError{Msg: "End date must not be before start date"}
	}

	events, err := s.repo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDateRange -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByLocation(ctx context.Context, location string) ([]domain.Event, error) {
	events, err := s.repo.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLocation -> %w", err)
	}

	return events, nil
}

func (s *EventService) HasAvailableSpots(ctx context.Context, id string) (bool, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return !event.IsFull(), nil
}

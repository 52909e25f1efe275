package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id string) (dao.Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindByDate(ctx context.Context, date time.Time) ([]dao.Event, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]dao.Event, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]dao.Event, error)
	FindByLocation(ctx context.Context, location string) ([]dao.Event, error)
	FindOverlapping(ctx context.Context, date time.Time, start, end dao.Clock) ([]dao.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDAOToDomain(found), nil
}

func (r *EventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	exists, err := r.dao.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByID -> %w", err)
	}

	return exists, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindByDate(ctx, domain.TruncateDate(date))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDate -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindByDateRange(ctx, domain.TruncateDate(from), domain.TruncateDate(to))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDateRange -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) FindByCategoryID(ctx context.Context, categoryID string) ([]domain.Event, error) {
	found, err := r.dao.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCategoryID -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) FindByLocation(ctx context.Context, location string) ([]domain.Event, error) {
	found, err := r.dao.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLocation -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) FindOverlapping(ctx context.Context, date time.Time, start, end domain.TimeOfDay) ([]domain.Event, error) {
	found, err := r.dao.FindOverlapping(ctx, domain.TruncateDate(date), dao.Clock(start), dao.Clock(end))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOverlapping -> %w", err)
	}

	return eventsDAOToDomain(found), nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func eventDomainToDAO(e domain.Event) dao.Event {
	var categoryID *string
	if e.CategoryID != "" {
		id := e.CategoryID
		categoryID = &id
	}

	return dao.Event{
		ID:              e.ID,
		Name:            e.Name,
		EventDate:       domain.TruncateDate(e.Date),
		StartTime:       dao.Clock(e.StartTime),
		EndTime:         dao.Clock(e.EndTime),
		CategoryID:      categoryID,
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func eventDAOToDomain(e dao.Event) domain.Event {
	var categoryID string
	if e.CategoryID != nil {
		categoryID = *e.CategoryID
	}

	participants := make([]domain.Participant, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, participantDAOToDomain(p))
	}

	return domain.Event{
		ID:              e.ID,
		Name:            e.Name,
		Date:            domain.TruncateDate(e.EventDate),
		StartTime:       domain.TimeOfDay(e.StartTime),
		EndTime:         domain.TimeOfDay(e.EndTime),
		CategoryID:      categoryID,
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
		Description:     e.Description,
		Participants:    participants,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func eventsDAOToDomain(events []dao.Event) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		out = append(out, eventDAOToDomain(e))
	}

	return out
}

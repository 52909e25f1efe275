package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository"
)

var (
	ErrParticipantNotFound   = repository.ErrParticipantNotFound
	ErrEventFull             = repository.ErrEventFull
	ErrDuplicateRegistration = repository.ErrDuplicateRegistration
)

type ParticipantRepository interface {
	CreateForEvent(ctx context.Context, p domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id string) (domain.Participant, error)
	ExistsByEmailAndEventID(ctx context.Context, email, eventID string) (bool, error)
	FindByEventID(ctx context.Context, eventID string) ([]domain.Participant, error)
	FindByManagerEmail(ctx context.Context, email string) ([]domain.Participant, error)
	FindByLocation(ctx context.Context, location string) ([]domain.Participant, error)
	Delete(ctx context.Context, id string) error
}

type EventFinder interface {
	FindByID(ctx context.Context, id string) (domain.Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type ParticipantService struct {
	repo   ParticipantRepository
	events EventFinder
}

func NewParticipantService(repo ParticipantRepository, events EventFinder) *ParticipantService {
	return &ParticipantService{
		repo:   repo,
		events: events,
	}
}

// RegisterForEvent checks the event exists, is not full and does not already
// hold the participant email, in that order, then stores the registration.
func (s *ParticipantService) RegisterForEvent(ctx context.Context, eventID string, in domain.ParticipantInput) (domain.Participant, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.IsFull() {
		return domain.Participant{}, ErrEventFull
	}

	email := normalizeEmail(in.ParticipantEmail)

	registered, err := s.repo.ExistsByEmailAndEventID(ctx, email, eventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.ExistsByEmailAndEventID -> %w", err)
	}
	if registered {
		return domain.Participant{}, ErrDuplicateRegistration
	}

	created, err := s.repo.CreateForEvent(ctx, domain.Participant{
		ParticipantEmail: email,
		ParticipantName:  strings.TrimSpace(in.ParticipantName),
		ManagerEmail:     normalizeEmail(in.ManagerEmail),
		Location:         strings.TrimSpace(in.Location),
		EventID:          eventID,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.CreateForEvent -> %w", err)
	}

	return created, nil
}

func (s *ParticipantService) RemoveParticipant(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id string) (domain.Participant, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return p, nil
}

func (s *ParticipantService) ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error) {
	exists, err := s.events.ExistsByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.events.ExistsByID -> %w", err)
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	participants, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) ListByManagerEmail(ctx context.Context, email string) ([]domain.Participant, error) {
	participants, err := s.repo.FindByManagerEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByManagerEmail -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) ListByLocation(ctx context.Context, location string) ([]domain.Participant, error) {
	participants, err := s.repo.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLocation -> %w", err)
	}

	return participants, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

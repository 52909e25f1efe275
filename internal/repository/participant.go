package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound   = dao.ErrParticipantNotFound
	ErrEventFull             = dao.ErrEventFull
	ErrDuplicateRegistration = dao.ErrDuplicateRegistration
)

type ParticipantDAO interface {
	InsertForEvent(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id string) (dao.Participant, error)
	ExistsByEmailAndEventID(ctx context.Context, email, eventID string) (bool, error)
	FindByEventID(ctx context.Context, eventID string) ([]dao.Participant, error)
	FindByManagerEmail(ctx context.Context, email string) ([]dao.Participant, error)
	FindByLocation(ctx context.Context, location string) ([]dao.Participant, error)
	Delete(ctx context.Context, id string) error
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

// CreateForEvent stores p under its event; capacity and duplicates are re-checked
// while the event row is locked.
func (r *ParticipantRepository) CreateForEvent(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	created, err := r.dao.InsertForEvent(ctx, dao.Participant{
		ParticipantEmail: p.ParticipantEmail,
		ParticipantName:  p.ParticipantName,
		ManagerEmail:     p.ManagerEmail,
		Location:         p.Location,
		EventID:          p.EventID,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.InsertForEvent -> %w", err)
	}

	return participantDAOToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return participantDAOToDomain(found), nil
}

func (r *ParticipantRepository) ExistsByEmailAndEventID(ctx context.Context, email, eventID string) (bool, error) {
	exists, err := r.dao.ExistsByEmailAndEventID(ctx, email, eventID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByEmailAndEventID -> %w", err)
	}

	return exists, nil
}

func (r *ParticipantRepository) FindByEventID(ctx context.Context, eventID string) ([]domain.Participant, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	return participantsDAOToDomain(found), nil
}

func (r *ParticipantRepository) FindByManagerEmail(ctx context.Context, email string) ([]domain.Participant, error) {
	found, err := r.dao.FindByManagerEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByManagerEmail -> %w", err)
	}

	return participantsDAOToDomain(found), nil
}

func (r *ParticipantRepository) FindByLocation(ctx context.Context, location string) ([]domain.Participant, error) {
	found, err := r.dao.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLocation -> %w", err)
	}

	return participantsDAOToDomain(found), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func participantDAOToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:               p.ID,
		ParticipantEmail: p.ParticipantEmail,
		ParticipantName:  p.ParticipantName,
		ManagerEmail:     p.ManagerEmail,
		Location:         p.Location,
		EventID:          p.EventID,
		CreatedAt:        p.CreatedAt,
	}
}

func participantsDAOToDomain(participants []dao.Participant) []domain.Participant {
	out := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		out = append(out, participantDAOToDomain(p))
	}

	return out
}

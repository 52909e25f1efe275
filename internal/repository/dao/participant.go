package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrParticipantNotFound   = errors.New("participant not found")
	ErrEventFull             = errors.New("event is already at full capacity")
	ErrDuplicateRegistration = errors.New("participant is already registered for this event")
)

const participantEventUniqueIndex = "idx_participant_email_event"

type Participant struct {
	ID string `gorm:"primaryKey;type:varchar(36)"`

	ParticipantEmail string `gorm:"not null;uniqueIndex:idx_participant_email_event,priority:2"`
	ParticipantName  string
	ManagerEmail     string `gorm:"not null;index"`
	Location         string `gorm:"not null"`
	EventID          string `gorm:"type:varchar(36);not null;uniqueIndex:idx_participant_email_event,priority:1"`

	CreatedAt time.Time `gorm:"not null"`
}

func (p *Participant) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	return nil
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

// InsertForEvent creates the participant while holding a row lock on its event,
// re-checking capacity and duplicate registration under that lock.
func (d *ParticipantDAO) InsertForEvent(ctx context.Context, participant Participant) (Participant, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "max_participants").
			First(&event, "id = ?", participant.EventID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return result.Error
		}

		var registered int64
		if err := tx.Model(&Participant{}).Where("event_id = ?", event.ID).Count(&registered).Error; err != nil {
			return err
		}
		if registered >= int64(event.MaxParticipants) {
			return ErrEventFull
		}

		var duplicates int64
		if err := tx.Model(&Participant{}).
			Where("event_id = ? AND participant_email = ?", event.ID, participant.ParticipantEmail).
			Count(&duplicates).Error; err != nil {
			return err
		}
		if duplicates > 0 {
			return ErrDuplicateRegistration
		}

		if err := tx.Create(&participant).Error; err != nil {
			if isUniqueViolation(err, participantEventUniqueIndex) {
				return ErrDuplicateRegistration
			}

			return err
		}

		return nil
	})
	if err != nil {
		return Participant{}, err
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) ExistsByEmailAndEventID(ctx context.Context, email, eventID string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Participant{}).
		Where("participant_email = ? AND event_id = ?", email, eventID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *ParticipantDAO) find(ctx context.Context, query string, args ...any) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Where(query, args...).Order("created_at ASC").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindByEventID(ctx context.Context, eventID string) ([]Participant, error) {
	return d.find(ctx, "event_id = ?", eventID)
}

func (d *ParticipantDAO) FindByManagerEmail(ctx context.Context, email string) ([]Participant, error) {
	return d.find(ctx, "manager_email = ?", email)
}

func (d *ParticipantDAO) FindByLocation(ctx context.Context, location string) ([]Participant, error) {
	return d.find(ctx, "location ILIKE ?", "%"+location+"%")
}

func (d *ParticipantDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

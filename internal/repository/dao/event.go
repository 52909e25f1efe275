package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type Event struct {
	ID string `gorm:"primaryKey;type:varchar(36)"`

	Name            string    `gorm:"not null"`
	EventDate       time.Time `gorm:"type:date;not null;index:idx_events_date_start,priority:1"`
	StartTime       Clock     `gorm:"type:time;not null;index:idx_events_date_start,priority:2"`
	EndTime         Clock     `gorm:"type:time;not null"`
	CategoryID      *string   `gorm:"type:varchar(64);index"`
	Location        string    `gorm:"not null"`
	MaxParticipants int       `gorm:"not null;check:max_participants >= 1"`
	Description     string

	Participants []Participant `gorm:"foreignKey:EventID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	return nil
}

// updatableEventColumns lists what an update overwrites; nothing is merged.
var updatableEventColumns = []string{
	"Name", "EventDate", "StartTime", "EndTime", "CategoryID", "Location", "MaxParticipants", "Description", "UpdatedAt",
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func withParticipants(db *gorm.DB) *gorm.DB {
	return db.Preload("Participants", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Omit("Participants").Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{ID: event.ID}).
		Select(updatableEventColumns).
		Updates(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) FindByID(ctx context.Context, id string) (Event, error) {
	var event Event

	result := withParticipants(d.db.WithContext(ctx)).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *EventDAO) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]Event, error) {
	var events []Event

	result := scope(withParticipants(d.db.WithContext(ctx))).
		Order("event_date ASC").
		Order("start_time ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	return d.find(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

func (d *EventDAO) FindByDate(ctx context.Context, date time.Time) ([]Event, error) {
	return d.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("event_date = ?", date)
	})
}

// FindByDateRange is inclusive on both ends.
func (d *EventDAO) FindByDateRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	return d.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("event_date BETWEEN ? AND ?", from, to)
	})
}

func (d *EventDAO) FindByCategoryID(ctx context.Context, categoryID string) ([]Event, error) {
	return d.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", categoryID)
	})
}

func (d *EventDAO) FindByLocation(ctx context.Context, location string) ([]Event, error) {
	return d.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("location ILIKE ?", "%"+location+"%")
	})
}

// FindOverlapping returns events on date whose interval touches [start, end].
func (d *EventDAO) FindOverlapping(ctx context.Context, date time.Time, start, end Clock) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("event_date = ? AND start_time <= ? AND end_time >= ?", date, end, start).
		Order("start_time ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Delete removes the participants of the event and then the event, in one transaction.
func (d *EventDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&Participant{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Event{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
}

package domain

import "time"

type Event struct {
	ID              string
	Name            string
	Date            time.Time
	StartTime       TimeOfDay
	EndTime         TimeOfDay
	CategoryID      string
	Location        string
	MaxParticipants int
	Description     string
	Participants    []Participant
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EventInput carries the caller-supplied fields of an event.
// Update replaces every field, nothing is merged.
type EventInput struct {
	Name            string
	Date            time.Time
	StartTime       TimeOfDay
	EndTime         TimeOfDay
	CategoryID      string
	Location        string
	MaxParticipants int
	Description     string
}

func (e *Event) AvailableSpots() int {
	return e.MaxParticipants - len(e.Participants)
}

func (e *Event) IsFull() bool {
	return e.AvailableSpots() <= 0
}

// Overlaps reports whether e shares date with the given interval.
// Bounds are inclusive: an event ending at 10:00 overlaps one starting at 10:00.
func (e *Event) Overlaps(date time.Time, start, end TimeOfDay) bool {
	if !TruncateDate(e.Date).Equal(TruncateDate(date)) {
		return false
	}

	return e.StartTime <= end && e.EndTime >= start
}

func (e *Event) Apply(in EventInput) {
	e.Name = in.Name
	e.Date = TruncateDate(in.Date)
	e.StartTime = in.StartTime
	e.EndTime = in.EndTime
	e.CategoryID = in.CategoryID
	e.Location = in.Location
	e.MaxParticipants = in.MaxParticipants
	e.Description = in.Description
}

package response

import (
	"time"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

type Event struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	EventDate       string        `json:"eventDate"`
	StartTime       string        `json:"startTime"`
	EndTime         string        `json:"endTime"`
	CategoryID      string        `json:"categoryId,omitempty"`
	Location        string        `json:"location"`
	MaxParticipants int           `json:"maxParticipants"`
	Description     string        `json:"description,omitempty"`
	Participants    []Participant `json:"participants"`
	AvailableSpots  int           `json:"availableSpots"`
	IsFull          bool          `json:"isFull"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type Participant struct {
	ID               string    `json:"id"`
	ParticipantEmail string    `json:"participantEmail"`
	ParticipantName  string    `json:"participantName,omitempty"`
	ManagerEmail     string    `json:"managerEmail"`
	Location         string    `json:"location"`
	EventID          string    `json:"eventId"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	BackColor string `json:"backColor"`
}

func NewEvent(e domain.Event) Event {
	participants := make([]Participant, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, NewParticipant(p))
	}

	return Event{
		ID:              e.ID,
		Name:            e.Name,
		EventDate:       e.Date.Format(domain.DateLayout),
		StartTime:       e.StartTime.String(),
		EndTime:         e.EndTime.String(),
		CategoryID:      e.CategoryID,
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
		Description:     e.Description,
		Participants:    participants,
		AvailableSpots:  e.AvailableSpots(),
		IsFull:          e.IsFull(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func NewEvents(events []domain.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, NewEvent(e))
	}

	return out
}

func NewParticipant(p domain.Participant) Participant {
	return Participant{
		ID:               p.ID,
		ParticipantEmail: p.ParticipantEmail,
		ParticipantName:  p.ParticipantName,
		ManagerEmail:     p.ManagerEmail,
		Location:         p.Location,
		EventID:          p.EventID,
		CreatedAt:        p.CreatedAt,
	}
}

func NewParticipants(participants []domain.Participant) []Participant {
	out := make([]Participant, 0, len(participants))
	for _, p := range participants {
		out = append(out, NewParticipant(p))
	}

	return out
}

func NewCategory(c domain.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		BackColor: c.BackColor,
	}
}

func NewCategories(categories []domain.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategory(c))
	}

	return out
}

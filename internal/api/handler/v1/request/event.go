package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

var (
	errBlank       = errors.New("cannot be blank")
	errInvalidDate = errors.New("must be a date in YYYY-MM-DD format")
	errInvalidTime = errors.New("must be a time in HH:MM or HH:MM:SS format")
)

// notBlank rejects values that are only whitespace; Required accepts them.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errBlank
	}

	return nil
}

func dateRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return errInvalidDate
	}

	return nil
}

func timeRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseTimeOfDay(s); err != nil {
		return errInvalidTime
	}

	return nil
}

type EventRequest struct {
	Name            string `json:"name"`
	EventDate       string `json:"eventDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	CategoryID      string `json:"categoryId"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"maxParticipants"`
	Description     string `json:"description"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.By(notBlank), validation.Length(1, 255)),
		validation.Field(&req.EventDate, validation.Required, validation.By(dateRule)),
		validation.Field(&req.StartTime, validation.Required, validation.By(timeRule)),
		validation.Field(&req.EndTime, validation.Required, validation.By(timeRule)),
		validation.Field(&req.Location, validation.Required, validation.By(notBlank), validation.Length(1, 255)),
		validation.Field(&req.MaxParticipants, validation.Required, validation.Min(1)),
	)
}

// ToInput converts a request that passed Validate.
func (req *EventRequest) ToInput() domain.EventInput {
	date, _ := domain.ParseDate(req.EventDate)
	start, _ := domain.ParseTimeOfDay(req.StartTime)
	end, _ := domain.ParseTimeOfDay(req.EndTime)

	return domain.EventInput{
		Name:            strings.TrimSpace(req.Name),
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		CategoryID:      strings.TrimSpace(req.CategoryID),
		Location:        strings.TrimSpace(req.Location),
		MaxParticipants: req.MaxParticipants,
		Description:     req.Description,
	}
}

type ConflictQuery struct {
	Date           string `form:"date"`
	StartTime      string `form:"startTime"`
	EndTime        string `form:"endTime"`
	ExcludeEventID string `form:"excludeEventId"`
}

func (q *ConflictQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Date, validation.Required, validation.By(dateRule)),
		validation.Field(&q.StartTime, validation.Required, validation.By(timeRule)),
		validation.Field(&q.EndTime, validation.Required, validation.By(timeRule)),
	)
}

type MonthQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

func (q *MonthQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Year, validation.Required, validation.Min(1)),
		validation.Field(&q.Month, validation.Required, validation.Min(1), validation.Max(12)),
	)
}

type DayQuery struct {
	Date string `form:"date"`
}

func (q *DayQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Date, validation.Required, validation.By(dateRule)),
	)
}

type DateRangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (q *DateRangeQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.StartDate, validation.Required, validation.By(dateRule)),
		validation.Field(&q.EndDate, validation.Required, validation.By(dateRule)),
	)
}

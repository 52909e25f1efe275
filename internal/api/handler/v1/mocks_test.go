package v1

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

type mockEventSvc struct {
	mock.Mock
}

func (m *mockEventSvc) HasTimeConflict(ctx context.Context, date time.Time, start, end domain.TimeOfDay, excludeEventID string) (bool, error) {
	args := m.Called(ctx, date, start, end, excludeEventID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventSvc) CreateEvent(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventSvc) UpdateEvent(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventSvc) DeleteEvent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventSvc) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventSvc) list(args mock.Arguments) ([]domain.Event, error) {
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *mockEventSvc) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return m.list(m.Called(ctx))
}

func (m *mockEventSvc) ListEventsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Event, error) {
	return m.list(m.Called(ctx, year, month))
}

func (m *mockEventSvc) ListEventsByDay(ctx context.Context, date time.Time) ([]domain.Event, error) {
	return m.list(m.Called(ctx, date))
}

func (m *mockEventSvc) ListEventsByCategory(ctx context.Context, categoryID string) ([]domain.Event, error) {
	return m.list(m.Called(ctx, categoryID))
}

func (m *mockEventSvc) ListEventsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	return m.list(m.Called(ctx, from, to))
}

func (m *mockEventSvc) ListEventsByLocation(ctx context.Context, location string) ([]domain.Event, error) {
	return m.list(m.Called(ctx, location))
}

func (m *mockEventSvc) HasAvailableSpots(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockParticipantSvc struct {
	mock.Mock
}

func (m *mockParticipantSvc) RegisterForEvent(ctx context.Context, eventID string, in domain.ParticipantInput) (domain.Participant, error) {
	args := m.Called(ctx, eventID, in)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *mockParticipantSvc) RemoveParticipant(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockParticipantSvc) GetParticipant(ctx context.Context, id string) (domain.Participant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *mockParticipantSvc) list(args mock.Arguments) ([]domain.Participant, error) {
	participants, _ := args.Get(0).([]domain.Participant)
	return participants, args.Error(1)
}

func (m *mockParticipantSvc) ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error) {
	return m.list(m.Called(ctx, eventID))
}

func (m *mockParticipantSvc) ListByManagerEmail(ctx context.Context, email string) ([]domain.Participant, error) {
	return m.list(m.Called(ctx, email))
}

func (m *mockParticipantSvc) ListByLocation(ctx context.Context, location string) ([]domain.Participant, error) {
	return m.list(m.Called(ctx, location))
}

type mockCategorySvc struct {
	mock.Mock
}

func (m *mockCategorySvc) InitializeDefaultCategories(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCategorySvc) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategorySvc) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategorySvc) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

type mockAuthSvc struct {
	mock.Mock
}

func (m *mockAuthSvc) Register(ctx context.Context, email, password string) (domain.Identity, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Identity), args.Error(1)
}

func (m *mockAuthSvc) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Identity), args.Error(1)
}

func (m *mockAuthSvc) Logout(token string) {
	m.Called(token)
}

type mockUserSvc struct {
	mock.Mock
}

func (m *mockUserSvc) GetIdentity(ctx context.Context, id string) (domain.Identity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Identity), args.Error(1)
}

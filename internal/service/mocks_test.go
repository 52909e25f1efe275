package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepo) events(args mock.Arguments) ([]domain.Event, error) {
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	return m.events(m.Called(ctx))
}

func (m *mockEventRepo) FindByDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	return m.events(m.Called(ctx, date))
}

func (m *mockEventRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	return m.events(m.Called(ctx, from, to))
}

func (m *mockEventRepo) FindByCategoryID(ctx context.Context, categoryID string) ([]domain.Event, error) {
	return m.events(m.Called(ctx, categoryID))
}

func (m *mockEventRepo) FindByLocation(ctx context.Context, location string) ([]domain.Event, error) {
	return m.events(m.Called(ctx, location))
}

func (m *mockEventRepo) FindOverlapping(ctx context.Context, date time.Time, start, end domain.TimeOfDay) ([]domain.Event, error) {
	return m.events(m.Called(ctx, date, start, end))
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockParticipantRepo struct {
	mock.Mock
}

func (m *mockParticipantRepo) CreateForEvent(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *mockParticipantRepo) FindByID(ctx context.Context, id string) (domain.Participant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *mockParticipantRepo) ExistsByEmailAndEventID(ctx context.Context, email, eventID string) (bool, error) {
	args := m.Called(ctx, email, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *mockParticipantRepo) participants(args mock.Arguments) ([]domain.Participant, error) {
	participants, _ := args.Get(0).([]domain.Participant)
	return participants, args.Error(1)
}

func (m *mockParticipantRepo) FindByEventID(ctx context.Context, eventID string) ([]domain.Participant, error) {
	return m.participants(m.Called(ctx, eventID))
}

func (m *mockParticipantRepo) FindByManagerEmail(ctx context.Context, email string) ([]domain.Participant, error) {
	return m.participants(m.Called(ctx, email))
}

func (m *mockParticipantRepo) FindByLocation(ctx context.Context, location string) ([]domain.Participant, error) {
	return m.participants(m.Called(ctx, location))
}

func (m *mockParticipantRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateWithRole(ctx context.Context, user domain.User, roleName string) (domain.User, error) {
	args := m.Called(ctx, user, roleName)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) FindRoleNames(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type mockRevoker struct {
	mock.Mock
}

func (m *mockRevoker) Add(token string, expiresAt time.Time) {
	m.Called(token, expiresAt)
}

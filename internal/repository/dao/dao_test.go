package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		log.Println("docker is not reachable, skipping postgres tests")
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=calendar",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=calendar_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %v", err)
	}
	_ = resource.Expire(180)

	dsn := fmt.Sprintf("host=localhost port=%s user=calendar password=secret dbname=calendar_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	pool.MaxWait = 90 * time.Second
	if err = pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err = sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres: %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres is not available")
	}

	require.NoError(t, testDB.Exec("TRUNCATE participants, events, categories, user_roles, roles, users CASCADE").Error)

	return testDB
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(h, m int) Clock {
	return Clock(domain.NewTimeOfDay(h, m, 0))
}

func insertEvent(t *testing.T, d *EventDAO, name string, date time.Time, start, end Clock, max int) Event {
	t.Helper()

	e, err := d.Insert(context.Background(), Event{
		Name:            name,
		EventDate:       date,
		StartTime:       start,
		EndTime:         end,
		Location:        "Bucuresti Mall",
		MaxParticipants: max,
	})
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)

	return e
}

func TestEventDAO_FindOverlapping(t *testing.T) {
	db := requireDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	a := insertEvent(t, d, "A", day(2025, 6, 15), clock(9, 0), clock(10, 0), 5)
	insertEvent(t, d, "other day", day(2025, 6, 16), clock(9, 0), clock(10, 0), 5)

	found, err := d.FindOverlapping(ctx, day(2025, 6, 15), clock(9, 30), clock(10, 30))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.ID, found[0].ID)
	assert.Equal(t, clock(9, 0), found[0].StartTime)

	found, err = d.FindOverlapping(ctx, day(2025, 6, 15), clock(10, 0), clock(11, 0))
	require.NoError(t, err)
	assert.Len(t, found, 1, "touching intervals overlap")

	found, err = d.FindOverlapping(ctx, day(2025, 6, 15), clock(10, 1), clock(11, 0))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestEventDAO_Reads(t *testing.T) {
	db := requireDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	late := insertEvent(t, d, "late", day(2025, 6, 15), clock(14, 0), clock(15, 0), 5)
	early := insertEvent(t, d, "early", day(2025, 6, 15), clock(9, 0), clock(10, 0), 5)
	july := insertEvent(t, d, "july", day(2025, 7, 1), clock(9, 0), clock(10, 0), 5)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{early.ID, late.ID, july.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	onDay, err := d.FindByDate(ctx, day(2025, 6, 15))
	require.NoError(t, err)
	require.Len(t, onDay, 2)
	assert.Equal(t, early.ID, onDay[0].ID)

	inRange, err := d.FindByDateRange(ctx, day(2025, 6, 15), day(2025, 7, 1))
	require.NoError(t, err)
	assert.Len(t, inRange, 3, "range is inclusive")

	byLocation, err := d.FindByLocation(ctx, "mall")
	require.NoError(t, err)
	assert.Len(t, byLocation, 3)

	_, err = d.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventDAO_UpdateOverwritesFields(t *testing.T) {
	db := requireDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	e := insertEvent(t, d, "before", day(2025, 6, 15), clock(9, 0), clock(10, 0), 5)
	e.Name = "after"
	e.Description = ""
	e.MaxParticipants = 2

	updated, err := d.Update(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, 2, updated.MaxParticipants)

	_, err = d.Update(ctx, Event{ID: "missing", Name: "x", EventDate: day(2025, 1, 1), MaxParticipants: 1})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventDAO_DeleteRemovesParticipants(t *testing.T) {
	db := requireDB(t)
	events := NewEventDAO(db)
	participants := NewParticipantDAO(db)
	ctx := context.Background()

	e := insertEvent(t, events, "E", day(2025, 6, 15), clock(9, 0), clock(10, 0), 5)
	_, err := participants.InsertForEvent(ctx, Participant{
		ParticipantEmail: "p@example.com", ManagerEmail: "m@example.com", Location: "Cluj", EventID: e.ID,
	})
	require.NoError(t, err)

	require.NoError(t, events.Delete(ctx, e.ID))

	left, err := participants.FindByEventID(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	assert.ErrorIs(t, events.Delete(ctx, e.ID), ErrEventNotFound)
}

func TestParticipantDAO_InsertForEvent(t *testing.T) {
	db := requireDB(t)
	events := NewEventDAO(db)
	d := NewParticipantDAO(db)
	ctx := context.Background()

	e := insertEvent(t, events, "E", day(2025, 6, 15), clock(9, 0), clock(10, 0), 2)
	p := func(email string) Participant {
		return Participant{ParticipantEmail: email, ManagerEmail: "boss@example.com", Location: "Iasi", EventID: e.ID}
	}

	_, err := d.InsertForEvent(ctx, p("user1@example.com"))
	require.NoError(t, err)

	_, err = d.InsertForEvent(ctx, p("user1@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateRegistration)

	_, err = d.InsertForEvent(ctx, p("user2@example.com"))
	require.NoError(t, err)

	_, err = d.InsertForEvent(ctx, p("user3@example.com"))
	assert.ErrorIs(t, err, ErrEventFull)

	missing := p("user4@example.com")
	missing.EventID = "missing"
	_, err = d.InsertForEvent(ctx, missing)
	assert.ErrorIs(t, err, ErrEventNotFound)

	loaded, err := events.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Participants, 2)

	byManager, err := d.FindByManagerEmail(ctx, "boss@example.com")
	require.NoError(t, err)
	assert.Len(t, byManager, 2)

	byLocation, err := d.FindByLocation(ctx, "IAS")
	require.NoError(t, err)
	assert.Len(t, byLocation, 2)
}

func TestParticipantDAO_ConcurrentRegistrationRespectsCapacity(t *testing.T) {
	db := requireDB(t)
	events := NewEventDAO(db)
	d := NewParticipantDAO(db)
	ctx := context.Background()

	e := insertEvent(t, events, "E", day(2025, 6, 15), clock(9, 0), clock(10, 0), 3)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		oks int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := d.InsertForEvent(ctx, Participant{
				ParticipantEmail: fmt.Sprintf("user%d@example.com", i),
				ManagerEmail:     "m@example.com",
				Location:         "Cluj",
				EventID:          e.ID,
			})
			if err == nil {
				mu.Lock()
				oks++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, oks)

	registered, err := d.FindByEventID(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, registered, 3)
}

func TestParticipantDAO_Delete(t *testing.T) {
	db := requireDB(t)
	events := NewEventDAO(db)
	d := NewParticipantDAO(db)
	ctx := context.Background()

	e := insertEvent(t, events, "E", day(2025, 6, 15), clock(9, 0), clock(10, 0), 2)
	p, err := d.InsertForEvent(ctx, Participant{
		ParticipantEmail: "p@example.com", ManagerEmail: "m@example.com", Location: "Cluj", EventID: e.ID,
	})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, p.ID))
	assert.ErrorIs(t, d.Delete(ctx, p.ID), ErrParticipantNotFound)

	_, err = d.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestCategoryDAO(t *testing.T) {
	db := requireDB(t)
	d := NewCategoryDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, Category{ID: "OPTOMETRIE", Name: "ZIUA OPTOMETRIEI", Color: "#9900ff", BackColor: "#e6ccff"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Category{ID: "OPTOMETRIE", Name: "duplicate"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	exists, err := d.ExistsByID(ctx, "OPTOMETRIE")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := d.FindByID(ctx, "OPTOMETRIE")
	require.NoError(t, err)
	assert.Equal(t, "ZIUA OPTOMETRIEI", found.Name)

	_, err = d.FindByID(ctx, "NOPE")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUserDAO_InsertWithRole(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	u, err := d.InsertWithRole(ctx, User{Email: "a@example.com", Password: "hash"}, domain.DefaultRole)
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	_, err = d.InsertWithRole(ctx, User{Email: "b@example.com", Password: "hash"}, domain.DefaultRole)
	require.NoError(t, err)

	var roles int64
	require.NoError(t, db.Model(&Role{}).Count(&roles).Error)
	assert.Equal(t, int64(1), roles, "default role is created once")

	names, err := d.FindRoleNames(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DefaultRole}, names)

	_, err = d.InsertWithRole(ctx, User{Email: "a@example.com", Password: "hash"}, domain.DefaultRole)
	assert.ErrorIs(t, err, ErrUserEmailExists)

	found, err := d.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = d.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

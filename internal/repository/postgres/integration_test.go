//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"eventrsvp/internal/domain"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=password",
			"POSTGRES_DB=events_test",
		},
	}, func(conf *docker.HostConfig) {
		conf.AutoRemove = true
		conf.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %s", err)
	}

	dsn := fmt.Sprintf("postgres://user:password@%s/events_test?sslmode=disable", resource.GetHostPort("5432/tcp"))
	if err := pool.Retry(func() error {
		var err error
		testDB, err = Open(context.Background(), dsn, PoolConfig{MaxOpenConns: 20, MaxIdleConns: 5, ConnMaxLifetime: time.Minute})
		return err
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("could not connect to postgres: %s", err)
	}
	if err := Migrate(testDB); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("could not migrate: %s", err)
	}

	code := m.Run()

	_ = testDB.Close()
	if err := pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres: %s", err)
	}
	os.Exit(code)
}

func seedUser(t *testing.T, first, last string) int64 {
	t.Helper()
	var id int64
	err := testDB.QueryRow(`INSERT INTO users (firstname, lastname) VALUES ($1, $2) RETURNING id`, first, last).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedEvent(t *testing.T, creatorID int64) *domain.Event {
	t.Helper()
	e := domain.NewEvent("Integration night", creatorID)
	require.NoError(t, NewEventRepository(testDB).Create(context.Background(), e))
	return e
}

func countRSVPs(t *testing.T, eventID, userID int64) int {
	t.Helper()
	var n int
	err := testDB.QueryRow(`SELECT COUNT(*) FROM EventRSVPs WHERE event_id = $1 AND user_id = $2`, eventID, userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestIntegration_CreateThenGetEvent(t *testing.T) {
	ctx := context.Background()
	creatorID := seedUser(t, "Grace", "Hopper")
	start := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	desc, loc := "Talks and pizza", "virtual"
	e := &domain.Event{
		Title: "Compilers", Description: &desc, StartDate: &start, EndDate: &end,
		LocationType: &loc, IsPrivate: true, CreatorID: creatorID,
	}

	repo := NewEventRepository(testDB)
	require.NoError(t, repo.Create(ctx, e))
	require.NotZero(t, e.ID)

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, e.Title, got.Title)
	require.Equal(t, desc, *got.Description)
	require.True(t, start.Equal(*got.StartDate))
	require.True(t, got.IsPrivate)
	require.Equal(t, &domain.UserSummary{ID: creatorID, FirstName: "Grace", LastName: "Hopper"}, got.Creator)

	_, err = repo.GetByID(ctx, 999999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntegration_UpsertReconciles(t *testing.T) {
	ctx := context.Background()
	userID := seedUser(t, "Alan", "Turing")
	event := seedEvent(t, userID)
	repo := NewRSVPRepository(testDB)

	d1 := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	first := domain.NewRSVP(event.ID, userID, "accepted", d1, nil)
	created, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	require.True(t, created)

	again := domain.NewRSVP(event.ID, userID, "accepted", d1, nil)
	created, err = repo.Upsert(ctx, again)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, again.ID)
	require.Equal(t, "accepted", again.Status)
	require.Equal(t, 1, countRSVPs(t, event.ID, userID))

	time.Sleep(10 * time.Millisecond)
	d2 := d1.Add(24 * time.Hour)
	second := domain.NewRSVP(event.ID, userID, "declined", d2, nil)
	created, err = repo.Upsert(ctx, second)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "declined", second.Status)
	require.True(t, d2.Equal(second.ResponseDate))
	require.True(t, second.UpdatedAt.After(first.UpdatedAt))
	require.Equal(t, 1, countRSVPs(t, event.ID, userID))

	err = repo.Insert(ctx, domain.NewRSVP(event.ID, userID, "accepted", d1, nil))
	require.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestIntegration_ConcurrentUpsertsLeaveOneRow(t *testing.T) {
	ctx := context.Background()
	userID := seedUser(t, "Barbara", "Liskov")
	event := seedEvent(t, userID)
	repo := NewRSVPRepository(testDB)

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := "accepted"
			if i%2 == 1 {
				status = "declined"
			}
			_, err := repo.Upsert(ctx, domain.NewRSVP(event.ID, userID, status, time.Now().UTC(), nil))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 1, countRSVPs(t, event.ID, userID))
}

func TestIntegration_UpdateMissingRSVP(t *testing.T) {
	got, err := NewRSVPRepository(testDB).Update(context.Background(), 987654, "declined", nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

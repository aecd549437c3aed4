//go:build integration
// +build integration

package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"webpilot/domain/history"
)

const (
	testUser     = "testuser"
	testPassword = "testpass"
	testDatabase = "testdb"
)

func setupPostgresRepository(t *testing.T) *HistoryRepository {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port.Int(), testUser, testPassword, testDatabase)

	db, err := Connect(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewHistoryRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))

	return repo
}

func TestHistoryRepository_RecordsAndFinds(t *testing.T) {
	repo := setupPostgresRepository(t)
	ctx := context.Background()

	run := &history.Run{Hostname: "ci-worker-1", Platform: "ubuntu", Arch: "amd64"}
	require.NoError(t, repo.CreateRun(ctx, run))
	assert.NotEmpty(t, run.ID)

	local := &history.Navigation{
		RunID:      run.ID,
		Method:     "GET",
		RequestURL: "http://app.test/start",
		FinalURL:   "http://app.test/landing",
		Status:     200,
		Hops:       1,
	}
	require.NoError(t, repo.CreateNavigation(ctx, local))

	remote := &history.Navigation{
		RunID:      run.ID,
		Method:     "GET",
		RequestURL: "http://far.test/",
		FinalURL:   "http://far.test/",
		Status:     200,
		Remote:     true,
	}
	require.NoError(t, repo.CreateNavigation(ctx, remote))

	all, err := repo.FindNavigations(ctx, history.NavigationFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	wantRemote := true
	remotes, err := repo.FindNavigations(ctx, history.NavigationFilters{Remote: &wantRemote})
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.Equal(t, "http://far.test/", remotes[0].RequestURL)
	assert.Equal(t, run.ID, remotes[0].RunID)

	count, err := repo.CountNavigations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestHistoryRepository_FiltersByRun(t *testing.T) {
	repo := setupPostgresRepository(t)
	ctx := context.Background()

	first := &history.Run{Hostname: "ci-worker-1"}
	second := &history.Run{Hostname: "ci-worker-2"}
	require.NoError(t, repo.CreateRun(ctx, first))
	require.NoError(t, repo.CreateRun(ctx, second))

	for _, runID := range []string{first.ID, first.ID, second.ID} {
		nav := &history.Navigation{RunID: runID, Method: "GET", RequestURL: "http://app.test/", Status: 200}
		require.NoError(t, repo.CreateNavigation(ctx, nav))
	}

	navs, err := repo.FindNavigations(ctx, history.NavigationFilters{RunID: &first.ID})
	require.NoError(t, err)
	assert.Len(t, navs, 2)
}

func TestHistoryRepository_Clear(t *testing.T) {
	repo := setupPostgresRepository(t)
	ctx := context.Background()

	run := &history.Run{Hostname: "ci-worker-1"}
	require.NoError(t, repo.CreateRun(ctx, run))
	nav := &history.Navigation{RunID: run.ID, Method: "GET", RequestURL: "http://app.test/", Status: 200}
	require.NoError(t, repo.CreateNavigation(ctx, nav))

	require.NoError(t, repo.Clear(ctx))

	count, err := repo.CountNavigations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestHistoryRepository_EnsureSchemaIsIdempotent(t *testing.T) {
	repo := setupPostgresRepository(t)
	require.NoError(t, repo.EnsureSchema(context.Background()))
}

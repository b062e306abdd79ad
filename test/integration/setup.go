package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/scrandle/api/internal/adapters/auth/sharedsecret"
	handler "github.com/scrandle/api/internal/adapters/handler/http"
	repo "github.com/scrandle/api/internal/adapters/repository/postgres"
	"github.com/scrandle/api/internal/core/ports"
	"github.com/scrandle/api/internal/core/services"
)

const (
	testAdminPassword = "test-admin"
	testCronSecret    = "test-cron"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// allowAllLimiter stands in for redis so the tests never throttle.
type allowAllLimiter struct{}

func (allowAllLimiter) Check(ctx context.Context, key string, limit int, window time.Duration) ports.RateLimitResult {
	return ports.RateLimitResult{Allowed: true, Remaining: limit}
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	RoundSvc    ports.RoundService
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	scranRepo := repo.NewScranRepository(db)
	roundRepo := repo.NewRoundRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	resultRepo := repo.NewResultRepository(db)

	roundSvc := services.NewRoundService(scranRepo, roundRepo, nil)
	voteSvc := services.NewVoteService(scranRepo, roundRepo, voteRepo)
	resultSvc := services.NewResultService(scranRepo, roundRepo, voteRepo, resultRepo)
	scranSvc := services.NewScranService(scranRepo)

	adminVerifier := sharedsecret.NewVerifier(testAdminPassword)
	cronVerifier := sharedsecret.NewVerifier(testCronSecret)

	router := handler.NewHandler(handler.RouterConfig{
		Daily:         handler.NewDailyHandler(roundSvc, voteSvc, allowAllLimiter{}),
		Vote:          handler.NewVoteHandler(voteSvc, false),
		Results:       handler.NewResultsHandler(resultSvc, false),
		Admin:         handler.NewAdminHandler(scranSvc, adminVerifier),
		Cron:          handler.NewCronHandler(roundSvc),
		AdminVerifier: adminVerifier,
		CronVerifier:  cronVerifier,
		Ping:          db.Ping,
	})

	server := httptest.NewServer(router)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      client,
		RoundSvc:    roundSvc,
		DBContainer: dbContainer,
	}
}

// seedScrans inserts n approved items with enough votes to be eligible
// for daily rounds. Returns the inserted ids in insertion order.
func (app *TestApp) seedScrans(t *testing.T, n int) []int64 {
	t.Helper()

	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		var id int64
		err := app.DB.QueryRow(`
			INSERT INTO scrans (image_url, name, description, price, number_of_likes, number_of_dislikes, approved)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			RETURNING id`,
			fmt.Sprintf("https://cdn.example.com/scran-%d.jpg", i),
			fmt.Sprintf("Scran %d", i),
			fmt.Sprintf("Test dish number %d", i),
			4.50+float64(i),
			i+3, i%3,
		).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// newSessionClient returns a client with its own cookie jar, i.e. a fresh
// player.
func (app *TestApp) newSessionClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func todayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

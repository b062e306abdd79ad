package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"github.com/scrandle/api/internal/adapters/auth/sharedsecret"
	"github.com/scrandle/api/internal/adapters/handler/http"
	redislimiter "github.com/scrandle/api/internal/adapters/ratelimit/redis"
	"github.com/scrandle/api/internal/adapters/repository/postgres"
	"github.com/scrandle/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%s", envOr("REDIS_HOST", "localhost"), envOr("REDIS_PORT", "6379")),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer redisClient.Close()

	// Initialize Repositories
	scranRepo := postgres.NewScranRepository(db)
	roundRepo := postgres.NewRoundRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	resultRepo := postgres.NewResultRepository(db)

	// Initialize Services
	roundService := services.NewRoundService(scranRepo, roundRepo, nil)
	voteService := services.NewVoteService(scranRepo, roundRepo, voteRepo)
	resultService := services.NewResultService(scranRepo, roundRepo, voteRepo, resultRepo)
	scranService := services.NewScranService(scranRepo)

	limiter := redislimiter.NewLimiter(redisClient)
	adminVerifier := sharedsecret.NewVerifier(os.Getenv("ADMIN_PASSWORD"))
	cronVerifier := sharedsecret.NewVerifier(os.Getenv("CRON_SECRET"))

	secureCookies := os.Getenv("INSECURE_COOKIES") == ""

	handler := http.NewHandler(http.RouterConfig{
		Daily:         http.NewDailyHandler(roundService, voteService, limiter),
		Vote:          http.NewVoteHandler(voteService, secureCookies),
		Results:       http.NewResultsHandler(resultService, secureCookies),
		Admin:         http.NewAdminHandler(scranService, adminVerifier),
		Cron:          http.NewCronHandler(roundService),
		AdminVerifier: adminVerifier,
		CronVerifier:  cronVerifier,
		Ping:          db.Ping,
	})

	addr := fmt.Sprintf("0.0.0.0:%s", envOr("PORT", "8080"))
	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func dbConnString() string {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	dbName := os.Getenv("POSTGRES_DB")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

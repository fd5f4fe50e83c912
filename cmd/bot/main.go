package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diegoclair/shift-roster/internal/config"
	"github.com/diegoclair/shift-roster/internal/database"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/service"
	"github.com/diegoclair/shift-roster/internal/handlers"
	"github.com/diegoclair/shift-roster/internal/logger"
	"github.com/diegoclair/shift-roster/internal/metrics"
	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/diegoclair/shift-roster/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if envErr != nil {
		logg.Debug(".env file not found, using environment")
	}

	defaultLoc, err := schedule.ParseOffset(cfg.UTCOffset)
	if err != nil {
		logg.Fatal("invalid UTC_OFFSET", zap.String("offset", cfg.UTCOffset), zap.Error(err))
	}
	_, offsetSeconds := time.Now().In(defaultLoc).Zone()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logg.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	logg.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logg.Fatal("failed to run migrations", zap.Error(err))
	}
	logg.Info("migrations completed")

	slackClient := slack.New(cfg.SlackBotToken)

	var scheduleMetrics contract.ScheduleMetrics = metrics.NewNop()
	if cfg.MetricsEnabled {
		scheduleMetrics = metrics.NewPrometheus(prometheus.DefaultRegisterer, "")
	}

	svc := service.NewInstance(database.NewInstance(db), slackClient, logg, scheduleMetrics, schedule.FormatOffset(offsetSeconds))

	svc.Publisher.Start()
	defer svc.Publisher.Stop()

	slackHandler := handlers.New(slackClient, svc.Roster, cfg.SlackSigningSecret, logg)
	scheduleHandler := handlers.NewScheduleHandler(svc.Roster, handlers.ScheduleDefaults{
		Roster:     cfg.Roster(),
		WeekendOff: cfg.WeekendOff(),
		Location:   defaultLoc,
	}, logg)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", slackHandler.HandleSlashCommand)
	mux.HandleFunc("/api/generate_shifts", scheduleHandler.HandleGenerate)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	logg.Info("server starting", zap.String("port", cfg.Port), zap.Int("default_roster_size", len(cfg.Roster())))
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logg.Fatal("failed to start server", zap.Error(err))
	}
}

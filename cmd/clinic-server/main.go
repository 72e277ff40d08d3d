package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/config"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/domain/booking"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/domain/doctor"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/domain/feedback"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/domain/notification"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/domain/patient"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/domain/prescription"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/auth"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/middleware"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/reminder"
	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Clinic appointment booking API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Document store
	st, err := store.Open(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open document store")
	}
	defer st.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := st.Ping(pingCtx); err != nil {
		logger.Fatal().Err(err).Msg("failed to reach redis")
	}
	logger.Info().Msg("connected to redis")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			SigningKey: []byte(cfg.JWTSecret),
		}))
	}

	// API group
	apiV1 := e.Group("/api/v1")

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Notifications
	notifSvc := notification.NewService(notification.NewRepoRedis(st))
	notification.NewHandler(notifSvc).RegisterRoutes(apiV1)

	// Doctors
	doctorSvc := doctor.NewService(doctor.NewRepoRedis(st))
	doctor.NewHandler(doctorSvc).RegisterRoutes(apiV1)

	// Patients
	patientSvc := patient.NewService(patient.NewRepoRedis(st))
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)

	// Bookings
	bookingSvc := booking.NewService(booking.NewRepoRedis(st))
	bookingSvc.SetNotifier(notifSvc)
	booking.NewHandler(bookingSvc).RegisterRoutes(apiV1)

	// Prescriptions complete the booking they were written for.
	presSvc := prescription.NewService(prescription.NewRepoRedis(st), &bookingCompleter{svc: bookingSvc})
	presSvc.SetNotifier(notifSvc)
	prescription.NewHandler(presSvc).RegisterRoutes(apiV1)

	// Feedback feeds doctor rating aggregates.
	feedbackSvc := feedback.NewService(feedback.NewRepoRedis(st), doctorSvc)
	feedback.NewHandler(feedbackSvc).RegisterRoutes(apiV1)

	// Patient record aggregation
	apiV1.GET("/patients/:id/record", patientRecordHandler(patientSvc, bookingSvc, presSvc))

	// Reminder scheduler
	sched := reminder.NewScheduler(
		&reminderSource{svc: bookingSvc},
		notifSvc,
		logger,
		cfg.ReminderInterval,
		cfg.ReminderLookahead,
	)
	if cfg.ReminderAutoStart {
		sched.Start(context.Background())
	}
	defer sched.Stop()
	reminder.NewHandler(sched).RegisterRoutes(apiV1)

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/redis", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// bookingCompleter adapts the booking service to the narrower interface the
// prescription service depends on.
type bookingCompleter struct {
	svc *booking.Service
}

func (a *bookingCompleter) MarkComplete(ctx context.Context, bookingID string) error {
	_, err := a.svc.MarkComplete(ctx, bookingID)
	return err
}

// reminderSource feeds confirmed bookings to the reminder scheduler.
type reminderSource struct {
	svc *booking.Service
}

func (a *reminderSource) ConfirmedBetween(ctx context.Context, from, until time.Time) ([]reminder.Appointment, error) {
	items, err := a.svc.ListConfirmedBetween(ctx, from, until)
	if err != nil {
		return nil, err
	}
	appts := make([]reminder.Appointment, 0, len(items))
	for _, b := range items {
		start, ok := b.StartTime()
		if !ok {
			continue
		}
		appts = append(appts, reminder.Appointment{
			ID:          b.ID,
			DoctorID:    b.DoctorID,
			PatientID:   b.PatientID,
			DoctorName:  b.DoctorName,
			PatientName: b.PatientName,
			Start:       start,
		})
	}
	return appts, nil
}

type patientRecord struct {
	Success       bool                         `json:"success"`
	Patient       *patient.Patient             `json:"patient"`
	Bookings      []booking.View               `json:"bookings"`
	Prescriptions []*prescription.Prescription `json:"prescriptions"`
}

// patientRecordHandler aggregates a patient's profile, visit history and
// prescriptions into one response.
func patientRecordHandler(patients *patient.Service, bookings *booking.Service, prescriptions *prescription.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("id")

		p, err := patients.Get(ctx, id)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		visits, err := bookings.ListByPatient(ctx, id, "")
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch bookings")
		}
		scripts, err := prescriptions.ListByPatient(ctx, id)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch prescriptions")
		}
		if visits == nil {
			visits = []booking.View{}
		}
		if scripts == nil {
			scripts = []*prescription.Prescription{}
		}
		return c.JSON(http.StatusOK, patientRecord{
			Success:       true,
			Patient:       p,
			Bookings:      visits,
			Prescriptions: scripts,
		})
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ayursutra/ayursutra/internal/config"
	"github.com/ayursutra/ayursutra/internal/domain/auth"
	"github.com/ayursutra/ayursutra/internal/domain/booking"
	"github.com/ayursutra/ayursutra/internal/domain/catalog"
	"github.com/ayursutra/ayursutra/internal/domain/notification"
	"github.com/ayursutra/ayursutra/internal/domain/patient"
	"github.com/ayursutra/ayursutra/internal/platform/db"
	"github.com/ayursutra/ayursutra/internal/platform/mail"
	"github.com/ayursutra/ayursutra/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ayursutra-server",
		Short: "AyurSutra booking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the booking API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
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

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Outbound mail
	var sender mail.EmailSender
	if cfg.MailEnabled {
		sender = mail.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFromAddress)
		logger.Info().Str("from", cfg.MailFromAddress).Msg("confirmation mail enabled")
	} else {
		sender = mail.NewNoopSender(logger)
	}

	// Repositories
	patientRepo := patient.NewRepoPG(pool)
	therapyRepo := catalog.NewTherapyRepoPG(pool)
	doctorRepo := catalog.NewDoctorRepoPG(pool)
	bookingRepo := booking.NewRepoPG(pool)
	notificationRepo := notification.NewRepoPG(pool)

	// Services
	patientSvc := patient.NewService(patientRepo)
	catalogSvc := catalog.NewService(therapyRepo, doctorRepo)
	notificationSvc := notification.NewService(notificationRepo)
	authSvc := auth.NewService(&patientFinderAdapter{repo: patientRepo})
	bookingSvc := booking.NewService(
		bookingRepo,
		&therapyResolverAdapter{repo: therapyRepo},
		&patientResolverAdapter{repo: patientRepo},
		notificationSvc,
		sender,
		logger,
	)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Routes
	auth.NewHandler(authSvc).RegisterRoutes(api.Group("/auth"))

	bookingsGroup := api.Group("/addBookings")
	catalog.NewHandler(catalogSvc).RegisterRoutes(bookingsGroup)
	booking.NewHandler(bookingSvc).RegisterRoutes(bookingsGroup)

	patient.NewHandler(patientSvc).RegisterRoutes(api.Group("/patient"))
	notification.NewHandler(notificationSvc).RegisterRoutes(api.Group("/notification"))

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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}

	// Let in-flight confirmation emails drain before the process exits.
	bookingSvc.WaitMail()
	logger.Info().Msg("server stopped")
	return nil
}

// patientFinderAdapter narrows the patient repository to the lookup the
// login check needs.
type patientFinderAdapter struct {
	repo patient.Repository
}

func (a *patientFinderAdapter) FindByEmail(ctx context.Context, email string) (uuid.UUID, string, error) {
	p, err := a.repo.GetByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, "", err
	}
	return p.ID, p.Passcode, nil
}

// therapyResolverAdapter narrows the therapy repository to the name lookup
// the booking chain needs.
type therapyResolverAdapter struct {
	repo catalog.TherapyRepository
}

func (a *therapyResolverAdapter) TherapyName(ctx context.Context, id uuid.UUID) (string, error) {
	t, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return t.Name, nil
}

// patientResolverAdapter narrows the patient repository to the contact
// lookup used for email personalization.
type patientResolverAdapter struct {
	repo patient.Repository
}

func (a *patientResolverAdapter) PatientContact(ctx context.Context, id uuid.UUID) (string, string, error) {
	p, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	return p.Name, p.Email, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caresync/staffing-backend-go/internal/config"
	appHTTP "github.com/caresync/staffing-backend-go/internal/handler/http"
	"github.com/caresync/staffing-backend-go/internal/pkg/cron"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
	"github.com/caresync/staffing-backend-go/internal/pkg/email"
	"github.com/caresync/staffing-backend-go/internal/pkg/jwt"
	"github.com/caresync/staffing-backend-go/internal/pkg/oauth"
	"github.com/caresync/staffing-backend-go/internal/pkg/storage"
	"github.com/caresync/staffing-backend-go/internal/repository/postgresql"
	authService "github.com/caresync/staffing-backend-go/internal/service/auth"
	companyService "github.com/caresync/staffing-backend-go/internal/service/company"
	complianceService "github.com/caresync/staffing-backend-go/internal/service/compliance"
	countryService "github.com/caresync/staffing-backend-go/internal/service/country"
	docsService "github.com/caresync/staffing-backend-go/internal/service/docs"
	invoiceService "github.com/caresync/staffing-backend-go/internal/service/invoice"
	patientService "github.com/caresync/staffing-backend-go/internal/service/patient"
	payrollService "github.com/caresync/staffing-backend-go/internal/service/payroll"
	requestService "github.com/caresync/staffing-backend-go/internal/service/request"
	shiftService "github.com/caresync/staffing-backend-go/internal/service/shift"
	staffService "github.com/caresync/staffing-backend-go/internal/service/staff"
	timesheetService "github.com/caresync/staffing-backend-go/internal/service/timesheet"
	userService "github.com/caresync/staffing-backend-go/internal/service/user"
	visitService "github.com/caresync/staffing-backend-go/internal/service/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	verificationTokenRepo := postgresql.NewVerificationTokenRepository(db)
	countryRepo := postgresql.NewCountryRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)
	patientRepo := postgresql.NewPatientRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	complianceRepo := postgresql.NewComplianceRepository(db)
	visitRepo := postgresql.NewVisitRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	apiKeyRepo := postgresql.NewAPIKeyRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			slog.Error("failed to initialize local storage", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("unsupported storage type", "type", cfg.Storage.Type)
		os.Exit(1)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		slog.Error("failed to initialize email service", "error", err)
		os.Exit(1)
	}

	authSvc := authService.NewAuthService(userRepo, roleRepo, refreshTokenRepo, verificationTokenRepo, jwtService, emailService, googleService, cfg.App)
	userSvc := userService.NewUserService(userRepo, roleRepo)
	countrySvc := countryService.NewCountryService(countryRepo)
	companySvc := companyService.NewCompanyService(companyRepo, countryRepo)
	staffSvc := staffService.NewStaffService(staffRepo, salaryConfigRepo, userRepo)
	patientSvc := patientService.NewPatientService(patientRepo, userRepo)
	requestSvc := requestService.NewRequestService(requestRepo, assignmentRepo, patientRepo, staffRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, staffRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, staffRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, staffRepo, salaryConfigRepo, userRepo, countryRepo, timesheetRepo)
	complianceSvc := complianceService.NewComplianceService(complianceRepo, staffRepo, fileStorage, cfg.Storage.BaseURL)
	visitSvc := visitService.NewVisitService(visitRepo, feedbackRepo, requestRepo, assignmentRepo)
	invoiceSvc := invoiceService.NewInvoiceService(invoiceRepo, patientRepo)
	docsSvc := docsService.NewDocsService(apiKeyRepo, cfg.Storage.DocsPath)

	scheduler := cron.NewScheduler()
	scheduler.Register(cron.Job{
		Name:     "compliance-expiry-sweep",
		Interval: 24 * time.Hour,
		Run: func(ctx context.Context) error {
			_, err := complianceSvc.SweepExpiry(ctx)
			return err
		},
	})
	scheduler.Register(cron.Job{
		Name:     "refresh-token-cleanup",
		Interval: 12 * time.Hour,
		Run: func(ctx context.Context) error {
			deleted, err := refreshTokenRepo.DeleteExpired(ctx)
			if err != nil {
				return err
			}
			if deleted > 0 {
				slog.Info("expired refresh tokens removed", "count", deleted)
			}
			return nil
		},
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App, jwtService, docsSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, googleService),
		Country:    appHTTP.NewCountryHandler(countrySvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
		Patient:    appHTTP.NewPatientHandler(patientSvc),
		Request:    appHTTP.NewRequestHandler(requestSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Timesheet:  appHTTP.NewTimesheetHandler(timesheetSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Compliance: appHTTP.NewComplianceHandler(complianceSvc),
		Visit:      appHTTP.NewVisitHandler(visitSvc),
		Invoice:    appHTTP.NewInvoiceHandler(invoiceSvc),
		Docs:       appHTTP.NewDocsHandler(docsSvc),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

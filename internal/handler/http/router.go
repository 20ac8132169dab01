package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/caresync/staffing-backend-go/internal/config"
	"github.com/caresync/staffing-backend-go/internal/domain/docs"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Country    CountryHandler
	Company    CompanyHandler
	User       UserHandler
	Staff      StaffHandler
	Patient    PatientHandler
	Request    RequestHandler
	Shift      ShiftHandler
	Timesheet  TimesheetHandler
	Payroll    PayrollHandler
	Compliance ComplianceHandler
	Visit      VisitHandler
	Invoice    InvoiceHandler
	Docs       DocsHandler
}

func NewRouter(appCfg config.AppConfig, jwtService jwt.Service, docsService docs.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "caresync-staffing"),
		slog.String("env", appCfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appCfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/verify", h.Auth.VerifyEmail)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Documentation micro-site, guarded by API key instead of JWT.
		r.Route("/docs", func(r chi.Router) {
			r.Use(middleware.DocsKeyRequired(docsService))
			r.Get("/pages", h.Docs.ListPages)
			r.Get("/pages/{slug}", h.Docs.GetPage)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.User.Me)
			})

			r.Route("/countries", func(r chi.Router) {
				r.Get("/", h.Country.List)
				r.Get("/{id}", h.Country.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperAdminOnly)
					r.Post("/", h.Country.Create)
					r.Put("/{id}", h.Country.Update)
					r.Delete("/{id}", h.Country.Deactivate)
				})
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.Company.List)
				r.Get("/{id}", h.Company.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperAdminOnly)
					r.Post("/", h.Company.Create)
					r.Put("/{id}", h.Company.Update)
					r.Delete("/{id}", h.Company.Deactivate)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.User.ListByCompany)
				r.Get("/{id}", h.User.GetByID)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Deactivate)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Use(middleware.SuperAdminOnly)
				r.Get("/", h.User.ListRoles)
				r.Post("/", h.User.CreateRole)
				r.Get("/privileges", h.User.ListPrivileges)
				r.Get("/{id}", h.User.GetRole)
				r.Put("/{id}/privileges", h.User.SetRolePrivileges)
				r.Delete("/{id}", h.User.DeleteRole)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.Staff.ListByCompany)
				r.Get("/{id}", h.Staff.GetByID)
				r.Get("/{staffId}/shifts", h.Shift.ListByStaff)
				r.Get("/{staffId}/timesheets", h.Timesheet.ListByStaff)
				r.Get("/{staffId}/compliance", h.Compliance.ListByStaff)
				r.Get("/{staffId}/visits", h.Visit.ListByStaff)
				r.Get("/{staffId}/rating", h.Visit.StaffRating)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Staff.Create)
					r.Put("/{id}", h.Staff.Update)
					r.Post("/{id}/salary-config", h.Staff.SetSalaryConfig)
					r.Get("/{id}/salary-config", h.Staff.GetActiveSalaryConfig)
					r.Get("/{id}/salary-configs", h.Staff.ListSalaryConfigs)
				})
			})

			r.Route("/patients", func(r chi.Router) {
				r.Get("/", h.Patient.ListByCompany)
				r.Get("/{id}", h.Patient.GetByID)
				r.Get("/{patientId}/requests", h.Request.ListByPatient)
				r.Get("/{patientId}/visits", h.Visit.ListByPatient)
				r.Get("/{patientId}/invoices", h.Invoice.ListByPatient)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Patient.Create)
					r.Put("/{id}", h.Patient.Update)
				})
			})

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.Request.ListByCompany)
				r.Post("/", h.Request.Create)
				r.Get("/{id}", h.Request.GetByID)
				r.Delete("/{id}", h.Request.Cancel)
				r.Get("/{id}/matches", h.Request.FindMatches)
				r.Post("/{id}/assign", h.Request.Assign)
				r.Post("/{id}/accept", h.Request.Accept)
				r.Post("/{id}/start", h.Request.Start)
				r.Post("/{id}/complete", h.Request.Complete)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/", h.Shift.Create)
				r.Get("/{id}", h.Shift.GetByID)
				r.Post("/{id}/start", h.Shift.Start)
				r.Post("/{id}/end", h.Shift.End)
				r.With(middleware.AdminOnly).Post("/{id}/verify", h.Shift.Verify)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/", h.Timesheet.Create)
				r.Get("/{id}", h.Timesheet.GetByID)
				r.Post("/{id}/submit", h.Timesheet.Submit)
				r.With(middleware.AdminOnly).Post("/{id}/verify", h.Timesheet.Verify)
				r.With(middleware.AdminOnly).Post("/{id}/reject", h.Timesheet.Reject)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/process", h.Payroll.Process)
				r.Post("/process/bulk", h.Payroll.BulkProcess)
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.GetByID)
				r.Put("/{id}/approve", h.Payroll.Approve)
				r.Put("/{id}/mark-paid", h.Payroll.MarkPaid)
			})

			r.Route("/compliance", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Compliance.Create)
				r.Get("/{id}", h.Compliance.GetByID)
				r.Post("/{id}/file", h.Compliance.UploadFile)
				r.Get("/{id}/file", h.Compliance.DownloadFile)
			})

			r.Route("/visits", func(r chi.Router) {
				r.Post("/", h.Visit.Create)
				r.Get("/{id}", h.Visit.GetByID)
				r.Post("/{id}/feedback", h.Visit.SubmitFeedback)
				r.Get("/{id}/feedback", h.Visit.GetFeedback)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Invoice.ListByCompany)
				r.Post("/", h.Invoice.Create)
				r.Get("/{id}", h.Invoice.GetByID)
				r.Post("/{id}/issue", h.Invoice.Issue)
				r.Post("/{id}/mark-paid", h.Invoice.MarkPaid)
				r.Post("/{id}/void", h.Invoice.Void)
			})

			r.Route("/api-keys", func(r chi.Router) {
				r.Use(middleware.SuperAdminOnly)
				r.Get("/", h.Docs.ListAPIKeys)
				r.Post("/", h.Docs.CreateAPIKey)
				r.Delete("/{id}", h.Docs.RevokeAPIKey)
			})
		})
	})

	return r
}

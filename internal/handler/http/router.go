package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrpms/pms-backend-go/internal/handler/http/middleware"
	"github.com/hrpms/pms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	roleHandler RoleHandler,
	masterHandler MasterHandler,
	departmentHandler DepartmentHandler,
	locationHandler LocationHandler,
	agreementHandler AgreementHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Put("/auth/password", authHandler.ChangePassword)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
					r.Post("/{id}/lock", userHandler.Lock)
					r.Post("/{id}/unlock", userHandler.Unlock)
				})
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", roleHandler.List)
				r.Get("/permissions", roleHandler.Permissions)
				r.Get("/{id}", roleHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", roleHandler.Create)
					r.Put("/{id}", roleHandler.Update)
					r.Delete("/{id}", roleHandler.Delete)
				})
			})

			r.Route("/grades-scales", func(r chi.Router) {
				r.Get("/", masterHandler.ListGrades)
				r.Get("/{id}", masterHandler.GetGrade)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateGrade)
					r.Put("/{id}", masterHandler.UpdateGrade)
					r.Delete("/{id}", masterHandler.DeleteGrade)
				})
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", masterHandler.ListJobs)
				r.Get("/{id}", masterHandler.GetJob)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateJob)
					r.Put("/{id}", masterHandler.UpdateJob)
					r.Delete("/{id}", masterHandler.DeleteJob)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.ListDepartments)
				r.Get("/{id}", departmentHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", departmentHandler.CreateDepartment)
					r.Put("/{id}", departmentHandler.UpdateDepartment)
					r.Delete("/{id}", departmentHandler.DeleteDepartment)
				})
			})

			r.Route("/units", func(r chi.Router) {
				r.Get("/", departmentHandler.ListUnits)
				r.Get("/{id}", departmentHandler.GetUnit)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", departmentHandler.CreateUnit)
					r.Put("/{id}", departmentHandler.UpdateUnit)
					r.Delete("/{id}", departmentHandler.DeleteUnit)
				})
			})

			r.Route("/regions", func(r chi.Router) {
				r.Get("/", locationHandler.ListRegions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", locationHandler.CreateRegion)
					r.Put("/{id}", locationHandler.UpdateRegion)
					r.Delete("/{id}", locationHandler.DeleteRegion)
				})
			})

			r.Route("/districts", func(r chi.Router) {
				r.Get("/", locationHandler.ListDistricts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", locationHandler.CreateDistrict)
					r.Put("/{id}", locationHandler.UpdateDistrict)
					r.Delete("/{id}", locationHandler.DeleteDistrict)
				})
			})

			r.Route("/counties", func(r chi.Router) {
				r.Get("/", locationHandler.ListCounties)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", locationHandler.CreateCounty)
					r.Put("/{id}", locationHandler.UpdateCounty)
					r.Delete("/{id}", locationHandler.DeleteCounty)
				})
			})

			r.Route("/subcounties", func(r chi.Router) {
				r.Get("/", locationHandler.ListSubCounties)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", locationHandler.CreateSubCounty)
					r.Put("/{id}", locationHandler.UpdateSubCounty)
					r.Delete("/{id}", locationHandler.DeleteSubCounty)
				})
			})

			r.Route("/parishes", func(r chi.Router) {
				r.Get("/", locationHandler.ListParishes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", locationHandler.CreateParish)
					r.Put("/{id}", locationHandler.UpdateParish)
					r.Delete("/{id}", locationHandler.DeleteParish)
				})
			})

			r.Route("/villages", func(r chi.Router) {
				r.Get("/", locationHandler.ListVillages)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", locationHandler.CreateVillage)
					r.Put("/{id}", locationHandler.UpdateVillage)
					r.Delete("/{id}", locationHandler.DeleteVillage)
				})
			})

			r.Route("/agreements", func(r chi.Router) {
				r.Post("/", agreementHandler.Create)
				r.Get("/my", agreementHandler.ListMy)

				// Reviewer facing listing
				r.Group(func(r chi.Router) {
					r.Use(middleware.ReviewerOnly)
					r.Get("/", agreementHandler.ListForReview)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", agreementHandler.Get)
					r.Put("/", agreementHandler.Update)
					r.Delete("/", agreementHandler.Delete)
					r.Get("/report", agreementHandler.Report)
					r.Post("/submit", agreementHandler.Submit)
					r.Post("/supervisor-approval", agreementHandler.SupervisorDecision)
					r.Post("/hod-approval", agreementHandler.HODDecision)
				})
			})
		})
	})
	return r
}

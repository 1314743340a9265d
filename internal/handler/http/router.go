package http

import (
	"log/slog"
	"os"

	"github.com/YeharaMewan/rise-hr-backend/internal/handler/http/middleware"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	attendanceHandler AttendanceHandler,
	allocationHandler AllocationHandler,
	taskHandler TaskHandler,
	personHandler PersonHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rise-hr-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Mark)
				r.Get("/", attendanceHandler.GetDay)
				r.Get("/monthly", attendanceHandler.GetMonthly)
			})

			// Leaders and hr
			r.Route("/tasks", func(r chi.Router) {
				r.Use(middleware.RequireLeader)
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", taskHandler.Get)
					r.Put("/", taskHandler.Update)
					r.Delete("/", taskHandler.Delete)
					r.Post("/allocations", taskHandler.Allocate)
					r.Delete("/allocations/{labourId}", taskHandler.Deallocate)
				})
			})

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/dashboard/stats", dashboardHandler.GetDailyStats)

				r.Route("/labour-allocation", func(r chi.Router) {
					r.Get("/leaders-status", allocationHandler.GetLeadersStatus)
					r.Post("/daily", allocationHandler.SaveLabourSnapshot)
					r.Put("/company-stats", allocationHandler.UpdateCompanyStats)
				})
				r.Post("/task-allocations/daily", allocationHandler.SaveTaskSnapshot)

				r.Route("/people", func(r chi.Router) {
					r.Get("/", personHandler.List)
					r.Post("/", personHandler.Create)
					r.Put("/{id}", personHandler.Update)
					r.Delete("/{id}", personHandler.Deactivate)
				})
			})
		})
	})
	return r
}

package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/availboard/availboard-backend-go/internal/handler/http/middleware"
	"github.com/availboard/availboard-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Board        BoardHandler
	Request      RequestHandler
	Schedule     ScheduleHandler
	Employee     EmployeeHandler
	Master       MasterHandler
	Notification NotificationHandler
}

func NewRouter(logger *slog.Logger, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.GoogleRedirect)
				r.Get("/google/callback", h.Auth.GoogleCallback)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/board", func(r chi.Router) {
				r.Get("/events", h.Board.Events)
				r.Get("/today", h.Board.TodaySnapshot)
				r.Get("/week", h.Board.WeeklyGrid)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.Request.Create)
				r.Get("/mine", h.Request.Mine)
				r.Get("/pending", h.Request.Pending)
				r.Post("/{id}/decision", h.Request.Decide)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Route("/{employeeID}/days/{date}", func(r chi.Router) {
					r.Get("/", h.Schedule.Day)
					r.Put("/", h.Schedule.ReplaceDay)
					r.Delete("/", h.Schedule.DeleteDay)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/search", h.Employee.Search)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/overrides", h.Employee.ListOverrides)
					r.Route("/{employeeID}", func(r chi.Router) {
						r.Put("/override", h.Employee.UpsertOverride)
						r.Delete("/override", h.Employee.ClearOverride)
						r.Get("/grants", h.Employee.ListGrants)
						r.Post("/grants", h.Employee.Grant)
						r.Delete("/grants/{departmentID}", h.Employee.Revoke)
					})
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/departments", h.Master.ListDepartments)
				r.Get("/availability-types", h.Master.ListTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/departments/manager", h.Master.AssignManager)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.Latest)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/{id}/read", h.Notification.MarkAsRead)
			})
		})
	})
	return r
}

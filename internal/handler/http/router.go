package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	frontendURL string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	markingHandler MarkingHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			// Fixed segments must come before the employeeID wildcard
			r.Get("/summary/today", dashboardHandler.GetTodaySummary)
			r.Get("/summary", dashboardHandler.GetSummary)
			r.Get("/check/{employeeID}/{date}", attendanceHandler.Check)

			r.Route("/marking", func(r chi.Router) {
				r.Post("/", markingHandler.Request)
				r.Post("/confirm", markingHandler.Confirm)
				r.Post("/cancel", markingHandler.Cancel)
				r.Post("/view/{employeeID}", markingHandler.View)
			})

			r.Post("/{employeeID}", attendanceHandler.Mark)
			r.Get("/{employeeID}", attendanceHandler.ListByEmployee)
			r.Get("/{employeeID}/calendar", attendanceHandler.Calendar)
		})
	})
	return r
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	attendanceHandler AttendanceHandler,
	regularizationHandler RegularizationHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	scheduleHandler ScheduleHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Self-service
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.GetMyAttendance)

				r.Route("/{id}/breaks", func(r chi.Router) {
					r.Post("/", attendanceHandler.CreateBreak)
					r.Get("/", attendanceHandler.ListBreaks)
				})
				r.Route("/breaks/{breakId}", func(r chi.Router) {
					r.Put("/", attendanceHandler.UpdateBreak)
					r.Delete("/", attendanceHandler.DeleteBreak)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Post("/", attendanceHandler.Create)
					r.Get("/{id}", attendanceHandler.Get)
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/regularizations", func(r chi.Router) {
				r.Post("/", regularizationHandler.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", regularizationHandler.List)
					r.Get("/{id}", regularizationHandler.Get)
					r.Post("/{id}/approve", regularizationHandler.Approve)
					r.Post("/{id}/reject", regularizationHandler.Reject)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Get("/{id}", leaveHandler.Get)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)
				r.Get("/{id}", holidayHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/schedules", func(r chi.Router) {
					r.Post("/", scheduleHandler.Create)
					r.Get("/employee/{employeeId}", scheduleHandler.GetEmployeeSchedule)
					r.Put("/{id}", scheduleHandler.Update)
					r.Delete("/{id}", scheduleHandler.Delete)
				})

				r.Route("/analytics", func(r chi.Router) {
					r.Get("/summary", analyticsHandler.Summary)
					r.Get("/summary/advanced", analyticsHandler.AdvancedSummary)
					r.Get("/trends", analyticsHandler.Trends)
				})
			})
		})
	})

	return r
}

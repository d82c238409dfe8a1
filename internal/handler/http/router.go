package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/elia-nu/geo-sub002/internal/handler/http/middleware"
	"github.com/elia-nu/geo-sub002/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	calendarHandler CalendarHandler,
	leaveHandler LeaveHandler,
	workSiteHandler WorkSiteHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-payroll-core"),
		slog.String("version", "v1.0.0"),
	)

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

		// Calendar lookups carry no tenant data and stay public.
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/ethiopian", calendarHandler.ToEthiopian)
			r.Get("/holidays", calendarHandler.Holidays)
			r.Get("/working-days", calendarHandler.WorkingDays)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/validate-location", attendanceHandler.ValidateLocation)
				r.Get("/reconcile", attendanceHandler.Reconcile)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/run", payrollHandler.Run)
				r.Post("/estimate", payrollHandler.Estimate)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.List)
				r.Put("/{id}/decision", leaveHandler.Decide)
			})

			r.Route("/work-sites", func(r chi.Router) {
				r.Post("/", workSiteHandler.Create)
				r.Get("/", workSiteHandler.List)
				r.Post("/{id}/employees", workSiteHandler.AssignEmployee)
				r.Delete("/{id}", workSiteHandler.Delete)
			})
		})
	})

	return r
}

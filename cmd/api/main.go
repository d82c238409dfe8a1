package main

import (
	"fmt"
	"net/http"

	"github.com/elia-nu/geo-sub002/internal/config"
	appHTTP "github.com/elia-nu/geo-sub002/internal/handler/http"
	"github.com/elia-nu/geo-sub002/internal/pkg/cron"
	"github.com/elia-nu/geo-sub002/internal/pkg/database"
	"github.com/elia-nu/geo-sub002/internal/pkg/jwt"
	"github.com/elia-nu/geo-sub002/internal/repository/postgresql"
	attendanceService "github.com/elia-nu/geo-sub002/internal/service/attendance"
	calendarService "github.com/elia-nu/geo-sub002/internal/service/calendar"
	geofenceService "github.com/elia-nu/geo-sub002/internal/service/geofence"
	leaveService "github.com/elia-nu/geo-sub002/internal/service/leave"
	payrollService "github.com/elia-nu/geo-sub002/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewAttendanceEventRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	workSiteRepo := postgresql.NewWorkSiteRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calendarSvc := calendarService.NewCalendarService()
	geofenceValidator := geofenceService.NewValidator()
	siteSvc := geofenceService.NewSiteService(workSiteRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		eventRepo,
		employeeRepo,
		leaveRequestRepo,
		workSiteRepo,
		geofenceValidator,
		calendarSvc,
	)
	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		eventRepo,
		leaveRequestRepo,
		calendarSvc,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	workSiteHandler := appHTTP.NewWorkSiteHandler(siteSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(eventRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		payrollHandler,
		calendarHandler,
		leaveHandler,
		workSiteHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

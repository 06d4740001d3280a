package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/workpulse-hr/attendance-backend-go/internal/handler/http"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/workpulse-hr/attendance-backend-go/internal/repository/postgresql"
	analyticsService "github.com/workpulse-hr/attendance-backend-go/internal/service/analytics"
	attendanceService "github.com/workpulse-hr/attendance-backend-go/internal/service/attendance"
	holidayService "github.com/workpulse-hr/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/workpulse-hr/attendance-backend-go/internal/service/leave"
	regularizationService "github.com/workpulse-hr/attendance-backend-go/internal/service/regularization"
	scheduleService "github.com/workpulse-hr/attendance-backend-go/internal/service/schedule"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	regularizationRepo := postgresql.NewRegularizationRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, breakRepo, employeeRepo, workScheduleRepo)
	regularizationSvc := regularizationService.NewRegularizationService(db, regularizationRepo, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	scheduleSvc := scheduleService.NewWorkScheduleService(workScheduleRepo, employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(attendanceRepo, holidayRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	regularizationHandler := appHTTP.NewRegularizationHandler(regularizationSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		attendanceHandler,
		regularizationHandler,
		leaveHandler,
		holidayHandler,
		scheduleHandler,
		analyticsHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped:", err)
	}
}

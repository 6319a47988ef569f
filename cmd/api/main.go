package main

import (
	"fmt"
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/config"
	appHTTP "github.com/hrmslite/hrms-backend-go/internal/handler/http"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrmslite/hrms-backend-go/internal/service/attendance"
	calendarService "github.com/hrmslite/hrms-backend-go/internal/service/calendar"
	dashboardService "github.com/hrmslite/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/hrmslite/hrms-backend-go/internal/service/employee"
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
	dashboardRepo := postgresql.NewDashboardRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, cfg.Attendance.RecentLimit)
	calendarSvc := calendarService.NewCalendarService(cfg.Attendance.WeeklyOff)
	markingResolver := attendanceService.NewMarkingResolver(attendanceSvc, employeeSvc)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, calendarSvc)
	markingHandler := appHTTP.NewMarkingHandler(markingResolver)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg.App.FrontendURL,
		employeeHandler,
		attendanceHandler,
		markingHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

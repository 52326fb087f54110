package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/postgresql"
	reportService "github.com/cmlabs-hris/attendance-engine-go/internal/service/report"
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

	mongoDB, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		fmt.Println("Error connecting to mongodb:", err)
		return
	}
	defer mongoDB.Close(context.Background())

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scanLogRepo := postgresql.NewScanLogRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)
	mealLogRepo := postgresql.NewMealLogRepository(db)
	dailyAttendanceRepo := mongodb.NewDailyAttendanceRepository(mongoDB)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	reportSvc := reportService.NewReportService(
		employeeRepo,
		dailyAttendanceRepo,
		scanLogRepo,
		auditLogRepo,
		mealLogRepo,
		cfg.WorkSchedule(),
	)

	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg.App.Env, JWTService, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/availboard/availboard-backend-go/internal/config"
	appHTTP "github.com/availboard/availboard-backend-go/internal/handler/http"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
	"github.com/availboard/availboard-backend-go/internal/pkg/jwt"
	"github.com/availboard/availboard-backend-go/internal/pkg/oauth"
	"github.com/availboard/availboard-backend-go/internal/repository/postgresql"
	accessService "github.com/availboard/availboard-backend-go/internal/service/access"
	authService "github.com/availboard/availboard-backend-go/internal/service/auth"
	boardService "github.com/availboard/availboard-backend-go/internal/service/board"
	employeeService "github.com/availboard/availboard-backend-go/internal/service/employee"
	masterService "github.com/availboard/availboard-backend-go/internal/service/master"
	notificationService "github.com/availboard/availboard-backend-go/internal/service/notification"
	requestService "github.com/availboard/availboard-backend-go/internal/service/request"
	scheduleService "github.com/availboard/availboard-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "availboard"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	overrideRepo := postgresql.NewEmployeeOverrideRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	deptAccessRepo := postgresql.NewDepartmentAccessRepository(db)
	deptManagerRepo := postgresql.NewDepartmentManagerRepository(db)
	typeRepo := postgresql.NewAvailabilityTypeRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleSvc oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleSvc = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	accessSvc := accessService.NewAccessService(employeeRepo, overrideRepo, departmentRepo, deptAccessRepo, deptManagerRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, logger)
	boardSvc := boardService.NewBoardService(accessSvc, requestRepo, scheduleRepo, employeeRepo)
	requestSvc := requestService.NewRequestService(accessSvc, requestRepo, employeeRepo, overrideRepo, deptManagerRepo, notificationSvc)
	scheduleSvc := scheduleService.NewScheduleService(accessSvc, scheduleRepo)
	employeeSvc := employeeService.NewEmployeeService(accessSvc, employeeRepo, overrideRepo)
	departmentSvc := masterService.NewDepartmentService(accessSvc, departmentRepo, deptAccessRepo, deptManagerRepo)
	typeSvc := masterService.NewTypeService(typeRepo)
	authSvc := authService.NewAuthService(employeeRepo, overrideRepo, jwtSvc, googleSvc)

	router := appHTTP.NewRouter(logger, jwtSvc, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtSvc, googleSvc),
		Board:        appHTTP.NewBoardHandler(boardSvc),
		Request:      appHTTP.NewRequestHandler(requestSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc, departmentSvc),
		Master:       appHTTP.NewMasterHandler(departmentSvc, typeSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", "error", err)
	}
}

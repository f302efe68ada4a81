package main

import (
	"fmt"
	"net/http"

	"github.com/hrpms/pms-backend-go/internal/config"
	appHTTP "github.com/hrpms/pms-backend-go/internal/handler/http"
	"github.com/hrpms/pms-backend-go/internal/pkg/database"
	"github.com/hrpms/pms-backend-go/internal/pkg/email"
	"github.com/hrpms/pms-backend-go/internal/pkg/jwt"
	"github.com/hrpms/pms-backend-go/internal/pkg/oauth"
	"github.com/hrpms/pms-backend-go/internal/repository/postgresql"
	agreementService "github.com/hrpms/pms-backend-go/internal/service/agreement"
	serviceAuth "github.com/hrpms/pms-backend-go/internal/service/auth"
	departmentService "github.com/hrpms/pms-backend-go/internal/service/department"
	locationService "github.com/hrpms/pms-backend-go/internal/service/location"
	"github.com/hrpms/pms-backend-go/internal/service/master"
	reportService "github.com/hrpms/pms-backend-go/internal/service/report"
	roleService "github.com/hrpms/pms-backend-go/internal/service/role"
	userService "github.com/hrpms/pms-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	gradeRepo := postgresql.NewGradeRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	unitRepo := postgresql.NewUnitRepository(db)
	regionRepo := postgresql.NewRegionRepository(db)
	districtRepo := postgresql.NewDistrictRepository(db)
	countyRepo := postgresql.NewCountyRepository(db)
	subCountyRepo := postgresql.NewSubCountyRepository(db)
	parishRepo := postgresql.NewParishRepository(db)
	villageRepo := postgresql.NewVillageRepository(db)
	agreementRepo := postgresql.NewAgreementRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService := email.NewEmailService(cfg.SMTP)

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, tokenRepo, emailService, cfg.App.FrontendURL)
	userSvc := userService.NewUserService(userRepo, roleRepo)
	roleSvc := roleService.NewRoleService(roleRepo)
	masterSvc := master.NewMasterService(gradeRepo, jobRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, unitRepo)
	locationSvc := locationService.NewLocationService(regionRepo, districtRepo, countyRepo, subCountyRepo, parishRepo, villageRepo)
	agreementSvc := agreementService.NewAgreementService(db, agreementRepo, userRepo)
	reportSvc := reportService.NewReportService(agreementRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	roleHandler := appHTTP.NewRoleHandler(roleSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	agreementHandler := appHTTP.NewAgreementHandler(agreementSvc, reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		roleHandler,
		masterHandler,
		departmentHandler,
		locationHandler,
		agreementHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

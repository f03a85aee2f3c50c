package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/apiserver/handler"
	"github.com/kanri-app/kanri/internal/apiserver/middleware"
	"github.com/kanri-app/kanri/internal/auth/jwt"
	"github.com/kanri-app/kanri/internal/auth/permission"
	"github.com/kanri-app/kanri/internal/common/cnst"
	"github.com/kanri-app/kanri/internal/common/config"
	"github.com/kanri-app/kanri/internal/i18n"
	"github.com/kanri-app/kanri/pkg/logger"
	"github.com/kanri-app/kanri/pkg/metrics"
	"github.com/kanri-app/kanri/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   cnst.ApiServer,
		Short: "Kanri API Server",
		Long:  `Kanri API Server provides the RBAC admin portal API`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "configs/apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	// Load configuration
	cfg, cfgPath, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	zapLogger.Info("Loaded configuration", zap.String("path", cfgPath))

	// Initialize i18n translator
	if err := i18n.InitTranslator(cfg.I18n.Path); err != nil {
		zapLogger.Warn("Failed to initialize i18n translator", zap.Error(err))
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Duration:  cfg.JWT.Duration,
	})
	if err != nil {
		zapLogger.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	// Initialize database and seed the built-in roles and super admin
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := database.SeedDefaults(context.Background(), db, &cfg.SuperAdmin); err != nil {
		zapLogger.Fatal("Failed to seed database defaults", zap.Error(err))
	}

	zapLogger.Info("Starting apiserver", zap.String("version", version.Get()))

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = cnst.AppName
	}
	m := metrics.New(cfg.Metrics)
	h := handler.NewHandler(db, jwtService, cfg, zapLogger, m)

	r := gin.Default()
	r.Use(m.Middleware())
	r.Use(middleware.Language())

	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	registerRoutes(r, h, jwtService)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}

// registerRoutes wires the API route table. Authentication always runs
// before any permission guard.
func registerRoutes(r *gin.Engine, h *handler.Handler, jwtService *jwt.Service) {
	// Public routes
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/register", h.Register)

	// Authenticated routes
	api := r.Group("/api", middleware.JWTAuthMiddleware(jwtService))

	api.GET("/auth/me", h.GetUserInfo)
	api.POST("/auth/change-password", h.ChangePassword)
	api.GET("/apps", h.ListApps)
	api.GET("/permissions", h.ListPermissions)

	users := api.Group("/users")
	users.GET("", middleware.RequirePermission(permission.UserRead), h.ListUsers)
	users.POST("", middleware.RequirePermission(permission.UserCreate), h.CreateUser)
	users.GET("/:id", middleware.RequirePermission(permission.UserRead), h.GetUser)
	users.PUT("/:id", middleware.RequirePermission(permission.UserUpdate), h.UpdateUser)
	users.DELETE("/:id", middleware.RequirePermission(permission.UserDelete), h.DeleteUser)

	roles := api.Group("/roles")
	roles.GET("", middleware.RequirePermission(permission.RoleRead), h.ListRoles)
	roles.POST("", middleware.RequirePermission(permission.RoleCreate), h.CreateRole)
	roles.GET("/:id", middleware.RequirePermission(permission.RoleRead), h.GetRole)
	roles.PUT("/:id", middleware.RequirePermission(permission.RoleUpdate), h.UpdateRole)
	roles.DELETE("/:id", middleware.RequirePermission(permission.RoleDelete), h.DeleteRole)

	// Company listing backs selection lists and is open to any
	// authenticated user; mutation stays permission guarded.
	companies := api.Group("/companies")
	companies.GET("", h.ListCompanies)
	companies.POST("", middleware.RequirePermission(permission.CompanyCreate), h.CreateCompany)
	companies.GET("/:id", middleware.RequirePermission(permission.CompanyRead), h.GetCompany)
	companies.PUT("/:id", middleware.RequirePermission(permission.CompanyUpdate), h.UpdateCompany)
	companies.DELETE("/:id", middleware.RequirePermission(permission.CompanyDelete), h.DeleteCompany)
	companies.GET("/:id/departments", middleware.RequirePermission(permission.DepartmentRead), h.ListCompanyDepartments)

	departments := api.Group("/departments")
	departments.GET("", middleware.RequirePermission(permission.DepartmentRead), h.ListDepartments)
	departments.POST("", middleware.RequirePermission(permission.DepartmentCreate), h.CreateDepartment)
	departments.GET("/:id", middleware.RequirePermission(permission.DepartmentRead), h.GetDepartment)
	departments.PUT("/:id", middleware.RequirePermission(permission.DepartmentUpdate), h.UpdateDepartment)
	departments.DELETE("/:id", middleware.RequirePermission(permission.DepartmentDelete), h.DeleteDepartment)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/apiserver/handler"
	"github.com/voltline/evmis/internal/apiserver/middleware"
	"github.com/voltline/evmis/internal/apiserver/policy"
	"github.com/voltline/evmis/internal/auth/jwt"
	"github.com/voltline/evmis/internal/common/cnst"
	"github.com/voltline/evmis/internal/common/config"
	"github.com/voltline/evmis/pkg/logger"
	"github.com/voltline/evmis/pkg/metrics"
	"github.com/voltline/evmis/pkg/version"
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
		Use:   "apiserver",
		Short: "EVMIS API Server",
		Long:  `EVMIS API Server provides the management endpoints for an EV manufacturing operation`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if envPath := os.Getenv("APISERVER_CONF"); envPath != "" {
		return envPath
	}
	return "configs/apiserver.yaml"
}

func run() {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	db, err := database.New(&cfg.Database)
	if err != nil {
		zlog.Fatal("Failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.Error(err))
	}
	defer db.Close()

	if cfg.Seed.Enabled {
		if err := database.SeedIfEmpty(context.Background(), db, zlog); err != nil {
			zlog.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	jwtService, err := jwt.NewService(cfg.JWT)
	if err != nil {
		zlog.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	zlog.Info("Starting apiserver",
		zap.String("version", version.Get()),
		zap.Int("port", cfg.Port))

	r := gin.Default()
	h := handler.NewHandler(db, jwtService, zlog)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
		r.Use(m.GinMiddleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.POST("/api/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(jwtService))
	{
		api.GET("/auth/userinfo", h.GetUserInfo)

		api.GET("/dashboard", policy.Require(cnst.ModuleDashboard), h.Dashboard)
		api.GET("/stats/:module", h.ModuleStats)

		users := api.Group("/users", policy.Require(cnst.ModuleUsers))
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.GET("/:id", h.GetUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
		}

		materials := api.Group("/materials", policy.Require(cnst.ModuleInventory))
		{
			materials.GET("", h.ListMaterials)
			materials.POST("", h.CreateMaterial)
			materials.PUT("/:id", h.UpdateMaterial)
			materials.DELETE("/:id", h.DeleteMaterial)
		}

		schedules := api.Group("/schedules", policy.Require(cnst.ModuleProduction))
		{
			schedules.GET("", h.ListSchedules)
			schedules.POST("", h.CreateSchedule)
			schedules.PUT("/:id", h.UpdateSchedule)
			schedules.DELETE("/:id", h.DeleteSchedule)
		}

		assemblies := api.Group("/assemblies", policy.Require(cnst.ModuleBattery))
		{
			assemblies.GET("", h.ListAssemblies)
			assemblies.POST("", h.CreateAssembly)
			assemblies.PUT("/:id", h.UpdateAssembly)
			assemblies.DELETE("/:id", h.DeleteAssembly)
		}

		inspections := api.Group("/inspections", policy.Require(cnst.ModuleQuality))
		{
			inspections.GET("", h.ListInspections)
			inspections.POST("", h.CreateInspection)
		}

		costs := api.Group("/costs", policy.Require(cnst.ModuleCosts))
		{
			costs.GET("", h.ListCosts)
			costs.POST("", h.CreateCost)
		}

		api.GET("/metrics", policy.Require(cnst.ModuleCosts), h.ListMetrics)
		api.GET("/activities", policy.Require(cnst.ModuleDashboard), h.ListActivities)

		api.GET("/reports/:type/export", policy.Require(cnst.ModuleReports), h.ExportReport)
	}

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %v", err)
	}
}

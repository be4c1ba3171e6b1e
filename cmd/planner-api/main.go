package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/course-planner-api/api/swagger"
	"github.com/noah-isme/course-planner-api/internal/handler"
	"github.com/noah-isme/course-planner-api/internal/middleware"
	"github.com/noah-isme/course-planner-api/internal/repository"
	"github.com/noah-isme/course-planner-api/internal/service"
	"github.com/noah-isme/course-planner-api/pkg/cache"
	"github.com/noah-isme/course-planner-api/pkg/config"
	"github.com/noah-isme/course-planner-api/pkg/database"
	"github.com/noah-isme/course-planner-api/pkg/export"
	"github.com/noah-isme/course-planner-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-planner-api/pkg/middleware/requestid"
)

// @title Course Planner API
// @version 0.1.0
// @description Requirement eligibility, demand and schedule conflict engine
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metrics := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Demand.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, demand caching disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Demand.CacheTTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	studentRepo := repository.NewStudentRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	curriculumRepo := repository.NewCurriculumRepository(db)
	chainRepo := repository.NewChainRepository(db)
	offeringRepo := repository.NewOfferingRepository(db)
	rosterRepo := repository.NewRosterRepository(db)
	userRepo := repository.NewUserRepository(db)

	needsSvc := service.NewNeedsService(studentRepo, transcriptRepo, curriculumRepo, chainRepo, cfg.Engine.ActiveWindowMonths, metrics, logr)
	demandSvc := service.NewDemandService(needsSvc, offeringRepo, cacheSvc, metrics, logr)
	conflictSvc := service.NewConflictService(rosterRepo, metrics, logr)
	exportSvc := service.NewExportService(needsSvc, demandSvc, conflictSvc, export.NewCSVExporter(), export.NewPDFExporter(), logr)
	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            "course-planner-api",
	})

	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(chainRepo)
	needsHandler := handler.NewNeedsHandler(needsSvc, exportSvc)
	demandHandler := handler.NewDemandHandler(demandSvc, exportSvc)
	conflictHandler := handler.NewConflictHandler(conflictSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metrics)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))

	protected.GET("/catalog/chains", catalogHandler.Chains)
	protected.GET("/catalog/chains/:id", catalogHandler.Chain)

	protected.GET("/planning/needs", needsHandler.Matrix)
	protected.GET("/planning/needs/export", needsHandler.Export)
	protected.GET("/planning/needs/:id", needsHandler.Student)
	protected.GET("/planning/demand", demandHandler.List)
	protected.GET("/planning/demand/export", demandHandler.Export)
	protected.POST("/planning/demand/refresh", demandHandler.Refresh)
	protected.GET("/planning/conflicts", conflictHandler.List)
	protected.GET("/planning/conflicts/export", conflictHandler.Export)

	protected.GET("/admin/metrics", metricsHandler.Snapshot)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/alimaksum8/jadwal-darul-huda-api/api/swagger"
	"github.com/alimaksum8/jadwal-darul-huda-api/internal/handler"
	appmiddleware "github.com/alimaksum8/jadwal-darul-huda-api/internal/middleware"
	"github.com/alimaksum8/jadwal-darul-huda-api/internal/repository"
	"github.com/alimaksum8/jadwal-darul-huda-api/internal/seed"
	"github.com/alimaksum8/jadwal-darul-huda-api/internal/service"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/config"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/database"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/kvstore"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/logger"
	corsmiddleware "github.com/alimaksum8/jadwal-darul-huda-api/pkg/middleware/cors"
	reqidmiddleware "github.com/alimaksum8/jadwal-darul-huda-api/pkg/middleware/requestid"
)

// @title Jadwal Darul Huda API
// @version 1.0.0
// @description Weekly timetable and teacher roster service for the MTs and MA tiers of Ponpes Darul Huda.
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

	metrics := service.NewMetricsService()

	store, err := openStore(cfg, metrics)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "driver", cfg.Store.Driver, "error", err)
	}

	timetables := repository.NewTimetableRepository(store)
	assignments := repository.NewAssignmentRepository(store)

	policy := service.NewIgnorePolicy(cfg.Schedule.IgnoredSubjects, cfg.Schedule.IgnoredTeachers, cfg.Schedule.NoTeacherCode)

	assignmentSvc := service.NewAssignmentService(assignments, seed.MTsTimetable(), seed.MATimetable(), policy, nil, logr)
	timetableSvc := service.NewTimetableService(timetables, assignments, policy, nil, logr)
	conflictSvc := service.NewConflictService(timetables, policy, logr)
	exportSvc := service.NewExportService(timetables, logr)

	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := assignmentSvc.Bootstrap(bootCtx); err != nil {
		cancel()
		logr.Sugar().Fatalw("failed to bootstrap roster", "error", err)
	}
	cancel()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(appmiddleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if _, err := store.Read(c.Request.Context(), "readiness-probe"); err != nil && err != kvstore.ErrKeyNotFound {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	scheduleHandler := handler.NewScheduleHandler(timetableSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
	conflictHandler := handler.NewConflictHandler(conflictSvc, metrics)
	adminHandler := handler.NewAdminHandler(timetableSvc, assignmentSvc)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/schedules/:tier", scheduleHandler.Get)
		api.PATCH("/schedules/:tier/subject", scheduleHandler.UpdateSubject)
		api.PATCH("/schedules/:tier/time-slot", scheduleHandler.RenameTimeSlot)
		api.POST("/schedules/:tier/days", scheduleHandler.AddDay)
		api.DELETE("/schedules/:tier/days/:day", scheduleHandler.DeleteDay)
		api.POST("/schedules/:tier/days/:day/rows", scheduleHandler.AddRow)
		api.DELETE("/schedules/:tier/days/:day/rows", scheduleHandler.DeleteRow)

		api.GET("/assignments", assignmentHandler.List)
		api.POST("/assignments", assignmentHandler.Create)
		api.PUT("/assignments/:id", assignmentHandler.Update)
		api.DELETE("/assignments/:id", assignmentHandler.Delete)
		api.GET("/subjects/:tier", assignmentHandler.Subjects)

		api.GET("/conflicts", conflictHandler.List)

		api.POST("/admin/reset", adminHandler.Reset)

		if cfg.Export.Enabled {
			exportHandler := handler.NewExportHandler(exportSvc)
			api.GET("/schedules/:tier/export", exportHandler.Timetable)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// openStore builds the persistence backend selected by STORE_DRIVER and wraps
// it with operation metrics.
func openStore(cfg *config.Config, metrics *service.MetricsService) (kvstore.Store, error) {
	var store kvstore.Store

	switch cfg.Store.Driver {
	case config.StoreMemory:
		store = kvstore.NewMemory()
	case config.StoreFile:
		fileStore, err := kvstore.NewFile(cfg.Store.Dir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case config.StoreRedis:
		client, err := kvstore.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		store = kvstore.NewRedis(client)
	case config.StorePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		pgStore := kvstore.NewPostgres(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return kvstore.NewInstrumented(store, metrics.ObserveStoreOp), nil
}

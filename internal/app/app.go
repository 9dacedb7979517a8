package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/controller"
	"planner_backend/internal/repository"
	"planner_backend/internal/service"
	"planner_backend/pkg/configwatcher"
	"planner_backend/pkg/database"
	"planner_backend/pkg/logger"
	"planner_backend/pkg/monitoring"
	"planner_backend/pkg/security"
	"planner_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "planner-backend"

type App struct {
	Config          *config.Config
	ConfigFile      string // 非空时启用配置热更新
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stopBackground  context.CancelFunc // 停止限流清理等后台任务
}

type repositories struct {
	user        *repository.UserRepository
	activity    *repository.ActivityEntryRepository
	badge       *repository.BadgeRepository
	habit       *repository.HabitRepository
	event       *repository.EventRepository
	wellness    *repository.WellnessRepository
	journal     *repository.JournalRepository
	vision      *repository.VisionRepository
	preferences *repository.PreferencesRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	activity    *service.ActivityService
	badge       *service.BadgeService
	habit       *service.HabitService
	event       *service.EventService
	wellness    *service.WellnessService
	journal     *service.JournalService
	visionBoard *service.VisionBoardService
	preferences *service.PreferencesService
	dashboard   *service.DashboardService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	activity    *controller.ActivityController
	badge       *controller.BadgeController
	habit       *controller.HabitController
	event       *controller.EventController
	wellness    *controller.WellnessController
	journal     *controller.JournalController
	visionBoard *controller.VisionBoardController
	preferences *controller.PreferencesController
	dashboard   *controller.DashboardController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) reloadConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		activity:    repository.NewActivityEntryRepository(db),
		badge:       repository.NewBadgeRepository(db, rdb),
		habit:       repository.NewHabitRepository(db),
		event:       repository.NewEventRepository(db),
		wellness:    repository.NewWellnessRepository(db),
		journal:     repository.NewJournalRepository(db),
		vision:      repository.NewVisionRepository(db),
		preferences: repository.NewPreferencesRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.activity = service.NewActivityService(repos.activity, repos.badge, cfg)
	s.badge = service.NewBadgeService(repos.badge)
	s.habit = service.NewHabitService(repos.habit)
	s.event = service.NewEventService(repos.event, cfg)
	s.wellness = service.NewWellnessService(repos.wellness, cfg)
	s.journal = service.NewJournalService(repos.journal, cfg)
	s.visionBoard = service.NewVisionBoardService(repos.vision, s.storage)
	s.preferences = service.NewPreferencesService(repos.preferences)
	s.dashboard = service.NewDashboardService(s.activity, s.event, s.wellness, s.badge, s.preferences)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		activity:    controller.NewActivityController(s.activity),
		badge:       controller.NewBadgeController(s.badge),
		habit:       controller.NewHabitController(s.habit),
		event:       controller.NewEventController(s.event),
		wellness:    controller.NewWellnessController(s.wellness),
		journal:     controller.NewJournalController(s.journal),
		visionBoard: controller.NewVisionBoardController(s.visionBoard),
		preferences: controller.NewPreferencesController(s.preferences),
		dashboard:   controller.NewDashboardController(s.dashboard),
		health:      controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(ctx context.Context, router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		router.Use(security.RateLimiter(ctx, cfg.RateLimit.MaxRequests, window))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 使用已建立的连接组装路由，不做任何基础设施初始化
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	router.MaxMultipartMemory = 16 << 20
	app.Router = router

	bgCtx, stop := context.WithCancel(context.Background())
	app.stopBackground = stop
	app.setupMiddlewares(bgCtx, router, cfg)
	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// NewApp 初始化日志、数据库、Redis、监控与追踪后组装应用
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("initialize redis: %w", err)
	}

	// 监控初始化
	monitoring.Init()

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(serviceName, cfg.Tracing.CollectorEndpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing, continuing without it", zap.Error(err))
		} else {
			app.tracerProvider = tp
		}
	}

	app.RegisterConfigCallback(logger.SetLevel)
	return app, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.ConfigFile, a.reloadConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.stopBackground()

	if err := tracing.Shutdown(shutdownCtx, a.tracerProvider); err != nil {
		logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}

	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
	return nil
}

package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skill_assistant_backend/internal/config"
	"skill_assistant_backend/internal/controller"
	"skill_assistant_backend/internal/event"
	"skill_assistant_backend/internal/repository"
	"skill_assistant_backend/internal/service"
	"skill_assistant_backend/pkg/database"
	"skill_assistant_backend/pkg/logger"
	"skill_assistant_backend/pkg/monitoring"
	"skill_assistant_backend/pkg/security"
	"skill_assistant_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config      *config.Config
	Router      *gin.Engine
	MongoClient *mongo.Client
	DB          *mongo.Database
	Redis       *redis.Client
	Publisher   *event.Publisher

	repos          *repositories
	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	student    *repository.StudentRepository
	testResult *repository.TestResultRepository
	status     *repository.StatusRepository
}

type services struct {
	auth           *service.AuthService
	test           *service.TestService
	recommendation *service.RecommendationService
	chat           *service.ChatService
}

type controllers struct {
	auth           *controller.AuthController
	test           *controller.TestController
	recommendation *controller.RecommendationController
	docs           *controller.DocsController
	chat           *controller.ChatController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *mongo.Database) *repositories {
	return &repositories{
		student:    repository.NewStudentRepository(db),
		testResult: repository.NewTestResultRepository(db),
		status:     repository.NewStatusRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.student, a.Publisher, cfg)
	s.test = service.NewTestService(repos.testResult, a.Redis, a.Publisher)
	s.recommendation = service.NewRecommendationService(s.test)
	s.chat = service.NewChatService()

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		test:           controller.NewTestController(s.test),
		recommendation: controller.NewRecommendationController(s.recommendation),
		docs:           controller.NewDocsController(),
		chat:           controller.NewChatController(s.chat),
		health:         controller.NewHealthController(a.MongoClient, a.repos.status),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) ensureIndexes(repos *repositories) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repos.student.EnsureIndexes(ctx); err != nil {
		return err
	}
	return repos.testResult.EnsureIndexes(ctx)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	client, db, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		logger.Log.Fatal("Failed to initialize mongodb", zap.Error(err))
	}

	app := &App{
		Config:      cfg,
		MongoClient: client,
		DB:          db,
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		app.Redis = rdb
	}

	if cfg.RabbitMQ.URL != "" && cfg.RabbitMQ.Exchange != "" {
		publisher, err := event.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Log.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		app.Publisher = publisher
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	repos := app.initRepositories(db)
	app.repos = repos

	// 唯一索引在启动时落库，封堵重复注册的竞态窗口
	if err := app.ensureIndexes(repos); err != nil {
		logger.Log.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	if cfg.EnsureIndexesOnly {
		return app
	}

	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("skill-assistant", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Publisher != nil {
		a.Publisher.Close()
	}
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.MongoClient != nil {
		if err := a.MongoClient.Disconnect(ctx); err != nil {
			logger.Log.Error("Failed to disconnect mongodb", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"exercise-api/docs"
	"exercise-api/internal/config"
	exercisehandler "exercise-api/internal/handler/exercise"
	"exercise-api/internal/handler/health"
	"exercise-api/internal/handler/middleware"
	exerciseuc "exercise-api/internal/usecase/exercise"
	"exercise-api/pkg/logger"
)

// Server представляет HTTP сервер приложения
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	storage    *Storage
	cfg        *config.Config

	exerciseHandler *exercisehandler.Handler
}

// NewServer создает новый экземпляр сервера поверх открытого хранилища.
func NewServer(cfg *config.Config, storage *Storage) *Server {
	// Устанавливаем режим Gin в зависимости от окружения
	switch cfg.AppEnv {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	s := &Server{
		router:  gin.New(),
		storage: storage,
		cfg:     cfg,
	}

	exerciseService := exerciseuc.NewService(storage.Exercises, logger.Default())
	s.exerciseHandler = exercisehandler.NewHandler(exerciseService)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware настраивает middleware для роутера
func (s *Server) setupMiddleware() {
	// Recovery должен быть первым для перехвата паник
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.LoggerStructured())
	s.router.Use(middleware.CORS(&s.cfg.CORS))
}

// setupRoutes настраивает маршруты приложения
func (s *Server) setupRoutes() {
	s.setupHealthRoutes()
	s.setupExerciseRoutes()
	s.setupSwaggerRoutes()
}

// setupHealthRoutes настраивает health-check эндпоинты.
func (s *Server) setupHealthRoutes() {
	// Без явного nil интерфейс получил бы типизированный nil-указатель
	var pinger health.Pinger
	if s.storage.DB != nil {
		pinger = s.storage.DB
	}
	healthHandler := health.NewHandler(pinger, s.cfg.AppEnv)

	// GET /health: жив ли процесс.
	s.router.GET("/health", healthHandler.Health)
	// GET /health/db: доступность реляционного хранилища.
	s.router.GET("/health/db", healthHandler.HealthDB)
}

// setupExerciseRoutes настраивает CRUD-эндпоинты упражнений.
func (s *Server) setupExerciseRoutes() {
	exercises := s.router.Group("/exercises")
	{
		// GET /exercises: список всех упражнений.
		exercises.GET("", s.exerciseHandler.List)
		// POST /exercises: создать упражнение по названию.
		exercises.POST("", s.exerciseHandler.Create)
		// PUT /exercises/:id: частично обновить подходы/повторения.
		exercises.PUT("/:id", s.exerciseHandler.Update)
		// DELETE /exercises/:id: удалить упражнение.
		exercises.DELETE("/:id", s.exerciseHandler.Delete)
	}
}

// setupSwaggerRoutes публикует swagger UI на /swagger/index.html.
func (s *Server) setupSwaggerRoutes() {
	if !s.cfg.Swagger.Enabled {
		return
	}
	docs.SwaggerInfo.Host = s.cfg.Server.Address()
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start запускает HTTP сервер с graceful shutdown
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)

	go func() {
		log.Printf("HTTP сервер запущен на %s", address)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		log.Printf("Ошибка запуска сервера: %v", err)
		return err
	case sig := <-quit:
		log.Printf("Получен сигнал %v для остановки сервера...", sig)
	}

	return s.Shutdown(30 * time.Second)
}

// Shutdown останавливает HTTP сервер, дожидаясь активных запросов не дольше timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Println("HTTP сервер успешно остановлен")
	return nil
}

// GetRouter возвращает роутер (для тестирования)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

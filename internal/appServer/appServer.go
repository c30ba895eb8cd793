package appServer

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qixiao/douyin-lite/config"
	"github.com/qixiao/douyin-lite/internal/database"
	"github.com/qixiao/douyin-lite/internal/mock"
	"github.com/qixiao/douyin-lite/internal/service"
	"github.com/qixiao/douyin-lite/internal/transport"
	"github.com/qixiao/douyin-lite/pkg/redis"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// newHistoryStorage picks the search history storage by config. A
// broken driver degrades to in-memory storage: history is best-effort
// by contract and must never block startup.
func newHistoryStorage(cfg *config.Config) database.HistoryStorage {
	switch cfg.History.Driver {
	case "redis":
		client := redis.NewRedisClient(&cfg.Redis)
		storage, err := database.NewHistoryRedisStorage(client, cfg.History.Key)
		if err != nil {
			logrus.Warnf("redis unavailable, search history kept in memory only: %v", err)
			return database.NewHistoryMemoryStorage()
		}
		logrus.Info("search history storage: redis")
		return storage
	case "file":
		storage, err := database.NewHistoryFileStorage(cfg.History.FilePath)
		if err != nil {
			logrus.Warnf("history file inaccessible, search history kept in memory only: %v", err)
			return database.NewHistoryMemoryStorage()
		}
		logrus.Info("search history storage: file")
		return storage
	default:
		logrus.Info("search history storage: memory")
		return database.NewHistoryMemoryStorage()
	}
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Content supplier over the crawler fixtures
	supplier := mock.NewService(cfg.App.DataDir, cfg.App.MockDelay)

	historyStorage := newHistoryStorage(cfg)

	// Initialize services
	commentService := service.NewCommentService(supplier)
	historyService := service.NewHistoryService(historyStorage, cfg.History.MaxItems)
	videoService := service.NewVideoService(supplier, cfg.App.PageSize)

	// Initialize handlers
	videoHandler := transport.NewVideoHandler(videoService)
	commentHandler := transport.NewCommentHandler(commentService)
	searchHandler := transport.NewSearchHandler(historyService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(videoHandler, commentHandler, searchHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}

package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"clainai/config"
	"clainai/internal/agenttask"
	"clainai/internal/chat"
	tgDelivery "clainai/internal/chat/delivery/telegram"
	"clainai/internal/notification"
	"clainai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig
	db          *sql.DB

	// Domains
	chatUC          chat.UseCase
	taskUC          agenttask.UseCase
	notificationUC  notification.UseCase
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig
	// DB is pinged by the readiness check.
	DB *sql.DB

	ChatUC         chat.UseCase
	TaskUC         agenttask.UseCase
	NotificationUC notification.UseCase
	// TelegramHandler is optional.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimit:       cfg.RateLimit,
		db:              cfg.DB,
		chatUC:          cfg.ChatUC,
		taskUC:          cfg.TaskUC,
		notificationUC:  cfg.NotificationUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	StartGame(ctx context.Context, surface entity.Surface, sessionID, address string) (*entity.Session, error)
	GetGame(ctx context.Context, surface entity.Surface, sessionID string) (*entity.Session, error)
	MakeTurn(ctx context.Context, surface entity.Surface, sessionID string, cell int) (*entity.Session, error)
}

type notificationService interface {
	NotifyWin(ctx context.Context, address, promoCode string)
	NotifyLose(ctx context.Context, address string)
}

type promoRepo interface {
	FindByCode(ctx context.Context, code string) ([]*entity.PromoCode, error)
}

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo

	gameManager         gameManager
	notificationService notificationService
	promoRepo           promoRepo
}

func New(logger *slog.Logger, gameManager gameManager, notificationService notificationService, promoRepo promoRepo) *Server {
	server := &Server{
		logger:              logger.With("component", "rest"),
		echo:                echo.New(),
		gameManager:         gameManager,
		notificationService: notificationService,
		promoRepo:           promoRepo,
	}

	server.echo.HideBanner = true
	server.echo.HidePort = true

	server.echo.Use(middleware.Recover())
	server.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			server.logger.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
			return nil
		},
	}))
	// any origin may call the api, the browser page is served from elsewhere
	server.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType},
		AllowCredentials: true,
	}))

	server.routes()

	return server
}

func (that *Server) routes() {
	ping := NewPingHandler()
	that.echo.GET("/ping", ping.Ping)

	telegram := that.echo.Group("/api/telegram")
	telegram.GET("/test", ping.Test)
	telegram.POST("/win", that.handleWin)
	telegram.POST("/lose", that.handleLose)

	games := that.echo.Group("/api/games")
	games.POST("", that.handleNewGame)
	games.GET("/:id", that.handleGetGame)
	games.POST("/:id/turns", that.handleTurn)

	that.echo.GET("/api/promo-codes/:code", that.handlePromoCode)
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start serves until ctx is done, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	errCh := make(chan error, 1)
	go func() {
		errCh <- that.echo.Start(":" + port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		log.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}

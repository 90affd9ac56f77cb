package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-promo/internal/config"
	"github.com/rocketscienceinc/tictactoe-promo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-promo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-promo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-promo/transport/rest"
	"github.com/rocketscienceinc/tictactoe-promo/transport/telegram"
	"github.com/rocketscienceinc/tictactoe-promo/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	sessionRepo, closeSessions, err := initSessionRepo(groupCtx, logger, conf, group)
	if err != nil {
		return err
	}
	defer closeSessions()

	promoRepo, closePromos, err := initPromoRepo(ctx, conf)
	if err != nil {
		return err
	}
	defer closePromos()

	botAPI := initBotAPI(logger, conf)

	var channel service.Channel = service.NewLogChannel(logger.With("component", "notifications"))
	if botAPI != nil {
		channel = service.NewTelegramChannel(botAPI)
	}

	rnd := tictactoe.DefaultRand()
	if conf.RandSeed != 0 {
		rnd = tictactoe.NewSeededRand(conf.RandSeed)
	}

	notificationService := service.NewNotificationService(logger, channel, conf.Telegram.ChatID, conf.Telegram.NotifyTimeout)
	promoService := service.NewPromoService(logger, rnd, promoRepo)
	botService := service.NewBotService(rnd)
	gameManager := usecase.NewGameManager(logger, sessionRepo, botService, promoService, notificationService)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameManager, notificationService, promoRepo).Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, gameManager).Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	// run Telegram bot
	if botAPI != nil {
		group.Go(func() error {
			log.Info("Starting Telegram bot", "username", botAPI.Self.UserName)
			return telegram.New(logger, botAPI, gameManager, conf.Telegram.FrontendURL).Run(groupCtx)
		})
	}

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func initSessionRepo(ctx context.Context, logger *slog.Logger, conf *config.Config, group *errgroup.Group) (repository.SessionRepository, func(), error) {
	log := logger.With("component", "app")

	if conf.Session.Store == config.SessionStoreMemory {
		memoryRepo := repository.NewMemorySessionRepository(conf.Session.TTL)

		group.Go(func() error {
			memoryRepo.RunJanitor(ctx, logger, conf.Session.CleanupInterval)
			return nil
		})

		return memoryRepo, func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.Session.TTL), closeFn, nil
}

func initPromoRepo(ctx context.Context, conf *config.Config) (repository.PromoRepository, func(), error) {
	if conf.SQLiteStoragePath == "" {
		return repository.NewNopPromoRepository(), func() {}, nil
	}

	sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		_ = sqliteStorage.Close()
		return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
	}

	return repository.NewPromoRepository(sqliteStorage.Connection), func() { _ = sqliteStorage.Close() }, nil
}

// initBotAPI returns nil when no token is configured or Telegram cannot be reached.
// The bot surface is then disabled and notifications go to the log.
func initBotAPI(logger *slog.Logger, conf *config.Config) *tgbotapi.BotAPI {
	log := logger.With("method", "initBotAPI")

	if conf.Telegram.BotToken == "" {
		log.Warn("TELEGRAM_BOT_TOKEN is not set, telegram bot disabled")
		return nil
	}

	if err := tgbotapi.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn)); err != nil {
		log.Warn("could not set telegram logger", "error", err)
	}

	botAPI, err := tgbotapi.NewBotAPIWithAPIEndpoint(conf.Telegram.BotToken, conf.Telegram.APIEndpoint)
	if err != nil {
		log.Error("could not connect to telegram, telegram bot disabled", "error", err)
		return nil
	}

	return botAPI
}

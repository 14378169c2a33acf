package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"clainai/config"
	agenttaskRepo "clainai/internal/agenttask/repository/sqlite"
	agenttaskUsecase "clainai/internal/agenttask/usecase"
	tgDelivery "clainai/internal/chat/delivery/telegram"
	chatUsecase "clainai/internal/chat/usecase"
	completionUsecase "clainai/internal/completion/usecase"
	conversationRepo "clainai/internal/conversation/repository/sqlite"
	"clainai/internal/httpserver"
	notificationRepo "clainai/internal/notification/repository/sqlite"
	notificationUsecase "clainai/internal/notification/usecase"
	"clainai/internal/shortcut"
	"clainai/pkg/datemath"
	"clainai/pkg/gcalendar"
	"clainai/pkg/llmprovider"
	"clainai/pkg/log"
	"clainai/pkg/pricefeed"
	"clainai/pkg/sqlitedb"
	"clainai/pkg/telegram"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the Telegram webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func serve(parent context.Context, configPath string) error {
	// 1. Configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ClainAI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlitedb.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %s: %v", cfg.Database.Path, err)
		return err
	}
	defer db.Close()

	// 4. Completion providers
	registry, warnings, err := llmprovider.BuildRegistry(ctx, &cfg.LLM, llmprovider.FactoryOptions{
		Referer: cfg.Assistant.SiteURL,
		Title:   cfg.Assistant.Name,
	})
	if err != nil {
		return fmt.Errorf("build provider registry: %w", err)
	}
	for _, w := range warnings {
		logger.Warnf(ctx, "Provider disabled: %v", w)
	}
	logger.Infof(ctx, "Providers enabled: %d of %d", registry.EnabledCount(), len(registry.Entries()))

	manager := llmprovider.NewManager(registry, &llmprovider.Config{
		RetryAttempts: cfg.LLM.RetryAttempts,
		RetryDelay:    cfg.LLM.RetryDelay,
	}, logger)

	identity := shortcut.Identity{
		AssistantName:    cfg.Assistant.Name,
		DeveloperName:    cfg.Assistant.DeveloperName,
		DeveloperContact: cfg.Assistant.DeveloperContact,
	}

	completionUC, err := completionUsecase.New(logger, manager, completionUsecase.Config{
		Identity:       identity,
		HistoryWindow:  cfg.Assistant.HistoryWindow,
		MaxTokens:      cfg.Assistant.MaxTokens,
		Temperature:    cfg.Assistant.Temperature,
		GenericReplies: cfg.Fallback.GenericReplies,
	})
	if err != nil {
		logger.Error(ctx, "No completion source configured: set OPENROUTER_API_KEY, llm.providers or fallback.generic_replies")
		return err
	}

	// 5. Agent task collaborators (all optional)
	dateParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}
	taskOpts := agenttaskUsecase.Options{DateParser: dateParser}

	if cfg.PriceFeed.URLTemplate != "" {
		feed, feedErr := pricefeed.New(pricefeed.Config{
			URLTemplate: cfg.PriceFeed.URLTemplate,
			Selector:    cfg.PriceFeed.Selector,
			Timeout:     cfg.PriceFeed.Timeout,
		})
		if feedErr != nil {
			logger.Warnf(ctx, "Price feed not available (optional): %v", feedErr)
		} else {
			taskOpts.PriceFeed = feed
		}
	}

	if cfg.GoogleCalendar.CredentialsPath != "" {
		cal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath, gcalendar.Options{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.GoogleCalendar.Timezone,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `clainai calendar-auth` to generate token.json")
		} else {
			taskOpts.Calendar = cal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Domains
	notificationUC := notificationUsecase.New(notificationRepo.New(db, logger), logger)
	taskUC := agenttaskUsecase.New(agenttaskRepo.New(db, logger), notificationUC, logger, taskOpts)
	chatUC := chatUsecase.New(
		logger,
		conversationRepo.New(db, logger),
		shortcut.New(identity),
		taskUC,
		completionUC,
		chatUsecase.Config{
			Identity:         identity,
			HistoryWindow:    cfg.Assistant.HistoryWindow,
			MaxMessageLength: cfg.Assistant.MaxMessageLength,
			ConversationPage: cfg.Assistant.ConversationPage,
		},
	)

	var (
		bot             *telegram.Bot
		telegramHandler tgDelivery.Handler
	)
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, bot, cfg.Telegram.WebhookSecret)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimit:       cfg.RateLimit,
		DB:              db,
		ChatUC:          chatUC,
		TaskUC:          taskUC,
		NotificationUC:  notificationUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 8. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if bot != nil {
		g.Go(func() error {
			registerWebhook(gctx, logger, bot, cfg.Telegram)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// registerWebhook points Telegram at this service. Failure only costs the
// Telegram channel, so it is logged and not returned.
func registerWebhook(ctx context.Context, l log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		publicURL, err := newTunnelWatcher(cfg.NgrokAPIURL).PublicURL(ctx)
		if err != nil {
			l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = publicURL + tgDelivery.WebhookPath
		l.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if webhookURL == "" {
		l.Warn(ctx, "Telegram webhook not registered: telegram.webhook_url is empty")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}

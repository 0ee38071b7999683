package main

import (
	"context"
	"flag"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/nhle/chorebot/internal/bot"
	"github.com/nhle/chorebot/internal/engine"
	"github.com/nhle/chorebot/internal/model"
	"github.com/nhle/chorebot/internal/roster"
	"github.com/nhle/chorebot/internal/scheduler"
	"github.com/nhle/chorebot/internal/store"
)

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to config file")
	flag.Parse()

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if cfg.TelegramToken == "" {
		sugar.Fatalw("telegram token not configured",
			"hint", "set CHOREBOT_TELEGRAM_TOKEN or telegram_token in the config file")
	}

	// The request path and the scheduler each own a store handle and
	// coordinate only through the database.
	requestStore, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		sugar.Fatalw("opening store failed", "path", cfg.DatabasePath, "error", err)
	}
	defer requestStore.Close()

	schedulerStore, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		sugar.Fatalw("opening scheduler store failed", "path", cfg.DatabasePath, "error", err)
	}
	defer schedulerStore.Close()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		sugar.Fatalw("connecting to telegram failed", "error", err)
	}

	reg := roster.New(requestStore)
	eng := engine.New(requestStore, reg, sugar)
	sched := scheduler.New(schedulerStore, roster.New(schedulerStore), sugar,
		time.Duration(cfg.TickSeconds)*time.Second)

	ctx := context.Background()
	go sched.Run(ctx)

	sugar.Infow("bot started", "username", api.Self.UserName)
	bot.New(api, reg, eng, sugar).Run(ctx)
}

// newLogger builds the zap logger for the configured mode.
func newLogger(mode string) (*zap.Logger, error) {
	if mode == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shubhamxsingh07/jobFinderBot/internal/clock"
	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/dedup"
	"github.com/shubhamxsingh07/jobFinderBot/internal/dispatch"
	"github.com/shubhamxsingh07/jobFinderBot/internal/filter"
	"github.com/shubhamxsingh07/jobFinderBot/internal/logging"
	"github.com/shubhamxsingh07/jobFinderBot/internal/poll"
	"github.com/shubhamxsingh07/jobFinderBot/internal/preference"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
	"github.com/shubhamxsingh07/jobFinderBot/internal/status"
	"github.com/shubhamxsingh07/jobFinderBot/internal/telegram"
)

const defaultLogPath = "bot.log"

func main() {
	logFile := logging.Setup(defaultLogPath)
	defer func() { logFile.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &logFile); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Println("Bot stopped by user.")
			return
		}
		log.Printf("Error in main: %v", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, logFile *io.Closer) error {
	log.Println("Initializing Bot...")

	//load config
	cfgPath := os.Getenv("JOBBOT_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.json"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.LogPath != defaultLogPath {
		(*logFile).Close()
		*logFile = logging.Setup(cfg.LogPath)
	}
	log.Printf("🔧 Config loaded. Roles: %v", cfg.Roles)

	if _, err := cfg.ChatID(); err != nil {
		return err
	}

	clk := clock.Real{}

	//init telegram bot, the API may be unreachable at boot
	var bot *telegram.Bot
	for {
		bot, err = telegram.NewBot(cfg)
		if err == nil {
			break
		}
		log.Printf("❌ Failed to init Telegram Bot: %v", err)
		if err := clk.Sleep(ctx, cfg.Delays.ErrorBackoff); err != nil {
			return err
		}
	}
	log.Println("🤖 Telegram Bot initialized.")

	//ask user preference
	level, err := preference.NewSession(bot, clk, bot.ChatID(), cfg.Delays).Run(ctx)
	if err != nil {
		return err
	}
	profile := cfg.ApplyLevel(level)
	if err := bot.SendMessage(preference.ConfirmText(level)); err != nil {
		log.Printf("Error sending confirmation: %v", err)
	}

	opts := scraper.Options{
		Client:   scraper.NewHTTPClient(),
		Clock:    clk,
		Profile:  profile,
		Location: filter.PolicyFor(cfg.EnforceUSALocation),
	}

	poller := poll.New(poll.Options{
		Phases:          poll.BuildPhases(cfg, opts),
		Store:           dedup.NewStore(cfg.SeenJobsPath),
		Pipeline:        dispatch.New(bot, clk, cfg.Delays),
		Summary:         bot,
		Clock:           clk,
		Label:           level.Label(),
		IntervalMinutes: cfg.ScanIntervalMinutes,
		Backoff:         cfg.Delays.ErrorBackoff,
	})

	if cfg.StatusAddr != "" {
		go func() {
			if err := status.Serve(ctx, cfg.StatusAddr, poller.Status()); err != nil {
				log.Printf("⚠️ Status server stopped: %v", err)
			}
		}()
	}

	log.Printf("🚀 Starting scan loop (%s)...", level.Label())
	return poller.Run(ctx)
}

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/filter"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
	"github.com/shubhamxsingh07/jobFinderBot/internal/telegram"
)

// Sends one fake alert and a summary to check the chat wiring end to end.
func main() {
	path := "config.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	bot, err := telegram.NewBot(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize telegram bot: %v", err)
	}

	now := time.Now()
	mockJob := scraper.Job{
		ID:         fmt.Sprintf("test-job-%d", now.Unix()),
		Role:       "Junior Backend Engineer (Go) <test>",
		Company:    "Acme & Co",
		Location:   scraper.RemoteLocation,
		Link:       "https://example.com/careers",
		PostedDate: filter.FormatPosted(&now),
		Source:     "sendtest",
	}

	if err := bot.SendJob(mockJob, config.Fresher.Label()); err != nil {
		log.Fatalf("Failed to send message: %v", err)
	}
	if err := bot.SendSummary(1, cfg.ScanIntervalMinutes); err != nil {
		log.Fatalf("Failed to send summary: %v", err)
	}
	log.Println("✅ Sent test alert to Telegram!")
}

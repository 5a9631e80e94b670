package main

import (
	"fmt"
	"os"

	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper/googlenews"
)

// Prints what the bot would search for with the given config, without
// touching the network.
func main() {
	path := "config.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Telegram Token: %s\n", mask(cfg.TelegramToken))
	fmt.Printf("   Telegram Chat ID: %s\n", cfg.TelegramChatID)
	fmt.Printf("   Roles: %v\n", cfg.Roles)
	fmt.Printf("   Regions: %v\n", cfg.Regions)
	fmt.Printf("   Scan interval: %d minutes\n", cfg.ScanIntervalMinutes)
	fmt.Printf("   Seen jobs: %s\n", cfg.SeenJobsPath)

	for _, level := range []config.Level{config.Fresher, config.Experienced} {
		profile := cfg.ApplyLevel(level)
		fmt.Printf("\n📋 %s profile\n", level.Title())
		fmt.Printf("   Include: %v\n", profile.Include)
		fmt.Printf("   Exclude: %v\n", profile.Exclude)

		gn := googlenews.NewGoogleNewsScraper(cfg.Endpoints.GoogleNews, config.LookupRegion(config.RegionUSA),
			cfg.Delays.InterQuery, scraper.Options{Profile: profile})
		for _, q := range gn.Queries() {
			fmt.Printf("   🔎 %s\n", q)
		}
	}
}

func mask(token string) string {
	if len(token) <= 10 {
		return "(short)"
	}
	return token[:10] + "..."
}

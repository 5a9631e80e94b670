package telegram

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrTokenNotSet is returned instead of sending when the token is a placeholder.
var ErrTokenNotSet = errors.New("telegram token not set")

const sendTimeout = 5 * time.Second

// Update is an incoming chat message.
type Update struct {
	ID     int
	ChatID int64
	Text   string
}

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// routingClient uses the long timeout for getUpdates long polls and the short
// one for everything else.
type routingClient struct {
	short *http.Client
	long  *http.Client
}

func (c routingClient) Do(req *http.Request) (*http.Response, error) {
	if strings.HasSuffix(req.URL.Path, "/getUpdates") {
		return c.long.Do(req)
	}
	return c.short.Do(req)
}

// NewBot connects to the bot API. A placeholder token gives a bot whose sends
// are skipped, so the loop keeps running without notifications.
func NewBot(cfg *config.Config) (*Bot, error) {
	chatID, err := cfg.ChatID()
	if err != nil {
		return nil, err
	}
	if cfg.TokenIsPlaceholder() {
		return &Bot{chatID: chatID}, nil
	}

	client := routingClient{
		short: &http.Client{Timeout: sendTimeout},
		long:  &http.Client{Timeout: cfg.Delays.LongPollTimeout + 10*time.Second},
	}
	api, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramToken, cfg.Endpoints.Telegram, client)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//api.Debug = true

	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

// SendMessage sends HTML-formatted text to the configured chat.
func (b *Bot) SendMessage(text string) error {
	return b.send(text, tgbotapi.ModeHTML)
}

// SendPlain sends text without a parse mode.
func (b *Bot) SendPlain(text string) error {
	return b.send(text, "")
}

func (b *Bot) send(text, parseMode string) error {
	if b.api == nil {
		log.Println("Telegram token not set.")
		return ErrTokenNotSet
	}
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = parseMode
	_, err := b.api.Send(msg)
	return err
}

// SendJob sends one job alert. Job fields are escaped.
func (b *Bot) SendJob(job scraper.Job, label string) error {
	return b.SendMessage(FormatJob(job, label))
}

// SendSummary reports how many jobs a cycle found.
func (b *Bot) SendSummary(count, intervalMinutes int) error {
	return b.SendMessage(FormatSummary(count, intervalMinutes))
}

func FormatJob(job scraper.Job, label string) string {
	posted := job.PostedDate
	if posted == "" {
		posted = "N/A"
	}
	return fmt.Sprintf(
		"🆕 <b>%s Alert</b>\n\n"+
			"<b>Role:</b> %s\n"+
			"<b>Company:</b> %s\n"+
			"<b>Location:</b> %s\n"+
			"<b>Posted:</b> %s\n"+
			"Apply 👉 %s",
		html.EscapeString(label),
		html.EscapeString(job.Role),
		html.EscapeString(job.Company),
		html.EscapeString(job.Location),
		html.EscapeString(posted),
		html.EscapeString(job.Link),
	)
}

func FormatSummary(count, intervalMinutes int) string {
	return fmt.Sprintf(
		"✅ <b>Scan Complete</b>\n"+
			"Found %d new jobs.\n\n"+
			"😴 <b>Sleeping for %d minutes...</b>\n"+
			"I will be back with more jobs soon! 👋",
		count, intervalMinutes,
	)
}

// GetUpdates long-polls for messages starting at offset. timeout is in seconds.
func (b *Bot) GetUpdates(offset, timeout int) ([]Update, error) {
	if b.api == nil {
		return nil, ErrTokenNotSet
	}
	raw, err := b.api.GetUpdates(tgbotapi.UpdateConfig{Offset: offset, Timeout: timeout})
	if err != nil {
		return nil, err
	}

	updates := make([]Update, 0, len(raw))
	for _, u := range raw {
		up := Update{ID: u.UpdateID}
		if u.Message != nil {
			up.Text = u.Message.Text
			if u.Message.Chat != nil {
				up.ChatID = u.Message.Chat.ID
			}
		}
		updates = append(updates, up)
	}
	return updates, nil
}

// ChatID is the chat the bot talks to.
func (b *Bot) ChatID() int64 {
	return b.chatID
}

package telegram

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
)

type sent struct {
	ChatID    string
	Text      string
	ParseMode string
}

type fakeAPI struct {
	mu          sync.Mutex
	messages    []sent
	offsets     []string
	timeouts    []string
	updatesJSON string
	failSend    bool
}

func (f *fakeAPI) handler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = r.ParseForm()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"jobbot","username":"jobbot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		if f.failSend {
			w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
			return
		}
		f.messages = append(f.messages, sent{
			ChatID:    r.FormValue("chat_id"),
			Text:      r.FormValue("text"),
			ParseMode: r.FormValue("parse_mode"),
		})
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":555,"type":"private"}}}`))
	case strings.HasSuffix(r.URL.Path, "/getUpdates"):
		f.offsets = append(f.offsets, r.FormValue("offset"))
		f.timeouts = append(f.timeouts, r.FormValue("timeout"))
		body := f.updatesJSON
		if body == "" {
			body = "[]"
		}
		w.Write([]byte(`{"ok":true,"result":` + body + `}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestBot(t *testing.T) (*Bot, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(api.handler))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.TelegramToken = "123:abc"
	cfg.TelegramChatID = "555"
	cfg.Endpoints.Telegram = srv.URL + "/bot%s/%s"

	bot, err := NewBot(cfg)
	require.NoError(t, err)
	return bot, api
}

func TestSendJob_EscapesFields(t *testing.T) {
	bot, api := newTestBot(t)

	job := scraper.Job{
		ID:         "1",
		Role:       "Junior <Go> Developer",
		Company:    "Tom & Jerry",
		Location:   "Remote",
		Link:       "https://x.test/?a=1&b=2",
		PostedDate: "2026-03-10 11:00",
	}
	require.NoError(t, bot.SendJob(job, "Fresher Job"))

	require.Len(t, api.messages, 1)
	m := api.messages[0]
	assert.Equal(t, "555", m.ChatID)
	assert.Equal(t, "HTML", m.ParseMode)
	assert.Equal(t,
		"🆕 <b>Fresher Job Alert</b>\n\n"+
			"<b>Role:</b> Junior &lt;Go&gt; Developer\n"+
			"<b>Company:</b> Tom &amp; Jerry\n"+
			"<b>Location:</b> Remote\n"+
			"<b>Posted:</b> 2026-03-10 11:00\n"+
			"Apply 👉 https://x.test/?a=1&amp;b=2",
		m.Text)
}

func TestSendSummary(t *testing.T) {
	bot, api := newTestBot(t)
	require.NoError(t, bot.SendSummary(4, 30))

	require.Len(t, api.messages, 1)
	assert.Contains(t, api.messages[0].Text, "Found 4 new jobs.")
	assert.Contains(t, api.messages[0].Text, "Sleeping for 30 minutes...")
}

func TestSendPlain(t *testing.T) {
	bot, api := newTestBot(t)
	require.NoError(t, bot.SendPlain("hello"))
	assert.Equal(t, "", api.messages[0].ParseMode)
}

func TestSend_APIError(t *testing.T) {
	bot, api := newTestBot(t)
	api.failSend = true

	err := bot.SendMessage("hi")
	assert.ErrorContains(t, err, "chat not found")
}

func TestGetUpdates(t *testing.T) {
	bot, api := newTestBot(t)
	api.updatesJSON = `[
		{"update_id": 10, "message": {"message_id": 1, "date": 0, "chat": {"id": 555, "type": "private"}, "text": "Fresher"}},
		{"update_id": 11}
	]`

	updates, err := bot.GetUpdates(7, 100)
	require.NoError(t, err)
	assert.Equal(t, []Update{{ID: 10, ChatID: 555, Text: "Fresher"}, {ID: 11}}, updates)
	assert.Equal(t, []string{"7"}, api.offsets)
	assert.Equal(t, []string{"100"}, api.timeouts)

	//zero offset is omitted
	_, err = bot.GetUpdates(0, 100)
	require.NoError(t, err)
	assert.Equal(t, "", api.offsets[1])
}

func TestPlaceholderToken(t *testing.T) {
	cfg := config.Default()
	cfg.TelegramToken = "YOUR_BOT_TOKEN"
	cfg.TelegramChatID = "555"

	bot, err := NewBot(cfg)
	require.NoError(t, err)

	assert.ErrorIs(t, bot.SendMessage("x"), ErrTokenNotSet)
	_, err = bot.GetUpdates(0, 1)
	assert.ErrorIs(t, err, ErrTokenNotSet)
	assert.Equal(t, int64(555), bot.ChatID())
}

func TestNewBot_InvalidChatID(t *testing.T) {
	cfg := config.Default()
	cfg.TelegramToken = "123:abc"
	cfg.TelegramChatID = "not-a-number"

	_, err := NewBot(cfg)
	assert.Error(t, err)
}

type tagTransport struct {
	tag  string
	hits *[]string
}

func (t tagTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	*t.hits = append(*t.hits, t.tag)
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("")), Request: req}, nil
}

func TestRoutingClient(t *testing.T) {
	var hits []string
	c := routingClient{
		short: &http.Client{Transport: tagTransport{tag: "short", hits: &hits}},
		long:  &http.Client{Transport: tagTransport{tag: "long", hits: &hits}},
	}

	for _, p := range []string{"/botX/getUpdates", "/botX/sendMessage", "/botX/getMe"} {
		req, err := http.NewRequest(http.MethodPost, "http://telegram.test"+p, nil)
		require.NoError(t, err)
		resp, err := c.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, []string{"long", "short", "short"}, hits)
}

func TestFormatJob_MissingPosted(t *testing.T) {
	assert.Contains(t, FormatJob(scraper.Job{}, "Job"), "<b>Posted:</b> N/A")
}

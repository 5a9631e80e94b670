package preference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamxsingh07/jobFinderBot/internal/clock"
	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/telegram"
)

type poll struct {
	offset  int
	timeout int
}

type fakeTransport struct {
	sendErr   error
	messages  []string
	plain     []string
	responses [][]telegram.Update
	errs      []error
	polls     []poll
}

func (f *fakeTransport) SendMessage(text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.messages = append(f.messages, text)
	return nil
}

func (f *fakeTransport) SendPlain(text string) error {
	f.plain = append(f.plain, text)
	return nil
}

func (f *fakeTransport) GetUpdates(offset, timeout int) ([]telegram.Update, error) {
	f.polls = append(f.polls, poll{offset, timeout})
	i := len(f.polls) - 1
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], err
	}
	return nil, err
}

var start = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newSession(tr Transport, fake *clock.Fake) *Session {
	return NewSession(tr, fake, 42, config.DefaultDelays())
}

func TestRun_IgnoresHistoryThenResolves(t *testing.T) {
	tr := &fakeTransport{responses: [][]telegram.Update{
		// pending before the question
		{{ID: 100, ChatID: 42, Text: "experienced"}},
		// long polls
		{{ID: 101, ChatID: 9, Text: "fresher"}, {ID: 102, ChatID: 42, Text: "hi"}},
		nil,
		{{ID: 103, ChatID: 42, Text: "Fresher please"}},
	}}
	fake := clock.NewFake(start)

	level, err := newSession(tr, fake).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, config.Fresher, level)
	assert.Equal(t, []string{Question}, tr.messages)
	assert.Equal(t, []string{Reprompt}, tr.plain)
	assert.Equal(t, []poll{{0, 0}, {101, 100}, {103, 100}, {103, 100}}, tr.polls)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, fake.Sleeps())
}

func TestRun_SendFailureDefaultsToFresher(t *testing.T) {
	tr := &fakeTransport{sendErr: errors.New("network down")}

	level, err := newSession(tr, clock.NewFake(start)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, config.Fresher, level)
	assert.Empty(t, tr.polls)
}

func TestRun_PollErrorsKeepWaiting(t *testing.T) {
	tr := &fakeTransport{
		errs: []error{errors.New("pending failed"), errors.New("timeout")},
		responses: [][]telegram.Update{
			nil,
			nil,
			{{ID: 1, ChatID: 42, Text: "experience"}},
		},
	}

	level, err := newSession(tr, clock.NewFake(start)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, config.Experienced, level)
	assert.Len(t, tr.polls, 3)
}

func TestRun_DrainsFullPendingPages(t *testing.T) {
	page := make([]telegram.Update, pageSize)
	for i := range page {
		page[i] = telegram.Update{ID: i + 1, ChatID: 42, Text: "fresher"}
	}
	tr := &fakeTransport{responses: [][]telegram.Update{
		page,
		{{ID: 101, ChatID: 42, Text: "old"}},
		{{ID: 102, ChatID: 42, Text: "experienced"}},
	}}

	level, err := newSession(tr, clock.NewFake(start)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, config.Experienced, level)
	assert.Equal(t, []poll{{0, 0}, {101, 0}, {102, 100}}, tr.polls)
}

func TestRun_Cancelled(t *testing.T) {
	tr := &fakeTransport{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSession(tr, clock.NewFake(start)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

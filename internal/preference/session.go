package preference

import (
	"context"
	"log"
	"time"

	"github.com/shubhamxsingh07/jobFinderBot/internal/clock"
	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/telegram"
)

// pageSize is the bot API's default getUpdates limit.
const pageSize = 100

// Transport is the chat API the session needs.
type Transport interface {
	SendMessage(text string) error
	SendPlain(text string) error
	GetUpdates(offset, timeout int) ([]telegram.Update, error)
}

type Session struct {
	transport Transport
	clock     clock.Clock
	chatID    int64
	longPoll  time.Duration
	idle      time.Duration
}

func NewSession(t Transport, c clock.Clock, chatID int64, d config.Delays) *Session {
	return &Session{
		transport: t,
		clock:     c,
		chatID:    chatID,
		longPoll:  d.LongPollTimeout,
		idle:      d.UpdatePoll,
	}
}

// Run asks the question and blocks until the chat answers. If the question
// can't be sent it returns Fresher without polling. The only error is ctx's.
func (s *Session) Run(ctx context.Context) (config.Level, error) {
	if err := s.transport.SendMessage(Question); err != nil {
		log.Printf("Error sending question: %v", err)
		return config.Fresher, nil
	}

	log.Println("Waiting for user input...")
	m := NewMachine(s.chatID)
	s.skipPending(m)

	timeout := int(s.longPoll / time.Second)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		updates, err := s.transport.GetUpdates(m.Offset, timeout)
		if err != nil {
			log.Printf("Error getting updates: %v", err)
		}
		for _, u := range updates {
			switch m.Step(u) {
			case Done:
				log.Printf("User chose: %s", m.Level)
				return m.Level, nil
			case SendReprompt:
				if err := s.transport.SendPlain(Reprompt); err != nil {
					log.Printf("Error sending reprompt: %v", err)
				}
			}
		}

		if err := s.clock.Sleep(ctx, s.idle); err != nil {
			return "", err
		}
	}
}

// skipPending moves the offset past updates that arrived before the question.
func (s *Session) skipPending(m *Machine) {
	for {
		pending, err := s.transport.GetUpdates(m.Offset, 0)
		if err != nil {
			log.Printf("Error getting updates: %v", err)
			return
		}
		for _, u := range pending {
			m.Skip(u)
		}
		if len(pending) < pageSize {
			return
		}
	}
}

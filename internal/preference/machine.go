// Package preference asks the user, over the chat, whether to search for
// fresher or experienced jobs.
package preference

import (
	"strings"

	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/telegram"
)

const (
	Question = "🤖 <b>Setup:</b> Are you looking for <b>Fresher</b> or <b>Experienced</b> jobs?\n\n" +
		"Please reply with 'Fresher' or 'Experienced'."
	Reprompt = "Please reply with 'Fresher' or 'Experienced'."
)

type State int

const (
	AwaitingChoice State = iota
	Resolved
)

func (s State) String() string {
	if s == Resolved {
		return "RESOLVED"
	}
	return "AWAITING_CHOICE"
}

// Action is what the shell must do after a step.
type Action int

const (
	// Ignore: the update was not from our chat, or we already resolved.
	Ignore Action = iota
	// SendReprompt: our chat replied with something unrecognized.
	SendReprompt
	// Done: the choice is in Machine.Level.
	Done
)

// Machine is the pure transition function of the session. It tracks the next
// update offset so every update is consumed once.
type Machine struct {
	ChatID int64
	State  State
	Level  config.Level
	Offset int
}

func NewMachine(chatID int64) *Machine {
	return &Machine{ChatID: chatID, State: AwaitingChoice}
}

// Skip advances the offset past u without interpreting it. Used for updates
// that were pending before the question was asked.
func (m *Machine) Skip(u telegram.Update) {
	if u.ID+1 > m.Offset {
		m.Offset = u.ID + 1
	}
}

// Step consumes one update.
func (m *Machine) Step(u telegram.Update) Action {
	m.Skip(u)
	if m.State == Resolved || u.ChatID != m.ChatID {
		return Ignore
	}

	level, ok := Classify(u.Text)
	if !ok {
		return SendReprompt
	}
	m.Level = level
	m.State = Resolved
	return Done
}

// Classify maps a reply to a level. "fresher" wins over "experience".
func Classify(text string) (config.Level, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(t, "fresher"):
		return config.Fresher, true
	case strings.Contains(t, "experienced"), strings.Contains(t, "experience"):
		return config.Experienced, true
	}
	return "", false
}

// ConfirmText is sent once the level is known.
func ConfirmText(l config.Level) string {
	return "✅ Preference set to: <b>" + l.Title() + "</b>. Starting scan..."
}

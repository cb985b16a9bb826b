package irc

import (
	"log"
	"strings"
	"sync"

	ircv4 "gopkg.in/irc.v4"
)

// Most servers cap the mode changes accepted per MODE line.
const voiceBatchSize = 4

// Messenger sends PRIVMSG and MODE lines for the session. It exists
// before the connection does: Say and Voice silently drop output
// until bind is called with a live client.
type Messenger struct {
	channel string

	mu     sync.Mutex
	client *ircv4.Client
}

// NewMessenger creates a messenger for the given channel
func NewMessenger(channel string) *Messenger {
	return &Messenger{channel: channel}
}

// bind attaches the live client. Called on every inbound message, so
// a reconnected client takes over transparently.
func (m *Messenger) bind(c *ircv4.Client) {
	m.mu.Lock()
	m.client = c
	m.mu.Unlock()
}

func (m *Messenger) current() *ircv4.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client
}

// Say sends text to a channel or a nick, one PRIVMSG per line
func (m *Messenger) Say(target, text string) {
	c := m.current()
	if c == nil {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		err := c.WriteMessage(&ircv4.Message{
			Command: "PRIVMSG",
			Params:  []string{target, line},
		})
		if err != nil {
			log.Printf("say to %s: %v", target, err)
		}
	}
}

// Voice grants or revokes channel voice, batching the mode changes
func (m *Messenger) Voice(grant bool, nicks []string) {
	c := m.current()
	if c == nil || len(nicks) == 0 {
		return
	}

	direction := "+"
	if !grant {
		direction = "-"
	}

	for start := 0; start < len(nicks); start += voiceBatchSize {
		batch := nicks[start:min(start+voiceBatchSize, len(nicks))]
		params := append([]string{m.channel, direction + strings.Repeat("v", len(batch))}, batch...)
		err := c.WriteMessage(&ircv4.Message{Command: "MODE", Params: params})
		if err != nil {
			log.Printf("mode %sv on %s: %v", direction, m.channel, err)
		}
	}
}

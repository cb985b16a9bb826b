// Package irc adapts raw IRC traffic to session operations: numerics
// and channel events on the way in, PRIVMSG and MODE lines on the way
// out.
package irc

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	ircv4 "gopkg.in/irc.v4"

	"github.com/cadavrebot/cadavre/internal/services/session"
)

// Nick prefixes a server may list in a NAMES reply.
const rosterPrefixes = "~&@%+"

// Bot routes inbound IRC messages to the session service. It
// implements ircv4.Handler.
type Bot struct {
	config    *Config
	session   session.Service
	messenger *Messenger
	commands  map[string]command
	admins    map[string]bool

	mu     sync.Mutex
	roster []string // voiced nicks accumulated between 353 and 366
}

// Config holds the configuration for the bot
type Config struct {
	// Channel the bot plays on
	Channel string

	// Admins may use the moderation commands
	Admins []string

	// Session service
	Session session.Service

	// Messenger shared with the session service
	Messenger *Messenger
}

// New creates a new IRC bot handler
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Channel == "" {
		return nil, errors.New("channel cannot be empty")
	}
	if cfg.Session == nil {
		return nil, errors.New("session service cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	admins := make(map[string]bool, len(cfg.Admins))
	for _, nick := range cfg.Admins {
		admins[nick] = true
	}

	bot := &Bot{
		config:    cfg,
		session:   cfg.Session,
		messenger: cfg.Messenger,
		admins:    admins,
	}
	bot.commands = commandTable()

	return bot, nil
}

// Handle dispatches one inbound message. Called serially by the
// client's read loop.
func (b *Bot) Handle(c *ircv4.Client, m *ircv4.Message) {
	b.messenger.bind(c)
	ctx := context.Background()

	switch m.Command {
	case "001":
		c.Writef("JOIN %s", b.config.Channel)

	case "JOIN":
		if m.Prefix.Name == c.CurrentNick() && m.Param(0) == b.config.Channel {
			if err := b.session.ChannelJoined(ctx); err != nil {
				log.Printf("channel joined: %v", err)
			}
		}

	case "353":
		b.collectRoster(m)

	case "366":
		b.deliverRoster(ctx, m)

	case "PRIVMSG":
		b.handlePrivmsg(ctx, m)

	case "PART":
		if m.Param(0) == b.config.Channel && m.Prefix.Name != c.CurrentNick() {
			b.playerDeparted(ctx, m.Prefix.Name)
		}

	case "QUIT":
		if m.Prefix.Name != c.CurrentNick() {
			b.playerDeparted(ctx, m.Prefix.Name)
		}

	case "KICK":
		if m.Param(0) != b.config.Channel {
			return
		}
		if kicked := m.Param(1); kicked != c.CurrentNick() {
			b.playerDeparted(ctx, kicked)
		} else {
			// Kicked out of our own game. Walk back in.
			c.Writef("JOIN %s", b.config.Channel)
		}
	}
}

// collectRoster accumulates the voiced nicks of a NAMES reply
func (b *Bot) collectRoster(m *ircv4.Message) {
	if len(m.Params) < 4 || m.Params[2] != b.config.Channel {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, entry := range strings.Fields(m.Trailing()) {
		nick := strings.TrimLeft(entry, rosterPrefixes)
		if nick == "" {
			continue
		}
		if strings.Contains(entry[:len(entry)-len(nick)], "+") {
			b.roster = append(b.roster, nick)
		}
	}
}

// deliverRoster hands the accumulated voiced nicks to the session
// when the NAMES reply completes
func (b *Bot) deliverRoster(ctx context.Context, m *ircv4.Message) {
	if len(m.Params) < 2 || m.Params[1] != b.config.Channel {
		return
	}

	b.mu.Lock()
	voiced := b.roster
	b.roster = nil
	b.mu.Unlock()

	if err := b.session.RosterReady(ctx, &session.RosterReadyInput{Voiced: voiced}); err != nil {
		log.Printf("roster ready: %v", err)
	}
}

// handlePrivmsg routes channel commands and private submissions
func (b *Bot) handlePrivmsg(ctx context.Context, m *ircv4.Message) {
	nick := m.Prefix.Name
	target := m.Param(0)
	text := strings.TrimSpace(m.Trailing())

	if target == b.config.Channel {
		if strings.HasPrefix(text, commandPrefix) {
			b.dispatch(ctx, nick, text, true)
		}
		return
	}

	// Private message to the bot.
	if strings.HasPrefix(text, commandPrefix) {
		b.dispatch(ctx, nick, text, false)
		return
	}
	if text == "" {
		return
	}
	if err := b.session.Submit(ctx, &session.SubmitInput{Nick: nick, Text: text}); err != nil {
		log.Printf("submit from %s: %v", nick, err)
	}
}

func (b *Bot) playerDeparted(ctx context.Context, nick string) {
	err := b.session.PlayerDeparted(ctx, &session.PlayerDepartedInput{Nick: nick})
	if err != nil {
		log.Printf("player departed %s: %v", nick, err)
	}
}

package irc

import (
	"context"
	"log"
	"strings"

	"github.com/cadavrebot/cadavre/internal/services/session"
)

const commandPrefix = "!"

// command is one "!" chat command. Admin commands are silently denied
// to everyone else; only help is exempt from any gate.
type command struct {
	admin bool
	run   func(ctx context.Context, b *Bot, nick, arg string) (string, error)
}

func commandTable() map[string]command {
	return map[string]command{
		"join": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Join(ctx, &session.JoinInput{Nick: nick, Allowance: arg})
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"part": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Part(ctx, &session.PartInput{Nick: nick})
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"start": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Start(ctx, &session.StartInput{Nick: nick})
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"blame": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Blame(ctx, &session.BlameInput{Nick: nick})
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"sub": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Subscribe(ctx, &session.SubscribeInput{Nick: nick})
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"unsub": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Unsubscribe(ctx, &session.UnsubscribeInput{Nick: nick})
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"summon": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Summon(ctx, &session.SummonInput{Nick: nick})
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"reveal": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			out, err := b.session.Reveal(ctx)
			if err != nil {
				return "", err
			}
			return out.Reply, nil
		}},
		"help": {run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			return helpText, nil
		}},
		"kick": {admin: true, run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			nicks := strings.Fields(arg)
			if len(nicks) == 0 {
				return "qui ?", nil
			}
			return "", b.session.Kick(ctx, &session.KickInput{Nicks: nicks})
		}},
		"abort": {admin: true, run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			return "", b.session.Abort(ctx)
		}},
		"reset": {admin: true, run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			return "", b.session.Reset(ctx)
		}},
		"dump": {admin: true, run: func(ctx context.Context, b *Bot, nick, arg string) (string, error) {
			return "", b.session.Dump(ctx, &session.DumpInput{Nick: nick})
		}},
	}
}

const helpText = "commandes : !join [manches|durée], !part, !start, !blame, !sub, !unsub, !summon, !reveal " +
	"(en privé : envoie ton fragment tel quel)"

// dispatch parses and runs a "!" command. Unknown commands and denied
// admin commands are ignored without a reply.
func (b *Bot) dispatch(ctx context.Context, nick, text string, public bool) {
	fields := strings.Fields(strings.TrimPrefix(text, commandPrefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	cmd, ok := b.commands[name]
	if !ok {
		return
	}
	if cmd.admin && !b.admins[nick] {
		return
	}

	reply, err := cmd.run(ctx, b, nick, arg)
	if err != nil {
		log.Printf("command %s from %s: %v", name, nick, err)
		return
	}
	if reply == "" {
		return
	}

	if public {
		b.messenger.Say(b.config.Channel, nick+": "+reply)
	} else {
		b.messenger.Say(nick, reply)
	}
}

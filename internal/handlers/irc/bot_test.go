package irc

import (
	"bufio"
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	ircv4 "gopkg.in/irc.v4"

	"github.com/cadavrebot/cadavre/internal/services/session"
	sessionMocks "github.com/cadavrebot/cadavre/internal/services/session/mocks"
)

type botSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	service *sessionMocks.MockService
	bot     *Bot
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(botSuite))
}

func (s *botSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.service = sessionMocks.NewMockService(s.ctrl)

	bot, err := New(&Config{
		Channel:   "#cadavre",
		Admins:    []string{"mod"},
		Session:   s.service,
		Messenger: NewMessenger("#cadavre"),
	})
	s.Require().NoError(err)
	s.bot = bot
}

func (s *botSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *botSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Channel: "#cadavre", Messenger: NewMessenger("#cadavre")})
	s.Error(err)

	_, err = New(&Config{Channel: "#cadavre", Session: s.service})
	s.Error(err)
}

func (s *botSuite) TestRosterCollection() {
	// Two NAMES chunks, then the end-of-list numeric. Only voiced
	// nicks reach the session; other prefixes are stripped first.
	s.bot.collectRoster(&ircv4.Message{
		Command: "353",
		Params:  []string{"cadavre", "=", "#cadavre", "@op +alice bob"},
	})
	s.bot.collectRoster(&ircv4.Message{
		Command: "353",
		Params:  []string{"cadavre", "=", "#cadavre", "@+carol dave"},
	})

	s.service.EXPECT().RosterReady(gomock.Any(), &session.RosterReadyInput{
		Voiced: []string{"alice", "carol"},
	})
	s.bot.deliverRoster(s.ctx, &ircv4.Message{
		Command: "366",
		Params:  []string{"cadavre", "#cadavre", "End of /NAMES list"},
	})

	// The buffer is consumed: a second end-of-list delivers nothing
	// extra.
	s.service.EXPECT().RosterReady(gomock.Any(), &session.RosterReadyInput{})
	s.bot.deliverRoster(s.ctx, &ircv4.Message{
		Command: "366",
		Params:  []string{"cadavre", "#cadavre", "End of /NAMES list"},
	})
}

func (s *botSuite) TestRosterIgnoresOtherChannels() {
	s.bot.collectRoster(&ircv4.Message{
		Command: "353",
		Params:  []string{"cadavre", "=", "#autre", "+alice"},
	})
	s.bot.deliverRoster(s.ctx, &ircv4.Message{
		Command: "366",
		Params:  []string{"cadavre", "#autre", "End of /NAMES list"},
	})
}

func (s *botSuite) TestPrivateSubmission() {
	s.service.EXPECT().Submit(gomock.Any(), &session.SubmitInput{Nick: "alice", Text: "la meuf du voisin"})
	s.bot.handlePrivmsg(s.ctx, &ircv4.Message{
		Prefix:  &ircv4.Prefix{Name: "alice"},
		Command: "PRIVMSG",
		Params:  []string{"cadavre", "  la meuf du voisin "},
	})
}

func (s *botSuite) TestChannelCommand() {
	s.service.EXPECT().Join(gomock.Any(), &session.JoinInput{Nick: "alice", Allowance: "3"}).
		Return(&session.JoinOutput{}, nil)
	s.bot.handlePrivmsg(s.ctx, &ircv4.Message{
		Prefix:  &ircv4.Prefix{Name: "alice"},
		Command: "PRIVMSG",
		Params:  []string{"#cadavre", "!join 3"},
	})
}

func (s *botSuite) TestChannelChatterIgnored() {
	s.bot.handlePrivmsg(s.ctx, &ircv4.Message{
		Prefix:  &ircv4.Prefix{Name: "alice"},
		Command: "PRIVMSG",
		Params:  []string{"#cadavre", "bonjour tout le monde"},
	})
}

func (s *botSuite) TestPrivateCommand() {
	s.service.EXPECT().Part(gomock.Any(), &session.PartInput{Nick: "alice"}).
		Return(&session.PartOutput{}, nil)
	s.bot.handlePrivmsg(s.ctx, &ircv4.Message{
		Prefix:  &ircv4.Prefix{Name: "alice"},
		Command: "PRIVMSG",
		Params:  []string{"cadavre", "!part"},
	})
}

func (s *botSuite) TestAdminCommandDeniedSilently() {
	// No expectation: the denied command must not reach the session.
	s.bot.dispatch(s.ctx, "alice", "!reset", true)
}

func (s *botSuite) TestAdminCommandAllowed() {
	s.service.EXPECT().Reset(gomock.Any())
	s.bot.dispatch(s.ctx, "mod", "!reset", true)
}

func (s *botSuite) TestKickCommandSplitsNicks() {
	s.service.EXPECT().Kick(gomock.Any(), &session.KickInput{Nicks: []string{"alice", "bob"}})
	s.bot.dispatch(s.ctx, "mod", "!kick alice bob", true)
}

func (s *botSuite) TestUnknownCommandIgnored() {
	s.bot.dispatch(s.ctx, "alice", "!danse", true)
}

func (s *botSuite) TestCaseInsensitiveCommand() {
	s.service.EXPECT().Blame(gomock.Any(), &session.BlameInput{Nick: "alice"}).
		Return(&session.BlameOutput{}, nil)
	s.bot.dispatch(s.ctx, "alice", "!BLAME", true)
}

type messengerSuite struct {
	suite.Suite
	messenger *Messenger
	lines     chan string
	closeConn func()
}

func TestMessengerSuite(t *testing.T) {
	suite.Run(t, new(messengerSuite))
}

func (s *messengerSuite) SetupTest() {
	server, client := net.Pipe()
	s.closeConn = func() {
		server.Close()
		client.Close()
	}

	s.lines = make(chan string, 16)
	go func() {
		reader := bufio.NewReader(server)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			s.lines <- line
		}
	}()

	s.messenger = NewMessenger("#cadavre")
	s.messenger.bind(ircv4.NewClient(client, ircv4.ClientConfig{Nick: "cadavre", User: "cadavre", Name: "cadavre"}))
}

func (s *messengerSuite) TearDownTest() {
	s.closeConn()
}

func (s *messengerSuite) TestSay() {
	s.messenger.Say("#cadavre", "on rejoue ?")
	s.Equal("PRIVMSG #cadavre :on rejoue ?\r\n", <-s.lines)
}

func (s *messengerSuite) TestSayMultiline() {
	s.messenger.Say("alice", "ligne un\nligne deux")
	s.Equal("PRIVMSG alice :ligne un\r\n", <-s.lines)
	s.Equal("PRIVMSG alice :ligne deux\r\n", <-s.lines)
}

func (s *messengerSuite) TestVoiceBatches() {
	s.messenger.Voice(true, []string{"p1", "p2", "p3", "p4", "p5"})
	s.Equal("MODE #cadavre +vvvv p1 p2 p3 p4\r\n", <-s.lines)
	s.Equal("MODE #cadavre +v p5\r\n", <-s.lines)
}

func (s *messengerSuite) TestVoiceRevoke() {
	s.messenger.Voice(false, []string{"alice"})
	s.Equal("MODE #cadavre -v alice\r\n", <-s.lines)
}

func (s *messengerSuite) TestUnboundMessengerDropsOutput() {
	unbound := NewMessenger("#cadavre")
	unbound.Say("#cadavre", "perdu")
	unbound.Voice(true, []string{"alice"})
}

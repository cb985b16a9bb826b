package main

import (
	"context"
	"crypto/tls"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	ircv4 "gopkg.in/irc.v4"

	"github.com/cadavrebot/cadavre/internal/common/clock"
	"github.com/cadavrebot/cadavre/internal/common/timer"
	"github.com/cadavrebot/cadavre/internal/common/uuid"
	irchandler "github.com/cadavrebot/cadavre/internal/handlers/irc"
	"github.com/cadavrebot/cadavre/internal/quota"
	"github.com/cadavrebot/cadavre/internal/random"
	quotaRepo "github.com/cadavrebot/cadavre/internal/repositories/quota"
	subscriptionRepo "github.com/cadavrebot/cadavre/internal/repositories/subscription"
	"github.com/cadavrebot/cadavre/internal/services/session"
)

type config struct {
	Server  string   `env:"IRC_SERVER" envDefault:"localhost:6667"`
	UseTLS  bool     `env:"IRC_TLS" envDefault:"false"`
	Nick    string   `env:"IRC_NICK" envDefault:"cadavre"`
	User    string   `env:"IRC_USER" envDefault:"cadavre"`
	Name    string   `env:"IRC_NAME" envDefault:"cadavre exquis"`
	Pass    string   `env:"IRC_PASSWORD"`
	Channel string   `env:"IRC_CHANNEL" envDefault:"#cadavre"`
	Admins  []string `env:"IRC_ADMINS" envSeparator:","`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	MaxPlayers    int           `env:"MAX_PLAYERS" envDefault:"6"`
	GracePeriod   time.Duration `env:"GRACE_PERIOD" envDefault:"4s"`
	Cooldown      time.Duration `env:"COOLDOWN" envDefault:"6s"`
	SweepInterval time.Duration `env:"QUOTA_SWEEP_INTERVAL" envDefault:"1m"`
}

func main() {
	// A missing .env is fine; the environment may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	qRepo, err := quotaRepo.NewRedis(&quotaRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create quota repository: %v", err)
	}

	subRepo, err := subscriptionRepo.NewRedis(&subscriptionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create subscription repository: %v", err)
	}

	// Initialize quota tracker
	tracker, err := quota.New(&quota.Config{
		QuotaRepo: qRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create quota tracker: %v", err)
	}

	// Initialize session service
	messenger := irchandler.NewMessenger(cfg.Channel)
	sessionSvc, err := session.New(&session.Config{
		Channel:          cfg.Channel,
		MaxPlayers:       cfg.MaxPlayers,
		GracePeriod:      cfg.GracePeriod,
		Cooldown:         cfg.Cooldown,
		SweepInterval:    cfg.SweepInterval,
		Messenger:        messenger,
		Scheduler:        &timer.DefaultScheduler{},
		Clock:            &clock.DefaultClock{},
		UUIDGenerator:    uuid.New(),
		Rand:             random.New(&random.Config{}),
		QuotaTracker:     tracker,
		SubscriptionRepo: subRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}
	defer sessionSvc.Close()

	// Initialize IRC bot
	bot, err := irchandler.New(&irchandler.Config{
		Channel:   cfg.Channel,
		Admins:    cfg.Admins,
		Session:   sessionSvc,
		Messenger: messenger,
	})
	if err != nil {
		log.Fatalf("Failed to create IRC bot: %v", err)
	}

	// Connect to the IRC server
	var conn net.Conn
	if cfg.UseTLS {
		conn, err = tls.Dial("tcp", cfg.Server, nil)
	} else {
		conn, err = net.Dial("tcp", cfg.Server)
	}
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", cfg.Server, err)
	}

	client := ircv4.NewClient(conn, ircv4.ClientConfig{
		Nick:      cfg.Nick,
		User:      cfg.User,
		Name:      cfg.Name,
		Pass:      cfg.Pass,
		Handler:   bot,
		SendLimit: 500 * time.Millisecond,
		SendBurst: 4,
	})

	// Run until interrupted
	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Connected to %s, joining %s", cfg.Server, cfg.Channel)
	if err := client.RunContext(runCtx); err != nil && runCtx.Err() == nil {
		log.Fatalf("IRC client stopped: %v", err)
	}

	log.Println("Bot has been shut down")
}

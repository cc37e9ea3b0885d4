package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iabdulin/pr-access-control/approval"
	"github.com/iabdulin/pr-access-control/gateway"
	githubgw "github.com/iabdulin/pr-access-control/github"
	"github.com/iabdulin/pr-access-control/hook"
	"github.com/jessevdk/go-flags"
)

// shutdownTimeout bounds how long in-flight deliveries may run after a
// termination signal.
const shutdownTimeout = 5 * time.Second

type options struct {
	Config string `short:"c" long:"config" env:"CONFIG_PATH" value-name:"FILE" description:"Path to a YAML configuration file. The environment is used when omitted."`
	Addr   string `long:"listen" value-name:"ADDR" description:"Override the configured listen address."`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	cfg, err := Load(opts.Config)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}

	log := newLogger(cfg.LogLevel)

	creds, err := githubgw.LoadAppCredentials(cfg.AppID, cfg.PrivateKeyPath)
	if err != nil {
		log.Error("failed to load app credentials", "error", err)
		os.Exit(1)
	}

	repos, err := cfg.AllowedRepos()
	if err != nil {
		log.Error("failed to parse repository allowlist", "error", err)
		os.Exit(1)
	}

	engine := approval.NewEngine(cfg.TeamARoster(), cfg.TeamBRoster(), log)
	dispatcher := hook.NewDispatcher(hook.Config{
		Engine:      engine,
		Gateways:    githubgw.NewClientFactory(creds).Gateway,
		MergeMethod: gateway.MergeMethod(cfg.MergeMethod),
		Log:         log,
		Repos:       repos,
	})
	server := hook.NewServer([]byte(cfg.WebhookSecret), dispatcher, log)

	srv := &http.Server{Addr: cfg.Addr, Handler: server.Router()}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("listening for webhook deliveries", "addr", cfg.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

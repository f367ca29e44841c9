package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"serviceBooker/internal/client"
	"serviceBooker/internal/config"
	"serviceBooker/internal/lib/clock"
	"serviceBooker/internal/lib/logger"
	"serviceBooker/internal/localcache"
)

type options struct {
	configPath string
	simulate   bool
	offline    bool
}

type app struct {
	cfg     *config.Config
	log     *slog.Logger
	cache   localcache.Cache
	handler *client.Handler
}

func newApp(opts *options, logOut io.Writer) (*app, error) {
	const op = "bookctl.newApp"

	path := opts.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log := logger.Setup(cfg.Env, logOut)

	cache, err := localcache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var remote client.Remote
	if !opts.offline {
		remote = client.NewRemoteClient(cfg.Client.BaseURL, cfg.Client.Timeout, cfg.Client.UserAgent)
	}

	h := client.NewHandler(
		log,
		remote,
		cache,
		client.NewPanel(),
		clock.NewRealClock(),
		client.TimingsFromConfig(cfg.Panel),
	)

	log.Debug("bookctl ready",
		slog.String("cache_driver", cfg.Cache.Driver),
		slog.String("base_url", cfg.Client.BaseURL),
		slog.Bool("offline", opts.offline),
	)

	return &app{
		cfg:     cfg,
		log:     log,
		cache:   cache,
		handler: h,
	}, nil
}

func (a *app) Close() error {
	a.handler.Panel().Close()

	if c, ok := a.cache.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"estoque/internal/app"
	"estoque/internal/app/server/api"
	"estoque/internal/config"
	"estoque/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("estoque-server", pflag.ExitOnError)
	configFile := flags.String("config", "", "путь к config.yaml")
	envFile := flags.String("env-file", "", "путь к .env")
	flags.String("addr", "", "адрес HTTP сервера")
	flags.String("storage", "", "хранилище: sqlite, postgres, redis, memory")
	flags.String("locale", "", "язык сообщений: pt или en")
	_ = flags.Parse(os.Args[1:])

	conf, err := config.Load(config.Options{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
		Flags:      flags,
		FlagKeys: map[string]string{
			"addr":    "server.address",
			"storage": "storage.driver",
			"locale":  "locale",
		},
	})
	if err != nil {
		return err
	}

	log := logger.New(conf.Env, logger.WithLevel(conf.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, conf, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("failed to close storage", logger.Err(err))
		}
	}()

	srv := &http.Server{
		Addr:              conf.Server.Address,
		Handler:           api.New(a),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "address", srv.Addr, "storage", conf.Storage.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

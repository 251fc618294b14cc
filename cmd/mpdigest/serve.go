package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2"
	klog "github.com/go-kratos/kratos/v2/log"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mpdigest/internal/hints"
	"github.com/alnah/go-mpdigest/internal/logger"
	"github.com/alnah/go-mpdigest/internal/server"
)

// ErrServe indicates the HTTP server failed to start or stopped abnormally.
var ErrServe = errors.New("server error")

// runServe runs the HTTP API until a signal arrives.
func runServe(args []string, env *Environment) int {
	flags, _, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}

	log := newLogger(cfg, flags.common, env, cfg.Log.Level)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(log.Debugf))

	conv, err := newConverter(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	srv, err := server.NewHTTPServer(cfg.Server, conv, log)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	ctx, stop := env.SignalContext(context.Background())
	defer stop()

	// Route kratos transport logs ("[HTTP] server listening on ...") into
	// the same sink as the application logs.
	kl := logger.NewKratosLogger(log)
	klog.SetLogger(kl)

	app := kratos.New(
		kratos.Name("mpdigest"),
		kratos.Version(Version),
		kratos.Logger(kl),
		kratos.Context(ctx),
		kratos.Server(srv),
	)

	log.WithField("addr", cfg.Server.Addr).Info("serving POST /convert")
	if err := app.Run(); err != nil {
		err = fmt.Errorf("%w: %v", ErrServe, err)
		fmt.Fprintf(env.Stderr, "%v%s\n", err, hints.ForListen(cfg.Server.Addr, err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

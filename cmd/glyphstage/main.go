// Command glyphstage runs a small coin-collecting demo scene in the terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/glyphstage/config"
	"github.com/lixenwraith/glyphstage/input"
	"github.com/lixenwraith/glyphstage/logging"
	"github.com/lixenwraith/glyphstage/stage"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "glyphstage: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("glyphstage", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	configPath := fs.StringP("config", "c", "", "YAML config file")
	duration := fs.Duration("duration", 0, "stop after this long, 0 runs until quit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer logger.Sync()

	keys := input.NewKeyState(nil, 0)
	kb, err := input.NewKeyboard(keys)
	if err != nil {
		// Scene still runs; quit with a signal or --duration
		logger.Warn("keyboard disabled", zap.Error(err))
		kb = nil
	} else {
		defer kb.Close()
	}

	st, err := stage.New(cfg, stage.WithLogger(logger), stage.WithInput(keys))
	if err != nil {
		return err
	}
	if _, err := buildScene(st, cfg); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(guarded(func() error {
		defer cancel()
		return st.Run()
	}))
	g.Go(guarded(func() error {
		<-gctx.Done()
		st.Stop()
		return nil
	}))
	if kb != nil {
		kb.SetHandler(func(ev input.Event) {
			if isQuit(ev) {
				st.Stop()
			}
		})
		g.Go(guarded(func() error { return kb.Run(gctx) }))
	}
	if *duration > 0 {
		timer := time.AfterFunc(*duration, st.Stop)
		defer timer.Stop()
	}

	err = g.Wait()
	logger.Info("exit", zap.Uint64("frames", st.Engine.FrameCount()), zap.Error(err))
	return err
}

func isQuit(ev input.Event) bool {
	switch ev.Key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune == 'q' && ev.Mod == 0
	}
	return false
}

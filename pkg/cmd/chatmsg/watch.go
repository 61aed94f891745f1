package chatmsg

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robinbraemer/event"
	"github.com/urfave/cli/v2"

	"go.minekube.com/chatmsg/pkg/config"
	"go.minekube.com/chatmsg/pkg/internal/reload"
	"go.minekube.com/chatmsg/pkg/preset"
)

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Render a preset again whenever the config file changes",
		ArgsUsage: "PRESET",
		Description: `Render a preset and render it again on every change of the --config file.
Invalid changes are logged and the last valid presets are kept.

	chatmsg --config presets.yml watch welcome`,
		Flags: []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			file := c.String("config")
			if file == "" {
				return cli.Exit("watch requires a --config file", 1)
			}
			name := c.Args().First()
			if name == "" {
				return cli.Exit("missing preset name", 1)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := watch(ctx, c, file, name); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

// watch renders the preset and re-renders it on config file changes until ctx is canceled.
func watch(ctx context.Context, c *cli.Context, file, name string) error {
	log := ctxLog(ctx)
	cfg, err := loadConfig(ctx, file)
	if err != nil {
		return err
	}
	store, err := preset.NewStore(cfg)
	if err != nil {
		return err
	}
	format := c.String("format")
	if err = renderPreset(c, store.Load(), name, format); err != nil {
		// The preset may be added by a later change.
		log.Info("Error rendering preset", "preset", name, "error", err)
	}

	mgr := event.New(event.WithLogger(log.WithName("event")))
	reload.Subscribe(mgr, func(e *reload.ConfigUpdateEvent[config.Config]) {
		if err := store.Update(e.Config); err != nil {
			log.Info("Keeping previous presets", "error", err)
			return
		}
		if err := renderPreset(c, store.Load(), name, format); err != nil {
			log.Info("Error rendering preset", "preset", name, "error", err)
		}
	})

	w := &reload.Watcher{
		Path: file,
		OnChange: func(ctx context.Context) error {
			cfg, err := loadConfig(ctx, file)
			if err != nil {
				return err
			}
			reload.FireConfigUpdate(mgr, cfg)
			return nil
		},
	}
	if err = w.Watch(ctx); err != nil {
		return err
	}
	log.Info("Watching config file for changes", "path", file)
	<-ctx.Done()
	return nil
}

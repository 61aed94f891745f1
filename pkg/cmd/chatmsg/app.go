// Package chatmsg is the command-line interface of chatmsg.
package chatmsg

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.minekube.com/chatmsg/pkg/config"
	"go.minekube.com/chatmsg/pkg/preset"
)

// Execute runs App with the process arguments and exits on error.
func Execute() {
	if err := App().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// App returns the chatmsg command-line application.
func App() *cli.App {
	app := cli.NewApp()
	app.Name = "chatmsg"
	app.Usage = "Compose and preview rich Minecraft chat messages."
	app.Description = `chatmsg builds chat messages from presets defined in a config file
and renders them to the terminal or as json for Minecraft clients.

Without --config the built-in presets are used:

	chatmsg config > presets.yml
	chatmsg --config presets.yml render welcome`
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "The presets config file, the built-in presets are used if empty",
			EnvVars: []string{"CHATMSG_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "Enable debug logging",
			EnvVars: []string{"CHATMSG_DEBUG"},
		},
	}
	app.Before = func(c *cli.Context) error {
		log, err := newLogger(c.Bool("debug"))
		if err != nil {
			return cli.Exit(fmt.Errorf("error creating logger: %w", err), 1)
		}
		c.Context = logr.NewContext(c.Context, log)
		return nil
	}
	app.Commands = []*cli.Command{
		renderCommand(),
		listCommand(),
		watchCommand(),
		execCommand(),
		configCommand(),
	}
	return app
}

func newLogger(debug bool) (logr.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(l), nil
}

// loadPresets loads the presets of the --config file or the built-in ones.
func loadPresets(c *cli.Context) (*preset.Registry, error) {
	cfg, err := loadConfig(c.Context, c.String("config"))
	if err != nil {
		return nil, err
	}
	return preset.New(cfg)
}

// loadConfig reads and validates the config file
// or returns the built-in config if file is empty.
func loadConfig(ctx context.Context, file string) (*config.Config, error) {
	log := ctxLog(ctx)

	cfg := &config.DefaultConfig
	if file != "" {
		v := viper.New()
		v.SetConfigFile(file)
		v.SetEnvPrefix("CHATMSG")
		v.AutomaticEnv() // read in environment variables that match
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		var err error
		cfg, err = config.LoadConfig(v)
		if err != nil {
			return nil, err
		}
		log.V(1).Info("Using config file", "file", v.ConfigFileUsed())
	}

	warns, err := config.Valid(cfg)
	logWarns(log, warns)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func logWarns(log logr.Logger, warns []error) {
	for _, w := range warns {
		log.Info("Config validation warning", "warn", w.Error())
	}
}

func ctxLog(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}

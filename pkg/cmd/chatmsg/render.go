package chatmsg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/chatmsg/internal/util/console"
	"go.minekube.com/chatmsg/pkg/message"
	"go.minekube.com/chatmsg/pkg/preset"
	"go.minekube.com/chatmsg/pkg/util/componentutil"
)

// Output formats of the render command.
const (
	formatAnsi       = "ansi"
	formatJSON       = "json"
	formatLegacyJSON = "json-legacy"
	formatLegacy     = "legacy"
	formatPlain      = "plain"
)

var formats = []string{formatAnsi, formatJSON, formatLegacyJSON, formatLegacy, formatPlain}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: " + strings.Join(formats, ", "),
		Value:   formatAnsi,
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a preset message",
		ArgsUsage: "PRESET",
		Description: `Render a preset message to stdout.

Available formats:
  - ansi (default): Colored terminal output
  - json: Chat component json of current Minecraft versions
  - json-legacy: Chat component json of Minecraft versions before 1.16
  - legacy: Legacy '&' color coded text
  - plain: Text without any styling`,
		Flags:     []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			name := c.Args().First()
			if name == "" {
				return cli.Exit("missing preset name", 1)
			}
			presets, err := loadPresets(c)
			if err != nil {
				return cli.Exit(err, 1)
			}

			if err = renderPreset(c, presets, name, c.String("format")); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

// renderPreset writes the named preset in format to the app's writer.
func renderPreset(c *cli.Context, presets *preset.Registry, name, format string) error {
	b, err := presets.Builder(name, nil)
	if errors.Is(err, preset.ErrNotFound) {
		if similar := presets.Similar(name); len(similar) != 0 {
			return fmt.Errorf("%w, did you mean %s?", err, strings.Join(similar, ", "))
		}
	}
	if err != nil {
		return err
	}
	segments, err := b.Build()
	if err != nil {
		return err
	}

	out, err := render(message.Join(segments), format)
	if err != nil {
		return err
	}
	ctxLog(c.Context).V(1).Info("Rendered preset", "preset", name, "segments", len(segments))
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func render(c component.Component, format string) (string, error) {
	switch format {
	case formatAnsi:
		return console.Ansi(c)
	case formatJSON:
		return componentutil.JSON(c)
	case formatLegacyJSON:
		return componentutil.LegacyJSON(c)
	case formatLegacy:
		return componentutil.Legacy(c, '&')
	case formatPlain:
		return componentutil.Plain(c)
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: %s)", format, strings.Join(formats, ", "))
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all preset names",
		Action: func(c *cli.Context) error {
			presets, err := loadPresets(c)
			if err != nil {
				return cli.Exit(err, 1)
			}
			for _, name := range presets.Names() {
				_, _ = fmt.Fprintln(c.App.Writer, name)
			}
			return nil
		},
	}
}

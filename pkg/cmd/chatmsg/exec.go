package chatmsg

import (
	"strings"

	"github.com/urfave/cli/v2"

	"go.minekube.com/chatmsg/internal/util/console"
	"go.minekube.com/chatmsg/pkg/command"
)

func execCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Execute a chat command as the console",
		ArgsUsage: "COMMAND...",
		Description: `Execute a chat command with all permissions and print its replies.

	chatmsg exec tellmsg welcome`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Print plain text replies",
			},
		},
		Action: func(c *cli.Context) error {
			cmdline := strings.TrimPrefix(strings.Join(c.Args().Slice(), " "), "/")
			if cmdline == "" {
				return cli.Exit("missing command", 1)
			}
			presets, err := loadPresets(c)
			if err != nil {
				return cli.Exit(err, 1)
			}

			mgr := new(command.Manager)
			mgr.Register(command.TellMsg(presets))

			src := &console.Source{Out: c.App.Writer, NoColor: c.Bool("no-color")}
			ctxLog(c.Context).V(1).Info("Executing command", "command", cmdline)
			if err = mgr.Do(c.Context, src, cmdline); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

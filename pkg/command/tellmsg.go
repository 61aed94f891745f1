package command

import (
	"errors"
	"fmt"

	"go.minekube.com/brigodier"
	"go.minekube.com/common/minecraft/color"

	"go.minekube.com/chatmsg/pkg/command/suggest"
	"go.minekube.com/chatmsg/pkg/message"
	"go.minekube.com/chatmsg/pkg/preset"
)

// TellMsgPermission is required to run the tellmsg command.
const TellMsgPermission = "chatmsg.command.tellmsg"

const maxSimilarPresets = 3

// TellMsg returns the `/tellmsg <preset>` command sending a preset message to its invoker.
// Without argument it lists all presets.
func TellMsg(presets *preset.Registry) brigodier.LiteralNodeBuilder {
	return brigodier.Literal("tellmsg").
		Requires(RequiresPermission(TellMsgPermission)).
		Executes(Command(func(c *Context) error {
			return listPresets(presets, c.Source)
		})).
		Then(brigodier.Argument("preset", brigodier.String).
			Suggests(SuggestFunc(func(
				c *Context,
				b *brigodier.SuggestionsBuilder,
			) *brigodier.Suggestions {
				return suggest.Similar(b, presets.Names()).Build()
			})).
			Executes(Command(func(c *Context) error {
				name := c.String("preset")
				err := presets.Send(name, message.RecipientSender(c.Source))
				if errors.Is(err, preset.ErrNotFound) {
					return unknownPreset(presets, c.Source, name)
				}
				return err
			})),
		)
}

func listPresets(presets *preset.Registry, src Source) error {
	names := presets.Names()
	b := message.New(message.RecipientSender(src)).
		Next(fmt.Sprintf("Available presets (%d):", len(names))).Color(color.Yellow)
	for i, name := range names {
		if i != 0 {
			b.Next(",").Color(color.Gray)
		}
		b.Next(" " + name).Color(color.Aqua).
			Click(message.RunCommand, "/tellmsg "+name).
			HoverText("Click to show " + name)
	}
	return b.Send()
}

func unknownPreset(presets *preset.Registry, src Source, name string) error {
	b := message.New(message.RecipientSender(src)).
		Next(fmt.Sprintf("Preset %q doesn't exist.", name)).Color(color.Red)
	similar := presets.Similar(name)
	if len(similar) > maxSimilarPresets {
		similar = similar[:maxSimilarPresets]
	}
	if len(similar) != 0 {
		b.Next(" Did you mean").Color(color.Gray)
		for i, s := range similar {
			if i != 0 {
				b.Next(",").Color(color.Gray)
			}
			b.Next(" " + s).Color(color.Yellow).
				Click(message.SuggestCommand, "/tellmsg "+s).
				Hover("Click to use ").Color(color.Gray).Next(s).Color(color.Aqua).Close()
		}
		b.Next("?").Color(color.Gray)
	}
	return b.Send()
}

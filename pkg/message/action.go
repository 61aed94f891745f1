package message

import (
	"fmt"

	"go.minekube.com/common/minecraft/component"
)

// ClickAction is the action performed when a player clicks a segment.
type ClickAction string

// Click actions supported by Minecraft clients.
const (
	OpenURL         ClickAction = "open_url"
	RunCommand      ClickAction = "run_command"
	SuggestCommand  ClickAction = "suggest_command"
	ChangePage      ClickAction = "change_page"
	CopyToClipboard ClickAction = "copy_to_clipboard"
)

// ClickActions lists all known click actions.
var ClickActions = []ClickAction{OpenURL, RunCommand, SuggestCommand, ChangePage, CopyToClipboard}

// Event returns the component click event performing a with value.
func (a ClickAction) Event(value string) (component.ClickEvent, error) {
	switch a {
	case OpenURL:
		return component.OpenUrl(value), nil
	case RunCommand:
		return component.RunCommand(value), nil
	case SuggestCommand:
		return component.SuggestCommand(value), nil
	case ChangePage:
		return component.ChangePage(value), nil
	case CopyToClipboard:
		return component.CopyToClipboard(value), nil
	default:
		return nil, fmt.Errorf("%w %q for click event", ErrUnknownAction, string(a))
	}
}

// HoverAction is the action performed when a player hovers a segment.
type HoverAction string

// ShowText shows a tooltip made of text segments.
// Item and entity tooltips carry structured values and are
// attached with Builder.HoverEvent instead.
const ShowText HoverAction = "show_text"

// Event returns the component hover event showing segments.
// Multiple segments are joined under an empty parent segment.
func (a HoverAction) Event(segments ...component.Component) (component.HoverEvent, error) {
	if a != ShowText {
		return nil, fmt.Errorf("%w %q for hover event", ErrUnknownAction, string(a))
	}
	return component.ShowText(Join(segments)), nil
}

// Join returns segments as a single component.
// A lone segment is returned as is.
func Join(segments []component.Component) component.Component {
	if len(segments) == 1 {
		return segments[0]
	}
	return &component.Text{Extra: segments}
}

func state(b bool) component.State {
	if b {
		return component.True
	}
	return component.False
}

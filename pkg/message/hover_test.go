package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"
)

func TestHoverBuilder(t *testing.T) {
	rec := new(recorder)
	err := New(rec).
		Next("server").Color(color.Green).
		Hover("Click to ").Italic(true).
		Next("connect").Color(color.Gold).Bold(true).
		NextLineText("lobby").Insertion("lobby").
		Close().
		Click(RunCommand, "/server lobby").
		Next(" and more").
		Send()
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)
	segments := rec.sent[0]
	require.Len(t, segments, 2)

	server := text(t, segments[0])
	require.Equal(t, "server", server.Content)
	require.Equal(t, color.Green, server.S.Color)
	require.Equal(t, component.RunCommand("/server lobby"), server.S.ClickEvent)
	require.Equal(t, component.ShowText(&component.Text{Extra: []component.Component{
		&component.Text{Content: "Click to ", S: component.Style{Italic: component.True}},
		&component.Text{Content: "connect", S: component.Style{Color: color.Gold, Bold: component.True}},
		&component.Text{Content: "\n"},
		&component.Text{Content: "lobby", S: component.Style{Insertion: "lobby"}},
	}}), server.S.HoverEvent)

	require.Equal(t, &component.Text{Content: " and more"}, segments[1])
}

func TestHoverBuilder_SameAsHoverText(t *testing.T) {
	nested, err := New(nil).Next("hi").Hover("tooltip").Close().Build()
	require.NoError(t, err)
	simple, err := New(nil).Next("hi").HoverText("tooltip").Build()
	require.NoError(t, err)
	require.Equal(t, simple, nested)
}

func TestHoverBuilder_HoverAction(t *testing.T) {
	segments, err := New(nil).Next("hi").HoverAction(ShowText, "tooltip").Close().Build()
	require.NoError(t, err)
	require.Equal(t, component.ShowText(&component.Text{Content: "tooltip"}), text(t, segments[0]).S.HoverEvent)

	b := New(nil).Next("hi").HoverAction("show_item", "diamond").Close()
	require.ErrorIs(t, b.Err(), ErrUnknownAction)
}

func TestHoverBuilder_ErrorPropagates(t *testing.T) {
	b := New(nil).Next("hi").
		Hover("tooltip").Click("teleport", "somewhere").Close().
		Next("ignored")
	require.ErrorIs(t, b.Err(), ErrUnknownAction)

	_, err := b.Build()
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestHoverBuilder_CloseEmpty(t *testing.T) {
	parent := New(nil).Next("hi")
	h := newHoverBuilder(parent, ShowText)
	require.Same(t, parent, h.Close())

	var stateErr *InvalidStateError
	require.True(t, errors.As(parent.Err(), &stateErr))
	require.Equal(t, "close hover", stateErr.Op)
}

func TestHoverBuilder_Independent(t *testing.T) {
	parent := New(nil).Next("parent")
	h := parent.Hover("child").Next("child 2")
	require.Len(t, h.committed, 1)
	require.Empty(t, parent.committed)
	require.Equal(t, "parent", parent.current.Content)
	require.Nil(t, parent.current.S.HoverEvent)

	require.Same(t, parent, h.Close())
	require.NotNil(t, parent.current.S.HoverEvent)
}

package preset

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/chatmsg/pkg/config"
	"go.minekube.com/chatmsg/pkg/message"
	"go.minekube.com/chatmsg/pkg/util/componentutil"
)

func boolPtr(b bool) *bool { return &b }

type recorder struct{ sent [][]component.Component }

func (r *recorder) Send(segments []component.Component) error {
	r.sent = append(r.sent, segments)
	return nil
}

func TestRegistry_Default(t *testing.T) {
	r, err := New(&config.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, []string{"rules", "welcome"}, r.Names())
	require.True(t, r.Has("WELCOME"))

	rec := new(recorder)
	require.NoError(t, r.Send("rules", rec))
	require.Len(t, rec.sent, 1)
	plain, err := componentutil.Plain(message.Join(rec.sent[0]))
	require.NoError(t, err)
	require.Equal(t, "[chatmsg] Rules\n1. Be nice\n2. Have fun\nJoin our discord (click)", plain)
}

func TestRegistry_Apply(t *testing.T) {
	r, err := New(&config.Config{Messages: map[string][]config.Segment{
		"test": {
			{Text: "a", Color: "gold", Bold: boolPtr(true), Italic: boolPtr(false), Insertion: "ins"},
			{Text: "b", Hover: "tip", Click: &config.Click{Action: "suggest_command", Value: "/b"}},
			{Newline: true, Text: "c", HoverSegments: []config.Segment{
				{Text: "h1", Color: "red"},
				{Newline: true, Text: "h2", Underlined: boolPtr(true)},
			}, Extra: []string{"&cred"}},
			{Text: "d", HoverSegments: []config.Segment{{Newline: true, Text: "h3"}}},
		},
	}})
	require.NoError(t, err)

	b := message.New(nil)
	require.NoError(t, r.Apply("test", b))
	segments, err := b.Build()
	require.NoError(t, err)
	require.Len(t, segments, 5)

	a := segments[0].(*component.Text)
	require.Equal(t, component.Style{
		Color:     color.Gold,
		Bold:      component.True,
		Italic:    component.False,
		Insertion: "ins",
	}, a.S)

	bseg := segments[1].(*component.Text)
	require.Equal(t, component.SuggestCommand("/b"), bseg.S.ClickEvent)
	require.Equal(t, component.ShowText(&component.Text{Content: "tip"}), bseg.S.HoverEvent)

	require.Equal(t, &component.Text{Content: "\n"}, segments[2])

	c := segments[3].(*component.Text)
	require.Equal(t, "c", c.Content)
	require.Len(t, c.Extra, 1)
	require.Equal(t, component.ShowText(&component.Text{Extra: []component.Component{
		&component.Text{Content: "h1", S: component.Style{Color: color.Red}},
		&component.Text{Content: "\n"},
		&component.Text{Content: "h2", S: component.Style{Underlined: component.True}},
	}}), c.S.HoverEvent)

	d := segments[4].(*component.Text)
	require.Equal(t, component.ShowText(&component.Text{Extra: []component.Component{
		&component.Text{Content: "\n"},
		&component.Text{Content: "h3"},
	}}), d.S.HoverEvent)
}

func TestRegistry_Builder(t *testing.T) {
	r, err := New(&config.Config{Messages: map[string][]config.Segment{
		"hello": {{Text: "Hello "}},
	}})
	require.NoError(t, err)

	rec := new(recorder)
	b, err := r.Builder("hello", rec)
	require.NoError(t, err)
	require.NoError(t, b.Next("Steve").Color(color.Aqua).Send())
	require.Len(t, rec.sent[0], 2)

	// Presets are not changed by extending a builder.
	require.NoError(t, r.Send("hello", rec))
	require.Len(t, rec.sent[1], 1)
}

func TestRegistry_PrefixNotShared(t *testing.T) {
	r, err := New(&config.Config{
		Prefix:   "&6[Server] ",
		Messages: map[string][]config.Segment{"hello": {{Text: "Hello"}}},
	})
	require.NoError(t, err)

	b, err := r.Builder("hello", nil)
	require.NoError(t, err)
	segments, err := b.Build()
	require.NoError(t, err)
	prefix := segments[0].(*component.Text).Extra[0].(*component.Text)
	prefix.Content = "changed"

	b, err = r.Builder("hello", nil)
	require.NoError(t, err)
	segments, err = b.Build()
	require.NoError(t, err)
	plain, err := componentutil.Plain(message.Join(segments))
	require.NoError(t, err)
	require.Equal(t, "[Server] Hello", plain)
}

func TestRegistry_NotFound(t *testing.T) {
	r, err := New(&config.DefaultConfig)
	require.NoError(t, err)
	err = r.Send("welcom", new(recorder))
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, "welcome", r.Similar("welcom")[0])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&config.Config{Messages: map[string][]config.Segment{
		"bad": {{Text: "x", Color: "pink"}},
	}})
	require.ErrorIs(t, err, config.ErrInvalid)
}

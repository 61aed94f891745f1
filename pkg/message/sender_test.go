package message

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"
)

type recipient struct{ got []component.Component }

func (r *recipient) SendMessage(msg component.Component) error {
	r.got = append(r.got, msg)
	return nil
}

func TestRecipientSender(t *testing.T) {
	r := new(recipient)
	err := New(RecipientSender(r)).
		Next("a").Color(color.Red).
		Next("b").
		Send()
	require.NoError(t, err)
	require.Equal(t, []component.Component{&component.Text{Extra: []component.Component{
		&component.Text{Content: "a", S: component.Style{Color: color.Red}},
		&component.Text{Content: "b"},
	}}}, r.got)

	// A single segment is sent as is.
	require.NoError(t, New(RecipientSender(r)).Next("c").Send())
	require.Equal(t, &component.Text{Content: "c"}, r.got[1])
}

func TestWithLogger(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	rec := new(recorder)
	require.NoError(t, New(WithLogger(rec, log)).Next("hello ").Next("world").Send())
	require.Len(t, rec.sent, 1)
	require.Len(t, lines, 1)
	require.True(t, strings.Contains(lines[0], `"text"="hello world"`), lines[0])

	sendErr := errors.New("boom")
	failing := SenderFunc(func([]component.Component) error { return sendErr })
	err := New(WithLogger(failing, log)).Next("x").Send()
	require.Same(t, sendErr, err)
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "boom")
}

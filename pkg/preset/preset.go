// Package preset compiles configured messages into message builders.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/chatmsg/pkg/command/suggest"
	"go.minekube.com/chatmsg/pkg/config"
	"go.minekube.com/chatmsg/pkg/message"
	"go.minekube.com/chatmsg/pkg/util/componentutil"
)

// ErrNotFound is returned for unknown preset names.
var ErrNotFound = errors.New("preset not found")

// Registry holds validated presets by name.
// It is safe for concurrent use.
type Registry struct {
	prefix   *component.Text
	messages map[string][]config.Segment
	names    []string
}

// New validates cfg and returns a Registry of its messages.
func New(cfg *config.Config) (*Registry, error) {
	if _, err := config.Valid(cfg); err != nil {
		return nil, err
	}
	r := &Registry{messages: make(map[string][]config.Segment, len(cfg.Messages))}
	for name, segments := range cfg.Messages {
		r.messages[strings.ToLower(name)] = segments
	}
	for name := range r.messages {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	if cfg.Prefix != "" {
		prefix, err := componentutil.ParseTextComponent(cfg.Prefix)
		if err != nil {
			return nil, fmt.Errorf("error parsing prefix: %w", err)
		}
		r.prefix = prefix
	}
	return r, nil
}

// Names returns the sorted preset names.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Has reports whether a preset with the name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.messages[strings.ToLower(name)]
	return ok
}

// Similar returns the preset names most similar to name, best first.
func (r *Registry) Similar(name string) []string {
	return suggest.SimilarNames(name, r.names, suggest.DefaultMinimumSimilarityScore)
}

// Apply appends the segments of the named preset to b.
func (r *Registry) Apply(name string, b *message.Builder) error {
	segments, ok := r.messages[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if r.prefix != nil {
		prefix, err := componentutil.CloneText(r.prefix)
		if err != nil {
			return err
		}
		b.Next("").ExtraComponents(prefix)
	}
	for _, seg := range segments {
		if err := apply(b, seg); err != nil {
			return fmt.Errorf("error building preset %q: %w", name, err)
		}
	}
	return b.Err()
}

// Builder returns a new Builder for sender with the named preset applied.
// The returned Builder can be extended before sending.
func (r *Registry) Builder(name string, sender message.Sender) (*message.Builder, error) {
	b := message.New(sender)
	if err := r.Apply(name, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Send builds the named preset and sends it with sender.
func (r *Registry) Send(name string, sender message.Sender) error {
	b, err := r.Builder(name, sender)
	if err != nil {
		return err
	}
	return b.Send()
}

// styler is implemented by message.Builder and message.HoverBuilder.
type styler[T any] interface {
	Next(text string) T
	NextLineText(text string) T
	Color(c color.Color) T
	Bold(bool) T
	Italic(bool) T
	Underlined(bool) T
	Strikethrough(bool) T
	Obfuscated(bool) T
	Insertion(string) T
	Click(action message.ClickAction, value string) T
	ExtraComponents(extra ...component.Component) T
}

func apply(b *message.Builder, seg config.Segment) error {
	if err := segment(b, seg); err != nil {
		return err
	}
	switch {
	case seg.Hover != "":
		b.HoverText(seg.Hover)
	case len(seg.HoverSegments) != 0:
		first := seg.HoverSegments[0]
		var h *message.HoverBuilder
		if first.Newline {
			h = b.Hover("\n").Next(first.Text)
		} else {
			h = b.Hover(first.Text)
		}
		if err := decorate(h, first); err != nil {
			return err
		}
		for _, hs := range seg.HoverSegments[1:] {
			if err := segment(h, hs); err != nil {
				return err
			}
		}
		h.Close()
	}
	return b.Err()
}

// segment starts a new segment on s and decorates it.
func segment[T styler[T]](s T, seg config.Segment) error {
	if seg.Newline {
		s.NextLineText(seg.Text)
	} else {
		s.Next(seg.Text)
	}
	return decorate(s, seg)
}

// decorate styles the open segment of s.
func decorate[T styler[T]](s T, seg config.Segment) error {
	if seg.Color != "" {
		c, ok := componentutil.ColorByName(seg.Color)
		if !ok {
			return fmt.Errorf("unknown color %q", seg.Color)
		}
		s.Color(c)
	}
	for _, d := range []struct {
		v   *bool
		set func(bool) T
	}{
		{seg.Bold, s.Bold},
		{seg.Italic, s.Italic},
		{seg.Underlined, s.Underlined},
		{seg.Strikethrough, s.Strikethrough},
		{seg.Obfuscated, s.Obfuscated},
	} {
		if d.v != nil {
			d.set(*d.v)
		}
	}
	if seg.Insertion != "" {
		s.Insertion(seg.Insertion)
	}
	if seg.Click != nil {
		s.Click(message.ClickAction(seg.Click.Action), seg.Click.Value)
	}
	for _, extra := range seg.Extra {
		t, err := componentutil.ParseTextComponent(extra)
		if err != nil {
			return fmt.Errorf("error parsing extra %q: %w", extra, err)
		}
		s.ExtraComponents(t)
	}
	return nil
}

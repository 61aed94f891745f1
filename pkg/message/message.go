// Package message builds chat messages made of segments with
// their own color, decorations and click/hover interactivity.
//
// A Builder keeps one open segment that chained calls modify.
// Next archives the open segment and starts a new one:
//
//	err := message.New(sender).
//		Next("Hello ").Bold(true).
//		Next("world").Color(color.Red).
//		Hover("Click me").Color(color.Gold).Close().
//		Click(message.RunCommand, "/spawn").
//		Send()
//
// Chained methods can't return errors. The first usage error, like
// styling before any Next call, is recorded and returned by
// Err, Build and Send. All calls after it are ignored.
package message

import (
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/chatmsg/pkg/util/componentutil"
)

// Builder builds a message for a single recipient.
//
// A Builder must not be used by multiple goroutines at once.
type Builder struct {
	segments[*Builder]
	sender Sender
}

// New returns a new empty Builder sending to sender.
func New(sender Sender) *Builder {
	b := &Builder{sender: sender}
	b.self = b
	return b
}

// HoverText shows text when hovering over the current segment.
func (b *Builder) HoverText(text string) *Builder {
	return b.HoverSegments(ShowText, &component.Text{Content: text})
}

// Hover opens a HoverBuilder composing the text shown when
// hovering over the current segment, starting with text.
// HoverBuilder.Close attaches it and returns b.
func (b *Builder) Hover(text string) *HoverBuilder {
	return b.HoverAction(ShowText, text)
}

// HoverAction is like Hover with an explicit action.
func (b *Builder) HoverAction(action HoverAction, text string) *HoverBuilder {
	h := newHoverBuilder(b, action)
	if !b.open("set hover") {
		return h
	}
	return h.Next(text)
}

// HoverSegments sets the action performed when hovering
// over the current segment with already built segments.
func (b *Builder) HoverSegments(action HoverAction, segments ...component.Component) *Builder {
	if !b.open("set hover") {
		return b
	}
	ev, err := action.Event(segments...)
	if err != nil {
		b.err = err
		return b
	}
	b.current.S.HoverEvent = ev
	return b
}

// HoverEvent sets a prebuilt hover event on the current segment.
func (b *Builder) HoverEvent(ev component.HoverEvent) *Builder {
	return b.style("set hover", func(st *component.Style) { st.HoverEvent = ev })
}

// Build returns the segments of the message in order.
func (b *Builder) Build() ([]component.Component, error) {
	return b.flatten("build")
}

// Send builds the message and passes it to the Sender.
// Errors of the Sender are returned unchanged.
func (b *Builder) Send() error {
	segments, err := b.Build()
	if err != nil {
		return err
	}
	if b.sender == nil {
		return ErrNoSender
	}
	return b.sender.Send(segments)
}

// Clone returns a new Builder with the same Sender and deep copies of all segments.
func (b *Builder) Clone() *Builder {
	c := New(b.sender)
	c.err = b.err
	if len(b.committed) != 0 {
		c.committed = make([]component.Component, 0, len(b.committed))
	}
	for _, seg := range b.committed {
		d, err := componentutil.Clone(seg)
		if err != nil {
			c.err = err
			return c
		}
		c.committed = append(c.committed, d)
	}
	if b.current != nil {
		d, err := componentutil.CloneText(b.current)
		if err != nil {
			c.err = err
			return c
		}
		c.current = d
	}
	return c
}

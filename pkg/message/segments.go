package message

import (
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"
)

// segments is the accumulator shared by Builder and HoverBuilder.
// T is the concrete builder type returned by the chained methods.
//
// The open segment is kept outside of committed and moved
// into it when the next segment is started.
type segments[T any] struct {
	self T

	committed []component.Component
	current   *component.Text
	err       error // first usage error, later calls are no-ops
}

// Next goes to the next text which can have a different style than the previous one.
func (s *segments[T]) Next(text string) T {
	if s.err != nil {
		return s.self
	}
	if s.current != nil {
		s.committed = append(s.committed, s.current)
	}
	s.current = &component.Text{Content: text}
	return s.self
}

// NextLine goes to the next line of the chat.
func (s *segments[T]) NextLine() T {
	return s.Next("\n")
}

// NextLineText goes to the next line of the chat and starts a new segment with text.
func (s *segments[T]) NextLineText(text string) T {
	s.NextLine()
	return s.Next(text)
}

// Color sets the color of the current segment.
func (s *segments[T]) Color(c color.Color) T {
	return s.style("set color", func(st *component.Style) { st.Color = c })
}

// Italic adds or removes italic on the current segment.
func (s *segments[T]) Italic(italic bool) T {
	return s.style("set italic", func(st *component.Style) { st.Italic = state(italic) })
}

// Bold adds or removes bold on the current segment.
func (s *segments[T]) Bold(bold bool) T {
	return s.style("set bold", func(st *component.Style) { st.Bold = state(bold) })
}

// Obfuscated adds or removes obfuscated on the current segment.
func (s *segments[T]) Obfuscated(obfuscated bool) T {
	return s.style("set obfuscated", func(st *component.Style) { st.Obfuscated = state(obfuscated) })
}

// Strikethrough adds or removes strikethrough on the current segment.
func (s *segments[T]) Strikethrough(strikethrough bool) T {
	return s.style("set strikethrough", func(st *component.Style) { st.Strikethrough = state(strikethrough) })
}

// Underlined adds or removes underline on the current segment.
func (s *segments[T]) Underlined(underlined bool) T {
	return s.style("set underline", func(st *component.Style) { st.Underlined = state(underlined) })
}

// Insertion sets the text inserted into the chat input
// when the current segment is shift-clicked.
func (s *segments[T]) Insertion(insertion string) T {
	return s.style("set insertion", func(st *component.Style) { st.Insertion = insertion })
}

// Click sets the action performed when clicking the current segment.
func (s *segments[T]) Click(action ClickAction, value string) T {
	if !s.open("set click") {
		return s.self
	}
	ev, err := action.Event(value)
	if err != nil {
		s.err = err
		return s.self
	}
	s.current.S.ClickEvent = ev
	return s.self
}

// ClickEvent sets a prebuilt click event on the current segment.
func (s *segments[T]) ClickEvent(ev component.ClickEvent) T {
	return s.style("set click", func(st *component.Style) { st.ClickEvent = ev })
}

// Extra adds a text with the same style and events as the current segment.
func (s *segments[T]) Extra(text string) T {
	return s.extra(&component.Text{Content: text})
}

// ExtraComponents adds components with the same style and events as the current segment.
func (s *segments[T]) ExtraComponents(extra ...component.Component) T {
	return s.extra(extra...)
}

func (s *segments[T]) extra(extra ...component.Component) T {
	if s.open("add extra") {
		s.current.Extra = append(s.current.Extra, extra...)
	}
	return s.self
}

// Err returns the first error recorded by a chained call.
func (s *segments[T]) Err() error { return s.err }

func (s *segments[T]) style(op string, fn func(*component.Style)) T {
	if s.open(op) {
		fn(&s.current.S)
	}
	return s.self
}

// open reports whether the current segment can be modified by op
// and records an InvalidStateError if there is none.
func (s *segments[T]) open(op string) bool {
	if s.err != nil {
		return false
	}
	if s.current == nil {
		s.err = &InvalidStateError{Op: op}
		return false
	}
	return true
}

// flatten returns the committed segments followed by the open one.
func (s *segments[T]) flatten(op string) ([]component.Component, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.committed) == 0 && s.current == nil {
		return nil, &InvalidStateError{Op: op}
	}
	out := make([]component.Component, 0, len(s.committed)+1)
	out = append(out, s.committed...)
	if s.current != nil {
		out = append(out, s.current)
	}
	return out, nil
}

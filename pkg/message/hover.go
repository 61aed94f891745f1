package message

// HoverBuilder composes the segments shown when hovering
// over the current segment of its parent Builder.
//
// It has the same segment methods as Builder, Close hands control back to the parent.
type HoverBuilder struct {
	segments[*HoverBuilder]
	parent *Builder
	action HoverAction
}

func newHoverBuilder(parent *Builder, action HoverAction) *HoverBuilder {
	h := &HoverBuilder{parent: parent, action: action}
	h.self = h
	return h
}

// Close attaches the hover segments to the current segment of the
// parent Builder and returns the parent to continue chaining.
//
// An error recorded by the HoverBuilder is recorded on the parent.
func (h *HoverBuilder) Close() *Builder {
	if h.parent.err != nil {
		return h.parent
	}
	segments, err := h.flatten("close hover")
	if err != nil {
		h.parent.err = err
		return h.parent
	}
	return h.parent.HoverSegments(h.action, segments...)
}

package componentutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/component/codec/legacy"

	"go.minekube.com/chatmsg/pkg/util"
)

// ParseTextComponent parses s as json if it starts with '{'
// and as legacy formatted text using '&' codes otherwise.
func ParseTextComponent(s string) (t *component.Text, err error) {
	var c component.Component
	if strings.HasPrefix(s, "{") {
		c, err = util.LatestJsonCodec().Unmarshal([]byte(s))
	} else {
		c, err = util.LegacyCodec(legacy.AmpersandChar).Unmarshal([]byte(s))
	}
	if err != nil {
		return nil, err
	}
	t, ok := c.(*component.Text)
	if !ok {
		return nil, errors.New("invalid text component")
	}
	return t, nil
}

// Clone returns a deep copy of c sharing no mutable state with it.
func Clone(c component.Component) (component.Component, error) {
	switch t := c.(type) {
	case nil:
		return nil, nil
	case *component.Text:
		return CloneText(t)
	}
	// Other component kinds are copied through the json codec.
	b := new(bytes.Buffer)
	if err := util.LatestJsonCodec().Marshal(b, c); err != nil {
		return nil, fmt.Errorf("error encoding %T for copy: %w", c, err)
	}
	d, err := util.LatestJsonCodec().Unmarshal(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error decoding %T copy: %w", c, err)
	}
	return d, nil
}

// CloneText returns a deep copy of t including its style and extra components.
func CloneText(t *component.Text) (*component.Text, error) {
	if t == nil {
		return nil, nil
	}
	d := &component.Text{Content: t.Content, S: t.S}
	// Show text hovers hold a mutable component, item and entity hovers are shared.
	if t.S.HoverEvent != nil {
		if v, ok := t.S.HoverEvent.Value().(component.Component); ok {
			hover, err := Clone(v)
			if err != nil {
				return nil, err
			}
			d.S.HoverEvent = component.ShowText(hover)
		}
	}
	if t.Extra != nil {
		d.Extra = make([]component.Component, 0, len(t.Extra))
		for _, e := range t.Extra {
			c, err := Clone(e)
			if err != nil {
				return nil, err
			}
			d.Extra = append(d.Extra, c)
		}
	}
	return d, nil
}

// JSON returns c encoded for 1.16+ clients.
func JSON(c component.Component) (string, error) {
	b := new(strings.Builder)
	err := util.LatestJsonCodec().Marshal(b, c)
	return b.String(), err
}

// LegacyJSON returns c encoded for pre-1.16 clients.
func LegacyJSON(c component.Component) (string, error) {
	b := new(strings.Builder)
	err := util.DefaultJsonCodec().Marshal(b, c)
	return b.String(), err
}

// Legacy returns c as legacy formatted text using char as formatting code prefix.
func Legacy(c component.Component, char rune) (string, error) {
	b := new(strings.Builder)
	err := util.LegacyCodec(char).Marshal(b, c)
	return b.String(), err
}

// Plain returns the text of c without any styling.
// A component.Translation is formatted as "{key}".
func Plain(c component.Component) (string, error) {
	b := new(strings.Builder)
	err := marshalPlain(c, b)
	return b.String(), err
}

func marshalPlain(c component.Component, b *strings.Builder) error {
	switch t := c.(type) {
	case *component.Translation:
		b.WriteRune('{')
		b.WriteString(t.Key)
		b.WriteRune('}')
		for _, with := range t.With {
			if err := marshalPlain(with, b); err != nil {
				return err
			}
		}
		return nil
	default:
		return util.PlainCodec().Marshal(b, c)
	}
}

package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"go.minekube.com/chatmsg/pkg/message"
	"go.minekube.com/chatmsg/pkg/util/componentutil"
	"go.minekube.com/chatmsg/pkg/util/validation"
)

// DefaultConfig is a default Config.
var DefaultConfig = Config{
	Prefix: "&8[&6chatmsg&8] ",
	Messages: map[string][]Segment{
		"welcome": {
			{Text: "Welcome ", Color: "gold", Bold: boolPtr(true)},
			{
				Text:  "to the server!",
				Color: "yellow",
				Hover: "Click to read the rules",
				Click: &Click{Action: string(message.RunCommand), Value: "/rules"},
			},
		},
		"rules": {
			{Text: "Rules", Color: "red", Underlined: boolPtr(true)},
			{Newline: true, Text: "1. Be nice", Color: "gray"},
			{Newline: true, Text: "2. Have fun", Color: "gray",
				HoverSegments: []Segment{
					{Text: "Seriously, ", Italic: boolPtr(true)},
					{Text: "have fun", Color: "green"},
				}},
			{Newline: true, Text: "Join our discord", Color: "aqua",
				Click: &Click{Action: string(message.OpenURL), Value: "https://minekube.com/discord"},
				Extra: []string{"&7 (click)"}},
		},
	},
}

func boolPtr(b bool) *bool { return &b }

// Config is the configuration of chat message presets.
type Config struct {
	// Prefix is prepended to every preset message.
	// It is parsed as legacy '&' formatted text or json.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// Messages are the presets by name.
	// Names are case-insensitive.
	Messages map[string][]Segment `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Segment is a run of text with its own style and events.
type Segment struct {
	// Newline starts the segment on a new line.
	Newline bool   `json:"newline,omitempty" yaml:"newline,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	// Color is a named chat color like "gold" or "dark_aqua".
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// Unset decorations are inherited.
	Bold          *bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        *bool `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underlined    *bool `json:"underlined,omitempty" yaml:"underlined,omitempty"`
	Strikethrough *bool `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Obfuscated    *bool `json:"obfuscated,omitempty" yaml:"obfuscated,omitempty"`

	Insertion string `json:"insertion,omitempty" yaml:"insertion,omitempty"`
	Click     *Click `json:"click,omitempty" yaml:"click,omitempty"`
	// Hover is a plain tooltip text.
	Hover string `json:"hover,omitempty" yaml:"hover,omitempty"`
	// HoverSegments is a styled tooltip, mutually exclusive with Hover.
	HoverSegments []Segment `json:"hoverSegments,omitempty" yaml:"hoverSegments,omitempty"`
	// Extra are legacy '&' formatted or json texts
	// appended to the segment inheriting its style.
	Extra []string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Click is a click event of a segment.
type Click struct {
	Action string `json:"action" yaml:"action"`
	Value  string `json:"value" yaml:"value"`
}

// Names returns the sorted preset names.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Messages))
	for name := range c.Messages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate validates the Config.
func (c *Config) Validate() (warns []error, errs []error) {
	e := func(m string, args ...any) { errs = append(errs, fmt.Errorf(m, args...)) }
	w := func(m string, args ...any) { warns = append(warns, fmt.Errorf(m, args...)) }

	if c == nil {
		e("config must not be nil")
		return
	}
	if c.Prefix != "" {
		if _, err := componentutil.ParseTextComponent(c.Prefix); err != nil {
			e("Invalid prefix %q: %v", c.Prefix, err)
		}
	}
	if len(c.Messages) == 0 {
		w("No messages configured")
	}
	for _, name := range c.Names() {
		if !validation.ValidName(name) {
			e("Invalid message name %q: %s", name, validation.QualifiedNameErrMsg)
		}
		segments := c.Messages[name]
		if len(segments) == 0 {
			e("Message %q has no segments", name)
		}
		for i, seg := range segments {
			path := fmt.Sprintf("%s[%d]", name, i)
			seg.validate(path, e, w)
			if seg.Hover != "" && len(seg.HoverSegments) != 0 {
				e("%s: hover and hoverSegments are mutually exclusive", path)
			}
			for j, h := range seg.HoverSegments {
				hpath := fmt.Sprintf("%s.hoverSegments[%d]", path, j)
				h.validate(hpath, e, w)
				if h.Hover != "" || len(h.HoverSegments) != 0 {
					w("%s: hover inside of a hover is ignored", hpath)
				}
			}
		}
	}
	return
}

type reportFn func(m string, args ...any)

func (s *Segment) validate(path string, e, w reportFn) {
	if s.Text == "" && !s.Newline && len(s.Extra) == 0 {
		w("%s: segment is empty", path)
	}
	if s.Color != "" {
		if _, ok := componentutil.ColorByName(s.Color); !ok {
			e("%s: unknown color %q, must be one of %v", path, s.Color, componentutil.ColorNames())
		}
	}
	if s.Click != nil {
		action := message.ClickAction(s.Click.Action)
		if _, err := action.Event(s.Click.Value); err != nil {
			e("%s: %v, must be one of %v", path, err, message.ClickActions)
		} else if s.Click.Value == "" {
			w("%s: click %s has an empty value", path, action)
		} else if action == message.OpenURL && !validation.ValidURL(s.Click.Value) {
			e("%s: click open_url value %q is not a http(s) url", path, s.Click.Value)
		}
	}
	for i, extra := range s.Extra {
		if _, err := componentutil.ParseTextComponent(extra); err != nil {
			e("%s.extra[%d]: invalid text %q: %v", path, i, extra, err)
		}
	}
}

// LoadConfig reads the config file set on v and decodes it.
// The returned Config is not validated.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return Decode(v)
}

// Decode decodes the settings read by v into a new Config.
func Decode(v *viper.Viper) (*Config, error) {
	// A fresh Config makes sure no maps are shared between loads.
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// ErrInvalid is returned by Valid for a Config with validation errors.
var ErrInvalid = errors.New("invalid config")

// Valid validates c and returns its warnings
// and an error joining all validation errors.
func Valid(c *Config) (warns []error, err error) {
	warns, errs := c.Validate()
	if len(errs) != 0 {
		return warns, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return warns, nil
}

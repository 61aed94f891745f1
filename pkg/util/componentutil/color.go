package componentutil

import (
	"sort"
	"strings"

	"go.minekube.com/common/minecraft/color"
)

var namedColors = map[string]color.Color{
	"black":        color.Black,
	"dark_blue":    color.DarkBlue,
	"dark_green":   color.DarkGreen,
	"dark_aqua":    color.DarkAqua,
	"dark_red":     color.DarkRed,
	"dark_purple":  color.DarkPurple,
	"gold":         color.Gold,
	"gray":         color.Gray,
	"dark_gray":    color.DarkGray,
	"blue":         color.Blue,
	"green":        color.Green,
	"aqua":         color.Aqua,
	"red":          color.Red,
	"light_purple": color.LightPurple,
	"yellow":       color.Yellow,
	"white":        color.White,
}

// ColorByName returns the named chat color, e.g. "dark_aqua".
// Names are case-insensitive.
func ColorByName(name string) (color.Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

// ColorNames returns the sorted names of all chat colors.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

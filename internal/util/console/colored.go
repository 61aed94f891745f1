package console

import (
	"strings"

	"github.com/gookit/color"
	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/component/codec/legacy"

	"go.minekube.com/chatmsg/pkg/util/componentutil"
)

// Ansi renders c with ANSI escape codes for terminals.
func Ansi(c component.Component) (string, error) {
	s, err := componentutil.Legacy(c, legacy.DefaultChar)
	if err != nil {
		return "", err
	}
	return AnsiFromLegacy(s), nil
}

// AnsiFromLegacy converts legacy formatting codes in s to ANSI escape codes.
func AnsiFromLegacy(s string) string {
	b := new(strings.Builder)
	var x bool
	c := func(s string) string { return s }
	for _, r := range s {
		if r == legacy.DefaultChar && !x {
			x = true
			continue
		}
		if x {
			x = false
			if r == 'r' {
				c = func(s string) string { return s }
				continue
			}
			wrap := c
			conv := convert(r)
			c = func(s string) string { return wrap(conv.Sprint(s)) }
			continue
		}
		b.WriteString(c(string(r)))
	}
	return b.String()
}

func convert(r rune) color.Color {
	switch r {
	case 'a':
		return color.LightGreen
	case 'b':
		return color.LightCyan
	case 'c':
		return color.LightRed
	case 'd':
		return color.LightMagenta
	case 'e':
		return color.LightYellow
	case 'f':
		return color.LightWhite
	case 'k':
		return color.OpConcealed
	case 'l':
		return color.OpBold
	case 'm':
		return color.OpStrikethrough
	case 'n':
		return color.OpUnderscore
	case 'o':
		return color.OpItalic
	case '0':
		return color.Black
	case '1':
		return color.Blue
	case '2':
		return color.Green
	case '3':
		return color.Cyan
	case '4':
		return color.Red
	case '5':
		return color.Magenta
	case '6':
		return color.Yellow
	case '7':
		return color.White
	case '8':
		return color.Gray
	case '9':
		return color.LightBlue
	default:
		return color.OpReset
	}
}

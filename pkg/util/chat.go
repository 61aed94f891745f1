package util

import (
	"go.minekube.com/common/minecraft/component/codec"
	"go.minekube.com/common/minecraft/component/codec/legacy"
)

// LatestJsonCodec returns the json codec for 1.16+ clients.
func LatestJsonCodec() codec.Codec {
	return jsonCodec_1_16
}

// DefaultJsonCodec returns a legacy supportive codec.
func DefaultJsonCodec() codec.Codec {
	return defaultJsonCodec
}

// LegacyCodec returns the legacy codec using char as formatting code prefix.
// A zero char uses legacy.DefaultChar.
func LegacyCodec(char rune) *legacy.Legacy {
	if char == 0 || char == legacy.DefaultChar {
		return sectionCodec
	}
	if char == legacy.AmpersandChar {
		return ampersandCodec
	}
	return &legacy.Legacy{Char: char}
}

// PlainCodec returns the codec dropping all styling.
func PlainCodec() *codec.Plain {
	return plainCodec
}

var (
	// Json component codec for pre-1.16 clients
	defaultJsonCodec = &codec.Json{}
	// Json component codec for 1.16+ clients
	jsonCodec_1_16 = &codec.Json{
		NoDownsampleColor: true,
		NoLegacyHover:     true,
	}

	sectionCodec   = &legacy.Legacy{}
	ampersandCodec = &legacy.Legacy{Char: legacy.AmpersandChar}
	plainCodec     = &codec.Plain{}
)

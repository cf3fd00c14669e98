package engine

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
	"DarkGreen": rl.DarkGreen,
	"DarkBlue":  rl.DarkBlue,
}

// ParseColor accepts a named colour or #rrggbb / #rrggbbaa.
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		var r, g, b uint8
		a := uint8(255)
		switch len(s) {
		case 7:
			if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
				return rl.NewColor(r, g, b, a), nil
			}
		case 9:
			if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err == nil {
				return rl.NewColor(r, g, b, a), nil
			}
		}
	}
	return rl.Color{}, fmt.Errorf("unknown color %q", s)
}

// PropColor reads a colour prop, falling back when absent. A present but
// unparseable value is an error.
func PropColor(props map[string]any, key string, fallback rl.Color) (rl.Color, error) {
	s, ok := props[key].(string)
	if !ok {
		return fallback, nil
	}
	return ParseColor(s)
}

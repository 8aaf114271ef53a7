package colordash

import "github.com/vovakirdan/colordash/internal/core"

// PaletteColor is one of the fixed dot/gate colors.
type PaletteColor int

const (
	ColorCoral PaletteColor = iota
	ColorTeal
	ColorSky
	ColorSalmon
)

// Palette lists the selectable colors in button order. The first entry is the default.
var Palette = [...]PaletteColor{ColorCoral, ColorTeal, ColorSky, ColorSalmon}

// String returns the color name.
func (c PaletteColor) String() string {
	switch c {
	case ColorCoral:
		return "coral"
	case ColorTeal:
		return "teal"
	case ColorSky:
		return "sky"
	case ColorSalmon:
		return "salmon"
	default:
		return "?"
	}
}

// Hex returns the color as a #RRGGBB string.
func (c PaletteColor) Hex() string {
	switch c {
	case ColorCoral:
		return "#FF6B6B"
	case ColorTeal:
		return "#4ECDC4"
	case ColorSky:
		return "#45B7D1"
	case ColorSalmon:
		return "#FFA07A"
	default:
		return "#FFFFFF"
	}
}

// ScreenColor maps the palette entry to a screen cell color.
func (c PaletteColor) ScreenColor() core.Color {
	switch c {
	case ColorCoral:
		return core.ColorCoral
	case ColorTeal:
		return core.ColorTeal
	case ColorSky:
		return core.ColorSky
	case ColorSalmon:
		return core.ColorSalmon
	default:
		return core.ColorDefault
	}
}

// PowerUpType identifies a power-up effect.
type PowerUpType int

const (
	PowerUpNone PowerUpType = iota
	PowerUpShield
	PowerUpSlowdown
	PowerUpMultiplier
)

// PowerUpTypes lists the spawnable power-up types.
var PowerUpTypes = [...]PowerUpType{PowerUpShield, PowerUpSlowdown, PowerUpMultiplier}

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpNone:
		return "none"
	case PowerUpShield:
		return "shield"
	case PowerUpSlowdown:
		return "slowdown"
	case PowerUpMultiplier:
		return "multiplier"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up type.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpShield:
		return 'S'
	case PowerUpSlowdown:
		return 'Z'
	case PowerUpMultiplier:
		return 'x'
	default:
		return '?'
	}
}

// Gate is a colored obstacle moving toward the dot.
type Gate struct {
	ID    int
	Color PaletteColor
	X     int // Left edge in field pixels
}

// PowerUp is a collectible moving toward the dot.
type PowerUp struct {
	ID   int
	Type PowerUpType
	X    int // Left edge in field pixels
}

package domain

type Color int

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// ParseColor is the inverse of String. Unknown values map to NoColor.
func ParseColor(s string) Color {
	switch s {
	case "white", "w", "W":
		return White
	case "black", "b", "B":
		return Black
	default:
		return NoColor
	}
}

package pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// ParseHex parses "#RRGGBB" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// MustHex is like ParseHex but panics on malformed input. Intended for
// package-level theme literals.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// TextStyle describes a run of paragraph text.
type TextStyle struct {
	FontStyle   string // "", "B", "I" or "BI"
	Size        float64
	LineHeight  float64
	Color       Color
	SpaceBefore float64
	SpaceAfter  float64
}

// TableStyle describes the two-column key/value tables.
type TableStyle struct {
	LabelWidth    float64
	ValueWidth    float64
	FontSize      float64
	LineHeight    float64
	PaddingTop    float64
	PaddingBottom float64
	TextColor     Color
	LabelFill     Color
	GridColor     Color
	GridWidth     float64
}

// BorderStyle describes the decorative frame drawn on every page.
type BorderStyle struct {
	Inset float64
	Width float64
	Color Color
}

// Theme is the static visual configuration of a service agreement. All
// lengths are in points.
type Theme struct {
	PageSize       string
	FontFamily     string
	Margin         float64
	CellMargin     float64
	SectionSpacing float64

	Title   TextStyle
	Heading TextStyle
	Body    TextStyle
	Table   TableStyle
	Border  BorderStyle
}

// Palette of the service agreement layout.
var (
	ColorTitle      = MustHex("#1B4F72")
	ColorHeading    = MustHex("#2E86C1")
	ColorBody       = MustHex("#2C3E50")
	ColorLabelShade = MustHex("#F8F9FA")
	ColorGrid       = MustHex("#808080")
)

// DefaultTheme returns the service agreement look: A4, Helvetica, 30pt
// margins, a 2pt dark blue frame inset 20pt from the page edge.
func DefaultTheme() Theme {
	return Theme{
		PageSize:       "A4",
		FontFamily:     "Helvetica",
		Margin:         30,
		CellMargin:     6,
		SectionSpacing: 20,
		Title: TextStyle{
			FontStyle:  "B",
			Size:       20,
			LineHeight: 24,
			Color:      ColorTitle,
			SpaceAfter: 25,
		},
		Heading: TextStyle{
			FontStyle:  "B",
			Size:       12,
			LineHeight: 18,
			Color:      ColorHeading,
			SpaceAfter: 15,
		},
		Body: TextStyle{
			Size:       10,
			LineHeight: 12,
			Color:      ColorBody,
			SpaceAfter: 10,
		},
		Table: TableStyle{
			LabelWidth:    144,
			ValueWidth:    288,
			FontSize:      10,
			LineHeight:    12,
			PaddingTop:    3,
			PaddingBottom: 12,
			TextColor:     ColorBody,
			LabelFill:     ColorLabelShade,
			GridColor:     ColorGrid,
			GridWidth:     0.25,
		},
		Border: BorderStyle{
			Inset: 20,
			Width: 2,
			Color: ColorTitle,
		},
	}
}

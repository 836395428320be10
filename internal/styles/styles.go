// Package styles holds the character-style register a pane's emulator
// maintains between printed glyphs, and the SGR diffing used to re-emit it
// with minimal escape sequences during render.
package styles

import (
	"fmt"
	"strings"
)

// NamedColor is one of the eight standard ANSI colours (CSI 30-37 / 40-47).
type NamedColor int

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// AnsiKind tags which form an AnsiCode takes.
type AnsiKind int

const (
	// AnsiReset marks an attribute as explicitly reset to terminal default.
	AnsiReset AnsiKind = iota
	// AnsiNamed is one of the eight standard colours.
	AnsiNamed
	// AnsiIndexed carries up to two numeric tail parameters, covering both
	// CSI 38/48;5;N (256-colour) and CSI 38/48;2;R;G;B (truecolour) since
	// both are "a subcommand byte plus a parameter tail" to this layer.
	AnsiIndexed
)

// AnsiCode is the tagged union CSI `m` colour/attribute parameters resolve
// to: Reset, one of the eight named colours, or an indexed/RGB tail.
type AnsiCode struct {
	Kind  AnsiKind
	Named NamedColor
	P1    *int64
	P2    *int64
}

func Reset() AnsiCode                { return AnsiCode{Kind: AnsiReset} }
func Named(c NamedColor) AnsiCode     { return AnsiCode{Kind: AnsiNamed, Named: c} }
func Indexed(p1, p2 *int64) AnsiCode  { return AnsiCode{Kind: AnsiIndexed, P1: p1, P2: p2} }

// Int64Ptr is a helper for building AnsiIndexed tail parameters from CSI
// dispatch code, where "this parameter was present" must survive as a typed
// *int64 rather than collapsing into a sentinel value.
func Int64Ptr(v int64) *int64 { return &v }

// sgrFor renders the CSI parameter substring for fg (base 3) or bg (base 4).
func (a AnsiCode) sgrFor(fg bool) string {
	switch a.Kind {
	case AnsiReset:
		if fg {
			return "39"
		}
		return "49"
	case AnsiNamed:
		base := 30
		if !fg {
			base = 40
		}
		return fmt.Sprintf("%d", base+int(a.Named))
	case AnsiIndexed:
		lead := "38"
		if !fg {
			lead = "48"
		}
		var parts []string
		parts = append(parts, lead)
		if a.P1 != nil {
			parts = append(parts, fmt.Sprintf("%d", *a.P1))
		}
		if a.P2 != nil {
			parts = append(parts, fmt.Sprintf("%d", *a.P2))
		}
		return strings.Join(parts, ";")
	}
	return ""
}

// attrSgr renders the CSI parameter substring for a boolean-looking attribute
// (bold, dim, ...): the attribute's own fixed "on" code, plus any trailing
// (param1, param2) tail the AnsiIndexed variant carries.
func (a AnsiCode) attrSgr(base string) string {
	parts := []string{base}
	if a.P1 != nil {
		parts = append(parts, fmt.Sprintf("%d", *a.P1))
	}
	if a.P2 != nil {
		parts = append(parts, fmt.Sprintf("%d", *a.P2))
	}
	return strings.Join(parts, ";")
}

// Styles is the full set of character attributes tracked between a Pane's
// pending register and the styled characters stored in scrollback. Every
// attribute is an `Option<AnsiCode>` (nil for "unset"), matching the source's
// Styles type exactly: the nine boolean-looking attributes below carry their
// SGR code's trailing (param1, param2) tail in the same AnsiIndexed shape
// already used for 256-colour/RGB foreground and background.
type Styles struct {
	Foreground *AnsiCode
	Background *AnsiCode

	Bold      *AnsiCode
	Dim       *AnsiCode
	Italic    *AnsiCode
	Underline *AnsiCode
	BlinkSlow *AnsiCode
	BlinkFast *AnsiCode
	Reverse   *AnsiCode
	Hidden    *AnsiCode
	Strike    *AnsiCode
}

// IsDefault reports whether no attribute differs from the terminal default.
func (s Styles) IsDefault() bool {
	return s.Foreground == nil && s.Background == nil &&
		s.Bold == nil && s.Dim == nil && s.Italic == nil && s.Underline == nil &&
		s.BlinkSlow == nil && s.BlinkFast == nil && s.Reverse == nil && s.Hidden == nil && s.Strike == nil
}

func ansiEq(a, b *AnsiCode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Named != b.Named {
		return false
	}
	p64eq := func(x, y *int64) bool {
		if x == nil || y == nil {
			return x == y
		}
		return *x == *y
	}
	return p64eq(a.P1, b.P1) && p64eq(a.P2, b.P2)
}

// Equal reports whether two style sets would render identically.
func (s Styles) Equal(o Styles) bool {
	return ansiEq(s.Foreground, o.Foreground) && ansiEq(s.Background, o.Background) &&
		ansiEq(s.Bold, o.Bold) && ansiEq(s.Dim, o.Dim) && ansiEq(s.Italic, o.Italic) &&
		ansiEq(s.Underline, o.Underline) && ansiEq(s.BlinkSlow, o.BlinkSlow) &&
		ansiEq(s.BlinkFast, o.BlinkFast) && ansiEq(s.Reverse, o.Reverse) &&
		ansiEq(s.Hidden, o.Hidden) && ansiEq(s.Strike, o.Strike)
}

// UpdateAndReturnDiff returns the minimal SGR escape sequence that transforms
// the receiver (the renderer's current baseline) into next, updating the
// receiver to next in the process. Returns ("", false) when styles are
// already identical, so the caller emits nothing.
func (s *Styles) UpdateAndReturnDiff(next Styles) (string, bool) {
	if s.Equal(next) {
		return "", false
	}

	var codes []string
	if next.IsDefault() {
		codes = append(codes, "0")
	} else {
		if !ansiEq(s.Foreground, next.Foreground) {
			if next.Foreground == nil {
				codes = append(codes, "39")
			} else {
				codes = append(codes, next.Foreground.sgrFor(true))
			}
		}
		if !ansiEq(s.Background, next.Background) {
			if next.Background == nil {
				codes = append(codes, "49")
			} else {
				codes = append(codes, next.Background.sgrFor(false))
			}
		}
		addAttr := func(was, is *AnsiCode, on, off string) {
			if ansiEq(was, is) {
				return
			}
			if is == nil {
				codes = append(codes, off)
			} else {
				codes = append(codes, is.attrSgr(on))
			}
		}
		addAttr(s.Bold, next.Bold, "1", "22")
		addAttr(s.Dim, next.Dim, "2", "22")
		addAttr(s.Italic, next.Italic, "3", "23")
		addAttr(s.Underline, next.Underline, "4", "24")
		addAttr(s.BlinkSlow, next.BlinkSlow, "5", "25")
		addAttr(s.BlinkFast, next.BlinkFast, "6", "25")
		addAttr(s.Reverse, next.Reverse, "7", "27")
		addAttr(s.Hidden, next.Hidden, "8", "28")
		addAttr(s.Strike, next.Strike, "9", "29")
	}

	*s = next
	if len(codes) == 0 {
		return "", false
	}
	return "\x1b[" + strings.Join(codes, ";") + "m", true
}

// Clear drops all tracked attributes, the effect of reset_all_ansi_codes on
// a newline: subsequent glyphs carry no style until a new SGR arrives.
func (s *Styles) Clear() { *s = Styles{} }

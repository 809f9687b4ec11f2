package pb

import "strings"

// PathCommand represents a path data command letter (e.g. M, l, C).
// Uppercase letters take absolute coordinates, lowercase ones are relative
// to the current pen position.
type PathCommand string

// list of path commands. See https://www.w3.org/TR/SVG/paths.html#PathData
const (
	// M - move to absolute pos
	MoveToAbs PathCommand = "M"
	// m - move to relative pos (Pn = x0 + dx, y0 + dy)
	MoveToRel PathCommand = "m"
	// L - line to absolute pos
	LineToAbs PathCommand = "L"
	// l - line to relative pos
	LineToRel PathCommand = "l"
	// H - horizontal line to absolute x
	HorizontalToAbs PathCommand = "H"
	// h - horizontal line to relative x (Pn = x0 + dx, y0)
	HorizontalToRel PathCommand = "h"
	// V - vertical line to absolute y
	VerticalToAbs PathCommand = "V"
	// v - vertical line to relative y (Pn = x0, y0 + dy)
	VerticalToRel PathCommand = "v"
	// C - cubic bezier
	CubicToAbs PathCommand = "C"
	CubicToRel PathCommand = "c"
	// S - smooth cubic bezier (first control point is a reflection)
	SmoothToAbs PathCommand = "S"
	SmoothToRel PathCommand = "s"
	// Q - quadratic bezier
	QuadToAbs PathCommand = "Q"
	QuadToRel PathCommand = "q"
	// T - smooth quadratic bezier
	SmoothQuadToAbs PathCommand = "T"
	SmoothQuadToRel PathCommand = "t"
	// A - elliptical arc
	ArcToAbs PathCommand = "A"
	ArcToRel PathCommand = "a"
	// z - close path. Always emitted lowercase.
	ClosePath PathCommand = "z"
)

var nArgs = map[PathCommand]int{
	MoveToAbs:       2,
	LineToAbs:       2,
	HorizontalToAbs: 1,
	VerticalToAbs:   1,
	CubicToAbs:      6,
	SmoothToAbs:     4,
	QuadToAbs:       4,
	SmoothQuadToAbs: 2,
	ArcToAbs:        7,
	ClosePath:       0,
}

// Valid reports whether c is a known command letter.
func (c PathCommand) Valid() bool {
	_, ok := nArgs[c.Abs()]
	return ok
}

// IsRelative reports whether c takes coordinates relative to the current pen position.
func (c PathCommand) IsRelative() bool {
	return c != ClosePath && strings.ToLower(string(c)) == string(c)
}

// Abs returns the absolute variant of c.
func (c PathCommand) Abs() PathCommand {
	if c == ClosePath || c == "Z" {
		return ClosePath
	}

	return PathCommand(strings.ToUpper(string(c)))
}

// Rel returns the relative variant of c.
func (c PathCommand) Rel() PathCommand {
	return PathCommand(strings.ToLower(string(c)))
}

// NArgs returns number of arguments c takes. Arc flags count as arguments.
// It returns -1 for unknown commands.
func (c PathCommand) NArgs() int {
	n, ok := nArgs[c.Abs()]
	if !ok {
		return -1
	}

	return n
}

package pb

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestPathCommand(t *testing.T) {
	is := is.New(t)

	is.True(MoveToRel.IsRelative())
	is.False(MoveToAbs.IsRelative())
	is.False(ClosePath.IsRelative())

	is.Equal(ArcToAbs, ArcToRel.Abs())
	is.Equal(SmoothQuadToRel, SmoothQuadToAbs.Rel())
	is.Equal(ClosePath, PathCommand("Z").Abs())

	is.Equal(7, ArcToRel.NArgs())
	is.Equal(6, CubicToAbs.NArgs())
	is.Equal(1, VerticalToRel.NArgs())
	is.Equal(0, ClosePath.NArgs())
	is.Equal(-1, PathCommand("X").NArgs())

	is.True(SmoothToRel.Valid())
	is.False(PathCommand("").Valid())
	is.False(PathCommand("Mm").Valid())
}

func TestCommand_String(t *testing.T) {
	is := is.New(t)

	is.Equal("z", Command{Code: ClosePath}.String())
	is.Equal("S 1 2, 3 4", Command{Code: SmoothToAbs, Args: []float64{1, 2, 3, 4}}.String())
	// any non-zero value is a set flag
	is.Equal("A 1 2 3 1 0 4 5", Command{Code: ArcToAbs, Args: []float64{1, 2, 3, -1, 0, 4, 5}}.String())
}

package pb

import (
	"fmt"
	"testing"

	"github.com/rustyoz/svg"
	"github.com/stretchr/testify/require"
)

// drawingInstructions feeds path data to an independent SVG path consumer.
func drawingInstructions(t *testing.T, d string) []*svg.DrawingInstruction {
	t.Helper()

	doc := fmt.Sprintf(`<svg viewBox="0 0 100 100"><g><path d="%s" stroke="#000000"/></g></svg>`, d)
	parsed, err := svg.ParseSvg(doc, "conformance", 1)
	require.NoError(t, err)

	instructions, errs := parsed.ParseDrawingInstructions()
	require.NotNil(t, instructions)

	var result []*svg.DrawingInstruction

	for {
		select {
		case di := <-instructions:
			if di == nil {
				return result
			}

			result = append(result, di)
		case err := <-errs:
			require.NoError(t, err)
		}
	}
}

func TestPathBuilder_ConsumerAcceptsOutput(t *testing.T) {
	d, err := NewPathBuilder().
		MoveTo(10, 10).
		LineTo(90, 10).
		CubicTo(90, 40, 60, 90, 50, 90).
		LineTo(10, 90).
		Close()
	require.NoError(t, err)

	instructions := drawingInstructions(t, d)

	var kinds []svg.InstructionType
	for _, di := range instructions {
		kinds = append(kinds, di.Kind)
	}

	require.Contains(t, kinds, svg.MoveInstruction)
	require.Contains(t, kinds, svg.LineInstruction)
	require.Contains(t, kinds, svg.CurveInstruction)
	require.Contains(t, kinds, svg.CloseInstruction)

	require.Equal(t, svg.MoveInstruction, instructions[0].Kind)
	require.InDelta(t, 10, instructions[0].M[0], 1e-9)
	require.InDelta(t, 10, instructions[0].M[1], 1e-9)

	for _, di := range instructions {
		if di.Kind != svg.CurveInstruction {
			continue
		}

		require.NotNil(t, di.CurvePoints)
		require.InDelta(t, 50, di.CurvePoints.T[0], 1e-9)
		require.InDelta(t, 90, di.CurvePoints.T[1], 1e-9)
	}
}

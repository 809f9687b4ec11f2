package spath

import (
	"strings"
	"testing"

	"github.com/rustyoz/svg"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/spath/pkg/config"
	"github.com/gucio321/spath/pkg/pb"
	"github.com/gucio321/spath/pkg/shape"
)

func TestSpath_Path(t *testing.T) {
	s, err := shape.Get("square")
	require.NoError(t, err)

	d, err := NewSpath(s).Path()
	require.NoError(t, err)
	require.Equal(t, "M 0 0 H 100 V 100 H 0 z", d)
}

func TestSpath_SVG(t *testing.T) {
	s, err := shape.Get("square")
	require.NoError(t, err)

	out, err := NewSpath(s).
		Stroke("red").
		StrokeWidth(2.5).
		Size(120, 100.5).
		SVG()
	require.NoError(t, err)

	doc := string(out)
	require.True(t, strings.HasPrefix(doc, "<?xml"))
	require.Contains(t, doc, `xmlns="http://www.w3.org/2000/svg"`)
	require.Contains(t, doc, `viewBox="0 0 120 100.5"`)
	require.Contains(t, doc, `<title>square</title>`)
	require.Contains(t, doc, `d="M 0 0 H 100 V 100 H 0 z"`)
	require.Contains(t, doc, `stroke="red"`)
	require.Contains(t, doc, `stroke-width="2.5"`)
	require.Contains(t, doc, `fill="none"`)

	_, err = svg.ParseSvg(doc, "square", 1)
	require.NoError(t, err)
}

func TestSpath_Config(t *testing.T) {
	s, err := shape.Get("heart")
	require.NoError(t, err)

	out, err := NewSpath(s).Config(config.Config{Fill: "pink", Width: 50}).SVG()
	require.NoError(t, err)

	doc := string(out)
	require.Contains(t, doc, `fill="pink"`)
	require.Contains(t, doc, `stroke="black"`)
	require.Contains(t, doc, `viewBox="0 0 50 100"`)
}

func TestSpath_InvalidShape(t *testing.T) {
	s := &shape.Shape{
		Name:  "broken",
		Steps: []shape.Step{{Op: "K", Args: []float64{1}}},
	}

	_, err := NewSpath(s).SVG()
	require.ErrorIs(t, err, pb.ErrUnknownCommand)
}

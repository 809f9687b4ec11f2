package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gucio321/spath/pkg/config"
	"github.com/gucio321/spath/pkg/shape"
)

func TestRender(t *testing.T) {
	s, err := shape.Get("wave")
	require.NoError(t, err)

	out, err := render(s, config.Config{}, Flags{})
	require.NoError(t, err)
	require.Equal(t, "M 10 80 C 40 10, 65 10, 95 80 S 150 150, 180 80 z", string(out))

	out, err = render(s, config.Config{Stroke: "blue", Fill: "yellow"}, Flags{SVG: true, Stroke: "green", StrokeWidth: 4})
	require.NoError(t, err)
	require.Contains(t, string(out), `stroke="green"`)
	require.Contains(t, string(out), `fill="yellow"`)
	require.Contains(t, string(out), `stroke-width="4"`)
}

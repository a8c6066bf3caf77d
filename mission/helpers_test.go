package mission_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fognav/terrain"
)

// buildGrid creates a grid from rows of codes (rows[y][x]) with unit travel time between
// every orthogonal pair.
func buildGrid(t *testing.T, rows [][]int) *terrain.Grid {
	t.Helper()
	h, w := len(rows), len(rows[0])
	gr, err := terrain.NewGrid(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, gr.AddNode(x, y, rows[y][x]))
			if x+1 < w {
				require.NoError(t, gr.AddTravelTime(x, y, x+1, y, 1))
			}
			if y+1 < h {
				require.NoError(t, gr.AddTravelTime(x, y, x, y+1, 1))
			}
		}
	}

	return gr
}

func xy(x, y int) terrain.Coord { return terrain.Coord{X: x, Y: y} }

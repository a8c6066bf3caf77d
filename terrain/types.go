package terrain

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	g "github.com/zyedidia/generic"

	"github.com/katalvlaran/fognav/hashmap"
)

// Sentinel errors for terrain operations.
var (
	// ErrBadDimensions indicates a grid with no rows or no columns.
	ErrBadDimensions = errors.New("terrain: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")
	// ErrBadTerrainCode indicates a negative terrain code.
	ErrBadTerrainCode = errors.New("terrain: terrain code must be non-negative")
	// ErrNegativeTravelTime indicates a negative or NaN travel time.
	ErrNegativeTravelTime = errors.New("terrain: travel time must be non-negative")
)

// Terrain codes with fixed meaning. Any code ≥ TypeConditional is conditionally passable.
const (
	TypeOpen        = 0
	TypeBlocked     = 1
	TypeConditional = 2
)

// Infinity is the travel time reported for a pair with no edge. Sums that include it
// never compare below it, so it also serves as "no route".
const Infinity = math.MaxFloat64

// Coord is a grid position.
type Coord struct {
	X, Y int
}

// Key packs the pair into a single integer, unique for every int32 pair.
func (c Coord) Key() uint64 {
	return uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y)))
}

// String renders the coordinate as "X-Y".
func (c Coord) String() string {
	return fmt.Sprintf("%d-%d", c.X, c.Y)
}

// HashCoord is the hashmap strategy for Coord keys.
func HashCoord(c Coord) uint64 {
	return g.HashUint64(c.Key())
}

// EdgeKey is a directed pair of coordinates.
type EdgeKey struct {
	From, To Coord
}

// HashEdge is the hashmap strategy for EdgeKey keys. (a,b) and (b,a) hash differently.
func HashEdge(e EdgeKey) uint64 {
	return g.HashUint64(e.From.Key()) ^ bits.RotateLeft64(g.HashUint64(e.To.Key()), 17)
}

// Cell is one grid position with its terrain and fog-of-war state.
type Cell struct {
	pos      Coord
	code     int
	known    bool
	passable bool
	visited  bool
}

// Grid is the land: a fixed Width×Height array of cells plus the travel-time table.
// Grid is not safe for concurrent use.
type Grid struct {
	Width, Height int

	cells []Cell
	times *hashmap.Map[EdgeKey, float64]
}

// neighborOffsets4 lists the orthogonal moves the planner explores, in order.
var neighborOffsets4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

package game

// Location is where a piece sits: off the board (Out) or one of the
// nine cells of the 3x3 board.
type Location uint8

const (
	Out    Location = 0 // off-board reserve
	NW     Location = 1
	N      Location = 2
	NE     Location = 3
	W      Location = 4
	Center Location = 5
	E      Location = 6
	SW     Location = 7
	S      Location = 8
	SE     Location = 9

	// LocationNone is an alias of Out.
	LocationNone Location = Out

	// LocationInvalid marks an out-of-range location.
	LocationInvalid Location = 255
)

// LocationCount is the number of locations including Out.
const LocationCount = 10

// BoardCellCount is the number of cells on the board.
const BoardCellCount = 9

// BoardLength is the number of rows (and columns) of the board.
const BoardLength = 3

// Locations lists every location, Out first.
var Locations = [LocationCount]Location{Out, NW, N, NE, W, Center, E, SW, S, SE}

// BoardLocations lists the nine on-board cells.
var BoardLocations = [BoardCellCount]Location{NW, N, NE, W, Center, E, SW, S, SE}

// Lines lists the eight winning lines: three rows, three columns and
// the two diagonals.
var Lines = [8][BoardLength]Location{
	{NW, N, NE},
	{W, Center, E},
	{SW, S, SE},
	{NW, W, SW},
	{N, Center, S},
	{NE, E, SE},
	{NW, Center, SE},
	{NE, Center, SW},
}

// Valid reports whether l is Out or a board cell.
func (l Location) Valid() bool {
	return l <= SE
}

// OnBoard reports whether l is one of the nine board cells.
func (l Location) OnBoard() bool {
	return l >= NW && l <= SE
}

func (l Location) String() string {
	switch l {
	case Out:
		return "Out"
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case W:
		return "W"
	case Center:
		return "Center"
	case E:
		return "E"
	case SW:
		return "SW"
	case S:
		return "S"
	case SE:
		return "SE"
	}
	return "Invalid"
}

package chess

// Direction is one of the eight compass lines or one of the eight knight leaps.
type Direction int8

const (
	NoDirection Direction = iota
	North
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
	NorthNorthEast
	EastNorthEast
	EastSouthEast
	SouthSouthEast
	SouthSouthWest
	WestSouthWest
	WestNorthWest
	NorthNorthWest
	NumDirections
)

// Direction groups used by move generation and coverage.
var (
	Orthogonals = []Direction{North, East, South, West}
	Diagonals   = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	Lines       = []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
	KnightLeaps = []Direction{
		NorthNorthEast, EastNorthEast, EastSouthEast, SouthSouthEast,
		SouthSouthWest, WestSouthWest, WestNorthWest, NorthNorthWest,
	}
)

var directionOffsets = [NumDirections]Position{
	NoDirection:    {0, 0},
	North:          {0, 1},
	East:           {1, 0},
	South:          {0, -1},
	West:           {-1, 0},
	NorthEast:      {1, 1},
	SouthEast:      {1, -1},
	SouthWest:      {-1, -1},
	NorthWest:      {-1, 1},
	NorthNorthEast: {1, 2},
	EastNorthEast:  {2, 1},
	EastSouthEast:  {2, -1},
	SouthSouthEast: {1, -2},
	SouthSouthWest: {-1, -2},
	WestSouthWest:  {-2, -1},
	WestNorthWest:  {-2, 1},
	NorthNorthWest: {-1, 2},
}

var opposites = [NumDirections]Direction{
	NoDirection:    NoDirection,
	North:          South,
	East:           West,
	South:          North,
	West:           East,
	NorthEast:      SouthWest,
	SouthEast:      NorthWest,
	SouthWest:      NorthEast,
	NorthWest:      SouthEast,
	NorthNorthEast: SouthSouthWest,
	EastNorthEast:  WestSouthWest,
	EastSouthEast:  WestNorthWest,
	SouthSouthEast: NorthNorthWest,
	SouthSouthWest: NorthNorthEast,
	WestSouthWest:  EastNorthEast,
	WestNorthWest:  EastSouthEast,
	NorthNorthWest: SouthSouthEast,
}

// steps[sq][dir] is how many times dir can be applied from sq without leaving
// the board. Leaps are capped at one.
var steps [NumSquares][NumDirections]int8

func init() {
	for sq := Square(0); sq < NumSquares; sq++ {
		for d := North; d < NumDirections; d++ {
			off := directionOffsets[d]
			pos := sq.Position()
			n := int8(0)
			for {
				pos = Position{X: pos.X + off.X, Y: pos.Y + off.Y}
				if !pos.InBounds() {
					break
				}
				n++
				if !d.IsLine() {
					break
				}
			}
			steps[sq][d] = n
		}
	}
}

// Delta returns the square index offset of one step in d.
func (d Direction) Delta() Square {
	if d <= NoDirection || d >= NumDirections {
		return 0
	}
	off := directionOffsets[d]
	return Square(off.Y*BoardSize + off.X)
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d < NoDirection || d >= NumDirections {
		return NoDirection
	}
	return opposites[d]
}

// IsLine reports whether d is one of the eight compass directions.
func (d Direction) IsLine() bool {
	return d >= North && d <= NorthWest
}

// IsOrthogonal reports whether d runs along a rank or file.
func (d Direction) IsOrthogonal() bool {
	return d >= North && d <= West
}

// IsDiagonal reports whether d runs along a diagonal.
func (d Direction) IsDiagonal() bool {
	return d >= NorthEast && d <= NorthWest
}

// Steps returns how many steps in d fit on the board starting from sq.
func Steps(sq Square, d Direction) int {
	if !sq.Valid() || d <= NoDirection || d >= NumDirections {
		return 0
	}
	return int(steps[sq][d])
}

// LineDirection returns the compass direction leading from one square to
// another, or NoDirection if they do not share a rank, file or diagonal.
func LineDirection(from, to Square) Direction {
	if from == to || !from.Valid() || !to.Valid() {
		return NoDirection
	}
	dx := to.File() - from.File()
	dy := to.Rank() - from.Rank()
	switch {
	case dx == 0 && dy > 0:
		return North
	case dx == 0:
		return South
	case dy == 0 && dx > 0:
		return East
	case dy == 0:
		return West
	case dx == dy && dx > 0:
		return NorthEast
	case dx == dy:
		return SouthWest
	case dx == -dy && dx > 0:
		return SouthEast
	case dx == -dy:
		return NorthWest
	}
	return NoDirection
}

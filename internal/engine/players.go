package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Castles holds the castling rights of one colour. Rights are only ever
// cleared during a game.
type Castles struct {
	KingSide  bool
	QueenSide bool
}

// Player bundles the fixed per-colour constants with the colour's rights.
type Player struct {
	Colour        chess.Colour
	KingID        ID
	PawnForward   chess.Square // index offset of a single pawn push
	PawnStartRank int
	PawnPromoRank int // rank a pawn stands on before promoting
	KingHome      chess.Square
	KingSideRook  chess.Square // home corner of the king-side rook
	QueenSideRook chess.Square // home corner of the queen-side rook
	Castles       Castles
}

var playerTemplates = [chess.NumColours]Player{
	chess.White: {
		Colour:        chess.White,
		KingID:        WhiteKingID,
		PawnForward:   8,
		PawnStartRank: 1,
		PawnPromoRank: 6,
		KingHome:      chess.E1,
		KingSideRook:  chess.H1,
		QueenSideRook: chess.A1,
	},
	chess.Black: {
		Colour:        chess.Black,
		KingID:        BlackKingID,
		PawnForward:   -8,
		PawnStartRank: 6,
		PawnPromoRank: 1,
		KingHome:      chess.E8,
		KingSideRook:  chess.H8,
		QueenSideRook: chess.A8,
	},
}

// Players holds both colours and which one is to move. Swapping roles flips
// the index; no data moves.
type Players struct {
	byColour [chess.NumColours]Player
	active   chess.Colour
}

func newPlayers() Players {
	return Players{byColour: playerTemplates, active: chess.White}
}

// Active returns the side to move.
func (p *Players) Active() *Player { return &p.byColour[p.active] }

// Passive returns the side that just moved.
func (p *Players) Passive() *Player { return &p.byColour[p.active.Opposite()] }

// Get returns the player of colour c.
func (p *Players) Get(c chess.Colour) *Player { return &p.byColour[c] }

// Swap hands the move to the other side.
func (p *Players) Swap() { p.active = p.active.Opposite() }

// castles snapshots both colours' rights.
func (p *Players) castles() [chess.NumColours]Castles {
	return [chess.NumColours]Castles{p.byColour[chess.White].Castles, p.byColour[chess.Black].Castles}
}

func (p *Players) restoreCastles(c [chess.NumColours]Castles) {
	p.byColour[chess.White].Castles = c[chess.White]
	p.byColour[chess.Black].Castles = c[chess.Black]
}

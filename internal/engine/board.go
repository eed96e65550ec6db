package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ID identifies one piece for the whole game. White owns 0..15 and Black
// 16..31; the kings are always WhiteKingID and BlackKingID.
type ID int8

// Identity layout.
const (
	NoID          ID = -1
	WhiteKingID   ID = 0
	BlackKingID   ID = 16
	IDsPerColour     = 16
	NumIDs           = 2 * IDsPerColour
)

// Colour returns the colour owning the identity.
func (id ID) Colour() chess.Colour {
	if id >= BlackKingID {
		return chess.Black
	}
	return chess.White
}

// firstID returns the first identity of a colour; the king holds it.
func firstID(c chess.Colour) ID {
	if c == chess.Black {
		return BlackKingID
	}
	return WhiteKingID
}

// UniquePiece pairs an identity with its current kind.
type UniquePiece struct {
	ID    ID
	Piece chess.Piece
}

// NoPiece is the canonical empty value.
var NoPiece = UniquePiece{ID: NoID, Piece: chess.Empty}

// IsEmpty reports whether u holds no piece.
func (u UniquePiece) IsEmpty() bool {
	return u.Piece == chess.Empty
}

// Colour returns the owner of a non-empty piece.
func (u UniquePiece) Colour() chess.Colour {
	return u.ID.Colour()
}

// IsAlly reports whether u is a piece of colour c.
func (u UniquePiece) IsAlly(c chess.Colour) bool {
	return !u.IsEmpty() && u.Colour() == c
}

// IsEnemy reports whether u is a piece of the colour opposing c.
func (u UniquePiece) IsEnemy(c chess.Colour) bool {
	return !u.IsEmpty() && u.Colour() != c
}

// Board tracks every piece by identity in both directions plus the squares
// each identity covers. It is a plain value: copying it copies everything.
type Board struct {
	squareID    [chess.NumSquares]ID
	squarePiece [chess.NumSquares]chess.Piece
	idSquare    [NumIDs]chess.Square
	idPiece     [NumIDs]chess.Piece
	coverage    [NumIDs]uint64
}

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	b.Reset()
	return b
}

// Reset empties the board.
func (b *Board) Reset() {
	for sq := range b.squareID {
		b.squareID[sq] = NoID
		b.squarePiece[sq] = chess.Empty
	}
	for id := range b.idSquare {
		b.idSquare[id] = chess.NoSquare
		b.idPiece[id] = chess.Empty
		b.coverage[id] = 0
	}
}

// Register places a piece during setup. Coverage is not touched; call
// InitCoverage once every piece is registered.
func (b *Board) Register(sq chess.Square, id ID, piece chess.Piece) {
	b.squareID[sq] = id
	b.squarePiece[sq] = piece
	b.idSquare[id] = sq
	b.idPiece[id] = piece
}

// At returns the piece on sq.
func (b *Board) At(sq chess.Square) UniquePiece {
	if b.squarePiece[sq] == chess.Empty {
		return NoPiece
	}
	return UniquePiece{ID: b.squareID[sq], Piece: b.squarePiece[sq]}
}

// ID returns the identity on sq, or NoID.
func (b *Board) ID(sq chess.Square) ID { return b.squareID[sq] }

// PieceAt returns the kind on sq.
func (b *Board) PieceAt(sq chess.Square) chess.Piece { return b.squarePiece[sq] }

// IsEmpty reports whether sq is unoccupied.
func (b *Board) IsEmpty(sq chess.Square) bool { return b.squarePiece[sq] == chess.Empty }

// PieceOf returns the current kind of id, Empty once captured.
func (b *Board) PieceOf(id ID) chess.Piece { return b.idPiece[id] }

// SquareOf returns the square of id, NoSquare once captured.
func (b *Board) SquareOf(id ID) chess.Square { return b.idSquare[id] }

// Equal reports whether two boards hold identical state.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// place puts id on sq, overwriting whatever was there.
func (b *Board) place(sq chess.Square, id ID, piece chess.Piece) {
	b.squareID[sq] = id
	b.squarePiece[sq] = piece
	b.idSquare[id] = sq
	b.idPiece[id] = piece
}

// vacate empties sq without touching the identity that stood there.
func (b *Board) vacate(sq chess.Square) {
	b.squareID[sq] = NoID
	b.squarePiece[sq] = chess.Empty
}

// remove takes a captured identity off the board entirely.
func (b *Board) remove(id ID) {
	b.idSquare[id] = chess.NoSquare
	b.idPiece[id] = chess.Empty
	b.coverage[id] = 0
}

// castleRookSquares returns the rook's corner and destination for a king
// castling from kingFrom.
func castleRookSquares(kingFrom chess.Square, kingSide bool) (from, to chess.Square) {
	if kingSide {
		return kingFrom + 3, kingFrom + 1
	}
	return kingFrom - 4, kingFrom - 1
}

// enPassantVictim returns the square of the pawn taken by an en-passant
// capture from -> to.
func enPassantVictim(m chess.Move) chess.Square {
	return chess.NewSquare(m.To.File(), m.From.Rank())
}

// Apply plays the recorded move and brings coverage up to date.
func (b *Board) Apply(d Delta) {
	m := d.Move
	moverID := b.squareID[m.From]
	moverPiece := b.squarePiece[m.From]

	touched := [5]chess.Square{m.From, m.To, chess.NoSquare, chess.NoSquare, chess.NoSquare}
	b.coverage[moverID] |= m.From.Bit()

	if !d.Captured.IsEmpty() {
		b.remove(d.Captured.ID)
	}

	b.vacate(m.From)
	if m.Promotion.IsPromotion() {
		moverPiece = m.Promotion
	}
	b.place(m.To, moverID, moverPiece)

	if d.KingSide || d.QueenSide {
		rookFrom, rookTo := castleRookSquares(m.From, d.KingSide)
		rookID := b.squareID[rookFrom]
		b.coverage[rookID] |= rookFrom.Bit()
		b.vacate(rookFrom)
		b.place(rookTo, rookID, chess.Rook)
		touched[2], touched[3] = rookFrom, rookTo
	}

	if d.EnPassant {
		victim := enPassantVictim(m)
		b.vacate(victim)
		touched[4] = victim
	}

	b.updateCoverage(touched[:])
}

// Undo reverses a move previously passed to Apply. Only the record is consulted.
func (b *Board) Undo(d Delta) {
	m := d.Move
	moverID := b.squareID[m.To]
	moverPiece := b.squarePiece[m.To]
	if m.Promotion.IsPromotion() {
		moverPiece = chess.Pawn
	}

	touched := [5]chess.Square{m.From, m.To, chess.NoSquare, chess.NoSquare, chess.NoSquare}

	b.vacate(m.To)
	b.place(m.From, moverID, moverPiece)
	b.coverage[moverID] |= m.From.Bit()

	if d.KingSide || d.QueenSide {
		rookFrom, rookTo := castleRookSquares(m.From, d.KingSide)
		rookID := b.squareID[rookTo]
		b.vacate(rookTo)
		b.place(rookFrom, rookID, chess.Rook)
		b.coverage[rookID] |= rookFrom.Bit()
		touched[2], touched[3] = rookFrom, rookTo
	}

	if !d.Captured.IsEmpty() {
		sq := m.To
		if d.EnPassant {
			sq = enPassantVictim(m)
			touched[4] = sq
		}
		b.place(sq, d.Captured.ID, d.Captured.Piece)
		b.coverage[d.Captured.ID] |= sq.Bit()
	}

	b.updateCoverage(touched[:])
}

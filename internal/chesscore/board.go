//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package chesscore

import "github.com/abdada-go/engine/internal/assert"

// Key is an incrementally maintained Zobrist hash of a Board.
type Key = uint64

// maxPly bounds the undo-history stack. A game (or a search line hanging
// off one) deeper than this would already be pathological.
const maxPly = 1024

// undoState captures everything Unmake needs to reverse one Make that a
// Board cannot recompute on its own.
type undoState struct {
	move            Move
	captured        Piece
	capturedSquare  Square
	castling        CastlingRights
	epSquare        Square
	halfmoveClock   int
	key             Key
}

// Board is an 0x88 mailbox chess position. The zero Board is not a legal
// position; use ParseFEN (for example with StartFEN).
type Board struct {
	squares    [128]Piece
	kingSquare [2]Square
	sideToMove Color
	castling   CastlingRights
	epSquare   Square
	halfmove   int
	fullmove   int
	key        Key

	history [maxPly]undoState
	histLen int
}

// MoveKind selects which subset of moves GenerateMoves produces.
type MoveKind int

const (
	All MoveKind = iota
	Captures
)

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Key returns the board's current Zobrist hash.
func (b *Board) Key() Key { return b.key }

// At returns the piece on sq, or Empty.
func (b *Board) At(sq Square) Piece { return b.squares[sq] }

// Clone returns a deep copy of b. Board holds no pointers or slices of
// unbounded size, so this is a plain value copy - the same trick
// RenWild-combusken's copy-make Position relies on for cheap snapshots.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

func (b *Board) put(sq Square, p Piece) {
	if old := b.squares[sq]; old != Empty {
		b.key ^= pieceKey(old, sq)
	}
	b.squares[sq] = p
	if p != Empty {
		b.key ^= pieceKey(p, sq)
		if p.Type() == King {
			b.kingSquare[p.Color()] = sq
		}
	}
}

func (b *Board) remove(sq Square) Piece {
	p := b.squares[sq]
	if p != Empty {
		b.key ^= pieceKey(p, sq)
		b.squares[sq] = Empty
	}
	return p
}

func (b *Board) setEpSquare(sq Square) {
	if b.epSquare.Valid() {
		b.key ^= zobristEpFile[b.epSquare.File()]
	}
	b.epSquare = sq
	if sq.Valid() {
		b.key ^= zobristEpFile[sq.File()]
	}
}

func (b *Board) setCastling(cr CastlingRights) {
	b.key ^= zobristCastling[b.castling]
	b.castling = cr
	b.key ^= zobristCastling[b.castling]
}

// Make plays m, pushing enough state onto the undo stack for a matching
// Unmake to fully reverse it. m is assumed pseudo-legal; Make never
// validates that the mover's own king survives - that is GenerateMoves's
// job, the same division of labor RenWild-combusken's MovePiece/IsInCheck
// pair uses.
func (b *Board) Make(m Move) {
	us := b.sideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	mover := b.squares[from]

	u := undoState{
		move:          m,
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfmoveClock: b.halfmove,
		key:           b.key,
	}

	switch {
	case m.IsEnPassant():
		capSq := NewSquare(to.File(), from.Rank())
		u.captured = b.remove(capSq)
		u.capturedSquare = capSq
	case m.IsCapture():
		u.captured = b.squares[to]
		u.capturedSquare = to
	default:
		u.captured = Empty
		u.capturedSquare = SquareNone
	}

	if u.captured != Empty && !m.IsEnPassant() {
		b.remove(to)
	}

	b.remove(from)
	if m.IsPromotion() {
		b.put(to, MakePiece(us, m.PromotionType()))
	} else {
		b.put(to, mover)
	}

	if m.IsCastle() {
		rank := from.Rank()
		if m.flag() == flagKingCastle {
			rookFrom := NewSquare(7, rank)
			rookTo := NewSquare(5, rank)
			b.put(rookTo, b.remove(rookFrom))
		} else {
			rookFrom := NewSquare(0, rank)
			rookTo := NewSquare(3, rank)
			b.put(rookTo, b.remove(rookFrom))
		}
	}

	b.setEpSquare(SquareNone)
	if m.IsDoublePawnPush() {
		b.setEpSquare(NewSquare(from.File(), (from.Rank()+to.Rank())/2))
	}

	newRights := b.castling
	newRights = clearCastlingRightsFor(newRights, from)
	newRights = clearCastlingRightsFor(newRights, to)
	if newRights != b.castling {
		b.setCastling(newRights)
	}

	if mover.Type() == Pawn || u.captured != Empty {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}

	b.key ^= zobristSide
	b.sideToMove = them

	b.history[b.histLen] = u
	b.histLen++
}

// clearCastlingRightsFor revokes the rights that moving a piece to/from sq
// would forfeit (a king or rook leaving its home square).
func clearCastlingRightsFor(cr CastlingRights, sq Square) CastlingRights {
	switch sq {
	case NewSquare(4, 0):
		cr &^= WhiteKingSide | WhiteQueenSide
	case NewSquare(4, 7):
		cr &^= BlackKingSide | BlackQueenSide
	case NewSquare(0, 0):
		cr &^= WhiteQueenSide
	case NewSquare(7, 0):
		cr &^= WhiteKingSide
	case NewSquare(0, 7):
		cr &^= BlackQueenSide
	case NewSquare(7, 7):
		cr &^= BlackKingSide
	}
	return cr
}

// Unmake reverses the most recent Make. Calling it without a matching
// Make is a programming error and corrupts the board.
func (b *Board) Unmake() {
	if assert.DEBUG {
		assert.Assert(b.histLen > 0, "Unmake called with no matching Make")
	}
	b.histLen--
	u := b.history[b.histLen]
	m := u.move

	them := b.sideToMove
	us := them.Other()
	b.sideToMove = us

	from, to := m.From(), m.To()
	moved := b.squares[to]
	b.squares[to] = Empty
	if m.IsPromotion() {
		b.squares[from] = MakePiece(us, Pawn)
	} else {
		b.squares[from] = moved
	}
	if moved.Type() == King {
		b.kingSquare[us] = from
	}

	if u.captured != Empty {
		b.squares[u.capturedSquare] = u.captured
	}

	if m.IsCastle() {
		rank := from.Rank()
		if m.flag() == flagKingCastle {
			rookFrom := NewSquare(7, rank)
			rookTo := NewSquare(5, rank)
			b.squares[rookFrom] = b.squares[rookTo]
			b.squares[rookTo] = Empty
		} else {
			rookFrom := NewSquare(0, rank)
			rookTo := NewSquare(3, rank)
			b.squares[rookFrom] = b.squares[rookTo]
			b.squares[rookTo] = Empty
		}
	}

	b.castling = u.castling
	b.epSquare = u.epSquare
	b.halfmove = u.halfmoveClock
	b.key = u.key
	if us == Black {
		b.fullmove--
	}
}

var knightOffsets = [8]int{-33, -31, -18, -14, 14, 18, 31, 33}
var kingOffsets = [8]int{-17, -16, -15, -1, 1, 15, 16, 17}
var bishopDirs = [4]int{-17, -15, 15, 17}
var rookDirs = [4]int{-16, -1, 1, 16}

// attacks reports whether side attacks sq on the current board.
func (b *Board) attacks(side Color, sq Square) bool {
	pawnRankDir := 1
	if side == Black {
		pawnRankDir = -1
	}
	for _, df := range [2]int{-1, 1} {
		from := NewSquare(sq.File()+df, sq.Rank()-pawnRankDir)
		if from.Valid() {
			if p := b.squares[from]; p != Empty && p.Color() == side && p.Type() == Pawn {
				return true
			}
		}
	}
	for _, off := range knightOffsets {
		from := Square(int(sq) + off)
		if from.Valid() {
			if p := b.squares[from]; p != Empty && p.Color() == side && p.Type() == Knight {
				return true
			}
		}
	}
	for _, off := range kingOffsets {
		from := Square(int(sq) + off)
		if from.Valid() {
			if p := b.squares[from]; p != Empty && p.Color() == side && p.Type() == King {
				return true
			}
		}
	}
	for _, dir := range bishopDirs {
		if b.rayAttacks(sq, dir, side, Bishop, Queen) {
			return true
		}
	}
	for _, dir := range rookDirs {
		if b.rayAttacks(sq, dir, side, Rook, Queen) {
			return true
		}
	}
	return false
}

func (b *Board) rayAttacks(from Square, dir int, side Color, pt1, pt2 PieceType) bool {
	cur := Square(int(from) + dir)
	for cur.Valid() {
		if p := b.squares[cur]; p != Empty {
			if p.Color() == side && (p.Type() == pt1 || p.Type() == pt2) {
				return true
			}
			return false
		}
		cur = Square(int(cur) + dir)
	}
	return false
}

// InCheck reports whether side's king is currently attacked.
func (b *Board) InCheck(side Color) bool {
	return b.attacks(side.Other(), b.kingSquare[side])
}

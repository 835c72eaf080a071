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

// Move is a 16-bit opaque move handle:
//
//	bits 0-5   to square   (0-63, file+rank*8)
//	bits 6-11  from square
//	bits 12-15 flag (move kind, see the flag* constants)
//
// MoveNone (the zero value) is the sentinel for "no move"; from==to never
// occurs for a real move so 0 is safe to reserve.
type Move uint16

// MoveNone is the "no move" sentinel, also used as the TT's empty-move value.
const MoveNone Move = 0

const (
	flagQuiet          = 0x0
	flagDoublePawn     = 0x1
	flagKingCastle     = 0x2
	flagQueenCastle    = 0x3
	flagCapture        = 0x4
	flagEnPassant      = 0x5
	flagPromoKnight    = 0x8
	flagPromoBishop    = 0x9
	flagPromoRook      = 0xA
	flagPromoQueen     = 0xB
	flagPromoCapKnight = 0xC
	flagPromoCapBishop = 0xD
	flagPromoCapRook   = 0xE
	flagPromoCapQueen  = 0xF
)

// compact packs an 0x88 square into a dense 0-63 index (file + rank*8) so
// a from/to pair fits in 12 of the move's 16 bits.
func compact(s Square) uint16 { return uint16(s.Rank()*8 + s.File()) }

func expand(c uint16) Square { return NewSquare(int(c&7), int(c>>3)) }

func newMove(from, to Square, flag uint16) Move {
	return Move(compact(to) | compact(from)<<6 | flag<<12)
}

// From returns the origin square of the move.
func (m Move) From() Square { return expand((uint16(m) >> 6) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return expand(uint16(m) & 0x3F) }

func (m Move) flag() uint16 { return uint16(m>>12) & 0xF }

// IsCapture reports whether the move captures a piece (including
// en-passant and capture-promotions).
func (m Move) IsCapture() bool { return m.flag()&flagCapture != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.flag()&0x8 != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.flag() == flagEnPassant }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.flag() == flagKingCastle || m.flag() == flagQueenCastle }

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool { return m.flag() == flagDoublePawn }

// PromotionType returns the piece type promoted to; only meaningful when
// IsPromotion is true.
func (m Move) PromotionType() PieceType {
	switch m.flag() & 0x3 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

// UCI returns the UCI string representation of the move, e.g. "e2e4" or
// "a7a8q" for a promotion. MoveNone formats as "0000" per the UCI spec.
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.PromotionType().Char() - 'A' + 'a')
	}
	return s
}

func (m Move) String() string { return m.UCI() }

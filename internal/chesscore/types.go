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

// Package chesscore is the Position Service black box the search engine is
// built against: an 0x88 mailbox board with make/unmake, pseudo-legal move
// generation filtered to legal, incremental Zobrist hashing and a small
// material/piece-square evaluation. None of this is the focus of the
// engine - it exists only so the transposition table and the search
// workers have a real position to search.
package chesscore

import "fmt"

// Color identifies a side to move.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType enumerates the six chess piece kinds. NoPieceType denotes an
// empty square.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Char returns the uppercase algebraic letter for the piece type, used by
// FEN and UCI promotion strings. Pawn and NoPieceType have no letter.
func (pt PieceType) Char() byte {
	switch pt {
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// Piece packs a color and a piece type into a single mailbox cell value.
// Empty is the zero value so a freshly zeroed board is an empty board.
type Piece int8

const Empty Piece = 0

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt)<<1 | Piece(c)
}

// Type returns the piece type of p. Empty returns NoPieceType.
func (p Piece) Type() PieceType {
	return PieceType(p >> 1)
}

// Color returns the color of p. Undefined for Empty.
func (p Piece) Color() Color {
	return Color(p & 1)
}

func (p Piece) String() string {
	if p == Empty {
		return "."
	}
	c := byte(p.Type().Char())
	if p.Color() == Black {
		c = c - 'A' + 'a'
	}
	if p.Type() == Pawn {
		if p.Color() == White {
			c = 'P'
		} else {
			c = 'p'
		}
	}
	return string(c)
}

// Square is an 0x88 board index: rank = sq>>4, file = sq&7, valid iff
// sq&0x88 == 0. SquareNone is used for "no en-passant square".
type Square int8

const SquareNone Square = -1

// NewSquare builds a Square from a zero-based file (0=a) and rank (0=1st).
func NewSquare(file, rank int) Square {
	return Square(rank<<4 | file)
}

// File returns the zero-based file (0=a .. 7=h).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the zero-based rank (0=1st .. 7=8th).
func (s Square) Rank() int { return int(s) >> 4 }

// Valid reports whether s is an in-board 0x88 index.
func (s Square) Valid() bool { return s >= 0 && int(s)&0x88 == 0 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.File(), '1'+s.Rank())
}

// CastlingRights is a 4-bit mask of remaining castling rights.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	var s string
	if cr&WhiteKingSide != 0 {
		s += "K"
	}
	if cr&WhiteQueenSide != 0 {
		s += "Q"
	}
	if cr&BlackKingSide != 0 {
		s += "k"
	}
	if cr&BlackQueenSide != 0 {
		s += "q"
	}
	return s
}

// Eval is a signed evaluation score from the side-to-move's perspective.
type Eval = int16

const (
	// MinEval and MaxEval bound every real evaluation. Negating MinEval
	// must never overflow int16, which is why it is not math.MinInt16.
	MinEval Eval = -30000
	MaxEval Eval = 30000
	// OnEvaluation is the sentinel a cooperating search returns to mean
	// "a peer is already searching this node" - never a real evaluation.
	OnEvaluation Eval = -32768 // math.MinInt16
)

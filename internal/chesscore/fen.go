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

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Board from Forsyth-Edwards Notation. It follows the
// same "split on spaces, parse each field" shape as every FEN parser in
// the corpus. Only the first four fields are required: a missing
// halfmove clock leaves it at 0 and a missing fullmove number defaults
// to 1. Board.FEN renders a position back to this notation.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("chesscore: malformed FEN %q: need at least 4 fields", fen)
	}

	b := &Board{epSquare: SquareNone}
	for i := range b.squares {
		b.squares[i] = Empty
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("chesscore: malformed FEN %q: need 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, err := pieceFromChar(byte(ch))
			if err != nil {
				return nil, fmt.Errorf("chesscore: malformed FEN %q: %w", fen, err)
			}
			sq := NewSquare(file, rank)
			b.squares[sq] = p
			b.key ^= pieceKey(p, sq)
			if p.Type() == King {
				b.kingSquare[p.Color()] = sq
			}
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
		b.key ^= zobristSide
	default:
		return nil, fmt.Errorf("chesscore: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling |= WhiteKingSide
			case 'Q':
				b.castling |= WhiteQueenSide
			case 'k':
				b.castling |= BlackKingSide
			case 'q':
				b.castling |= BlackQueenSide
			}
		}
	}
	b.key ^= zobristCastling[b.castling]

	if fields[3] != "-" {
		file := int(fields[3][0] - 'a')
		rank := int(fields[3][1] - '1')
		b.epSquare = NewSquare(file, rank)
		b.key ^= zobristEpFile[b.epSquare.File()]
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmove = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmove = n
		}
	} else {
		b.fullmove = 1
	}

	return b, nil
}

func pieceFromChar(ch byte) (Piece, error) {
	c := White
	letter := ch
	if ch >= 'a' && ch <= 'z' {
		c = Black
		letter = ch - 'a' + 'A'
	}
	var pt PieceType
	switch letter {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return Empty, fmt.Errorf("unknown piece letter %q", ch)
	}
	return MakePiece(c, pt), nil
}

// FEN renders the board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteString(fmt.Sprintf(" %d %d", b.halfmove, b.fullmove))
	return sb.String()
}

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

import "math/rand"

// Zobrist tables, layout and seeding follow RenWild-combusken's
// backend/zobrist.go: one random key per [pieceType][color][square], one
// per en-passant file, one per castling-rights byte, one for side to move.
// Seeded deterministically so two processes hash the same position the
// same way, which the transposition table's torture tests rely on.
var (
	zobristPiece    [7][2][128]uint64 // indexed by PieceType, Color, 0x88 square
	zobristCastling [16]uint64
	zobristEpFile   [8]uint64
	zobristSide     uint64
)

func init() {
	r := rand.New(rand.NewSource(0xABDADA))
	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			for sq := 0; sq < 128; sq++ {
				zobristPiece[pt][c][sq] = r.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = r.Uint64()
	}
	for i := range zobristEpFile {
		zobristEpFile[i] = r.Uint64()
	}
	zobristSide = r.Uint64()
}

func pieceKey(p Piece, sq Square) uint64 {
	return zobristPiece[p.Type()][p.Color()][sq]
}

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

// GenerateMoves produces legal moves for the side to move: All for every
// legal move, Captures for captures only, including en passant and
// capturing promotions (the subset quiescence search needs); quiet
// promotions are generated only for All. Legality is established the way
// RenWild-combusken's GenerateAllLegalMoves does it: generate
// pseudo-legal moves, try each with Make, keep it only if the mover's own
// king is not left in check, then Unmake.
func (b *Board) GenerateMoves(kind MoveKind) []Move {
	pseudo := make([]Move, 0, 48)
	b.generatePseudoLegal(kind, &pseudo)

	us := b.sideToMove
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		b.Make(m)
		if !b.InCheck(us) {
			legal = append(legal, m)
		}
		b.Unmake()
	}
	return legal
}

func (b *Board) generatePseudoLegal(kind MoveKind, out *[]Move) {
	us := b.sideToMove
	for i := 0; i < 128; i++ {
		sq := Square(i)
		if !sq.Valid() {
			continue
		}
		p := b.squares[sq]
		if p == Empty || p.Color() != us {
			continue
		}
		switch p.Type() {
		case Pawn:
			b.genPawnMoves(sq, kind, out)
		case Knight:
			b.genStepMoves(sq, knightOffsets[:], kind, out)
		case King:
			b.genStepMoves(sq, kingOffsets[:], kind, out)
			if kind == All {
				b.genCastles(sq, out)
			}
		case Bishop:
			b.genSliding(sq, bishopDirs[:], kind, out)
		case Rook:
			b.genSliding(sq, rookDirs[:], kind, out)
		case Queen:
			b.genSliding(sq, bishopDirs[:], kind, out)
			b.genSliding(sq, rookDirs[:], kind, out)
		}
	}
}

func (b *Board) genStepMoves(from Square, offsets []int, kind MoveKind, out *[]Move) {
	us := b.sideToMove
	for _, off := range offsets {
		to := Square(int(from) + off)
		if !to.Valid() {
			continue
		}
		target := b.squares[to]
		if target == Empty {
			if kind == All {
				*out = append(*out, newMove(from, to, flagQuiet))
			}
			continue
		}
		if target.Color() != us {
			*out = append(*out, newMove(from, to, flagCapture))
		}
	}
}

func (b *Board) genSliding(from Square, dirs []int, kind MoveKind, out *[]Move) {
	us := b.sideToMove
	for _, dir := range dirs {
		to := Square(int(from) + dir)
		for to.Valid() {
			target := b.squares[to]
			if target == Empty {
				if kind == All {
					*out = append(*out, newMove(from, to, flagQuiet))
				}
				to = Square(int(to) + dir)
				continue
			}
			if target.Color() != us {
				*out = append(*out, newMove(from, to, flagCapture))
			}
			break
		}
	}
}

func (b *Board) genPawnMoves(from Square, kind MoveKind, out *[]Move) {
	us := b.sideToMove
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	one := NewSquare(from.File(), from.Rank()+dir)
	if one.Valid() && b.squares[one] == Empty {
		if kind == All {
			b.addPawnMove(from, one, promoRank, flagQuiet, out)
		}
		if from.Rank() == startRank {
			two := NewSquare(from.File(), from.Rank()+2*dir)
			if b.squares[two] == Empty && kind == All {
				*out = append(*out, newMove(from, two, flagDoublePawn))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := NewSquare(from.File()+df, from.Rank()+dir)
		if !to.Valid() {
			continue
		}
		if to == b.epSquare {
			*out = append(*out, newMove(from, to, flagEnPassant))
			continue
		}
		target := b.squares[to]
		if target != Empty && target.Color() != us {
			b.addPawnMove(from, to, promoRank, flagCapture, out)
		}
	}
}

func (b *Board) addPawnMove(from, to Square, promoRank int, baseFlag uint16, out *[]Move) {
	if to.Rank() != promoRank {
		*out = append(*out, newMove(from, to, baseFlag))
		return
	}
	if baseFlag == flagCapture {
		*out = append(*out, newMove(from, to, flagPromoCapKnight))
		*out = append(*out, newMove(from, to, flagPromoCapBishop))
		*out = append(*out, newMove(from, to, flagPromoCapRook))
		*out = append(*out, newMove(from, to, flagPromoCapQueen))
	} else {
		*out = append(*out, newMove(from, to, flagPromoKnight))
		*out = append(*out, newMove(from, to, flagPromoBishop))
		*out = append(*out, newMove(from, to, flagPromoRook))
		*out = append(*out, newMove(from, to, flagPromoQueen))
	}
}

func (b *Board) genCastles(from Square, out *[]Move) {
	us := b.sideToMove
	rank := from.Rank()
	them := us.Other()
	if b.InCheck(us) {
		return
	}
	if (us == White && b.castling&WhiteKingSide != 0) || (us == Black && b.castling&BlackKingSide != 0) {
		f, g := NewSquare(5, rank), NewSquare(6, rank)
		if b.squares[f] == Empty && b.squares[g] == Empty &&
			!b.attacks(them, f) && !b.attacks(them, g) {
			*out = append(*out, newMove(from, g, flagKingCastle))
		}
	}
	if (us == White && b.castling&WhiteQueenSide != 0) || (us == Black && b.castling&BlackQueenSide != 0) {
		d, c, bSq := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank)
		if b.squares[d] == Empty && b.squares[c] == Empty && b.squares[bSq] == Empty &&
			!b.attacks(them, d) && !b.attacks(them, c) {
			*out = append(*out, newMove(from, c, flagQueenCastle))
		}
	}
}

// Package hashing provides Zobrist position keys and duplicate game detection.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessnote/internal/chess"
)

// Zobrist tables for pieces, castling, en passant and side to move.
var (
	zobristPiece     [16][64]uint64 // indexed by chess.Piece value
	zobristCastle    [16]uint64     // indexed by chess.CastlingRights
	zobristEnPassant [64]uint64     // indexed by target square
	zobristSide      uint64         // XORed in when Black is to move
)

func init() {
	// Fixed seed so keys are stable between runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for sq := range zobristEnPassant {
		zobristEnPassant[sq] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Zobrist returns the key of the repetition-relevant part of a position:
// placement, side to move, castling rights and en passant target.
// Clocks are not hashed.
func Zobrist(pos chess.Position) uint64 {
	key := BoardHash(pos.Board)

	if pos.ToMove == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[pos.Castling&chess.AllCastling]
	if pos.EnPassant.Valid() {
		key ^= zobristEnPassant[pos.EnPassant]
	}
	return key
}

// BoardHash returns the Zobrist key of the placement alone.
func BoardHash(board chess.Board) uint64 {
	var key uint64
	for _, sq := range board.Occupied() {
		key ^= zobristPiece[board.Get(sq)][sq]
	}
	return key
}

// WeakHash is a cheap second opinion used to reject Zobrist collisions.
func WeakHash(board chess.Board) uint64 {
	var hash uint64
	for _, sq := range board.Occupied() {
		hash = hash*31 + uint64(board.Get(sq))*64 + uint64(sq)
	}
	return hash
}

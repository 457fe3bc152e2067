package tetris

import "math/rand"

// Bag is the 7-bag piece randomizer: every refill holds each of the seven
// types exactly once in a shuffled order, so no type can repeat within
// seven draws of a refill boundary and no type can drought longer than
// twelve draws.
type Bag struct {
	rng    *rand.Rand
	pieces []PieceType
}

// NewBag creates an empty bag drawing from the given source. The first
// Next or Peek triggers a refill.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{
		rng:    rng,
		pieces: make([]PieceType, 0, PieceCount),
	}
}

// refill fills the bag with all seven types and Fisher-Yates shuffles it.
func (b *Bag) refill() {
	b.pieces = b.pieces[:0]
	for t := PieceType(0); t < PieceCount; t++ {
		b.pieces = append(b.pieces, t)
	}
	for i := len(b.pieces) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.pieces[i], b.pieces[j] = b.pieces[j], b.pieces[i]
	}
}

// Next removes and returns the next piece type, refilling the bag first
// when it is empty.
func (b *Bag) Next() PieceType {
	if len(b.pieces) == 0 {
		b.refill()
	}
	t := b.pieces[len(b.pieces)-1]
	b.pieces = b.pieces[:len(b.pieces)-1]
	return t
}

// Peek returns the piece type Next would return, without consuming it.
// Supports the next-piece preview.
func (b *Bag) Peek() PieceType {
	if len(b.pieces) == 0 {
		b.refill()
	}
	return b.pieces[len(b.pieces)-1]
}

// Remaining returns how many pieces are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pieces)
}

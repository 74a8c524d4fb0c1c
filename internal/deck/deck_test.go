package deck

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDeck(n int) Deck {
	d := make(Deck, n)
	for i := range d {
		d[i] = Flashcard{
			ID:         fmt.Sprintf("card-1-%d", i),
			Term:       fmt.Sprintf("term %d", i),
			Definition: fmt.Sprintf("definition %d", i),
		}
	}
	return d
}

func TestDeckAt(t *testing.T) {
	d := sampleDeck(2)

	card, ok := d.At(1)
	require.True(t, ok)
	assert.Equal(t, "term 1", card.Term)

	_, ok = d.At(2)
	assert.False(t, ok)

	_, ok = d.At(-1)
	assert.False(t, ok)

	_, ok = Deck(nil).At(0)
	assert.False(t, ok)
}

func TestDeckEmpty(t *testing.T) {
	assert.True(t, Deck(nil).Empty())
	assert.True(t, Deck{}.Empty())
	assert.False(t, sampleDeck(1).Empty())
	assert.Equal(t, 3, sampleDeck(3).Len())
}

func TestFlashcardHasContext(t *testing.T) {
	assert.True(t, Flashcard{Context: "Le chat dort."}.HasContext())
	assert.False(t, Flashcard{Context: "   "}.HasContext())
	assert.False(t, Flashcard{}.HasContext())
}

func TestShuffledIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{0, 1, 2, 7, 50} {
		t.Run(fmt.Sprintf("size_%d", n), func(t *testing.T) {
			original := sampleDeck(n)
			before := append([]string(nil), original.IDs()...)

			shuffled := original.Shuffled(rng)

			assert.Len(t, shuffled, n)
			assert.ElementsMatch(t, original.IDs(), shuffled.IDs())
			assert.Equal(t, before, original.IDs(), "receiver must not be reordered")
		})
	}
}

func TestShuffledReturnsCopy(t *testing.T) {
	original := sampleDeck(3)
	shuffled := original.Shuffled(rand.New(rand.NewSource(1)))

	shuffled[0].Term = "changed"
	for _, card := range original {
		assert.NotEqual(t, "changed", card.Term)
	}
}

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		name   string
		move   func(int, int) int
		cursor int
		length int
		want   int
	}{
		{"next in middle", Next, 0, 3, 1},
		{"next at end is no-op", Next, 2, 3, 2},
		{"previous in middle", Previous, 2, 3, 1},
		{"previous at start is no-op", Previous, 0, 3, 0},
		{"next on empty deck", Next, 0, 0, 0},
		{"previous on empty deck", Previous, 0, 0, 0},
		{"next on single card", Next, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.move(tt.cursor, tt.length))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 5))
	assert.Equal(t, 4, Clamp(10, 5))
	assert.Equal(t, 2, Clamp(2, 5))
	assert.Equal(t, 0, Clamp(2, 0))
}

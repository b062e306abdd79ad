package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikesPercentage(t *testing.T) {
	tests := []struct {
		name     string
		likes    int
		dislikes int
		want     int
	}{
		{"no votes defaults to midpoint", 0, 0, 50},
		{"seven of ten", 7, 3, 70},
		{"even split", 5, 5, 50},
		{"all likes", 4, 0, 100},
		{"all dislikes", 0, 4, 0},
		{"rounds down", 1, 2, 33},
		{"rounds up", 2, 1, 67},
		{"half rounds away from zero", 1, 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scran{NumberOfLikes: tt.likes, NumberOfDislikes: tt.dislikes}
			assert.Equal(t, tt.want, s.LikesPercentage())
		})
	}
}

func TestMajorityPreferred(t *testing.T) {
	a := Scran{ID: 1, NumberOfLikes: 5, NumberOfDislikes: 5}  // 50%
	b := Scran{ID: 2, NumberOfLikes: 6, NumberOfDislikes: 4}  // 60%
	c := Scran{ID: 3, NumberOfLikes: 10, NumberOfDislikes: 10} // 50%

	assert.Equal(t, b.ID, MajorityPreferred(a, b))
	assert.Equal(t, b.ID, MajorityPreferred(b, a))

	// ties always go to the first of the pair
	assert.Equal(t, a.ID, MajorityPreferred(a, c))
	assert.Equal(t, c.ID, MajorityPreferred(c, a))

	// two unvoted scrans both sit at 50, so the A side wins
	x := Scran{ID: 4}
	y := Scran{ID: 5}
	assert.Equal(t, x.ID, MajorityPreferred(x, y))
}

package pairing

import (
	"testing"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/stretchr/testify/assert"
)

const (
	w = domain.White
	b = domain.Black
	n = domain.NoColor
)

func withColors(id int, colors ...domain.Color) domain.Competitor {
	c := domain.Competitor{ID: id, Colors: colors}
	for _, color := range colors {
		if color == domain.NoColor {
			c.Opponents = append(c.Opponents, domain.ByeID)
		} else {
			c.Opponents = append(c.Opponents, 100+len(c.Opponents))
		}
	}
	return c
}

func TestColorAllocator_DecideColors(t *testing.T) {
	tests := []struct {
		name  string
		p, q  domain.Competitor
		wantP domain.Color
	}{
		{
			name:  "more black-heavy balance gets white",
			p:     withColors(1, w, b, b),
			q:     withColors(2, b, w, w),
			wantP: w,
		},
		{
			name:  "more white-heavy balance gets black",
			p:     withColors(1, w),
			q:     withColors(2, b, w),
			wantP: b,
		},
		{
			name:  "equal balance, last black gets white",
			p:     withColors(1, b, w),
			q:     withColors(2, w, b),
			wantP: b,
		},
		{
			name:  "equal balance, own last black gets white",
			p:     withColors(1, w, b),
			q:     withColors(2, b, w),
			wantP: w,
		},
		{
			name:  "bye rounds are ignored for the last color",
			p:     withColors(1, w, b, n),
			q:     withColors(2, b, w),
			wantP: w,
		},
		{
			name:  "fewer whites gets white",
			p:     withColors(1),
			q:     withColors(2, b, w, n),
			wantP: w,
		},
		{
			name:  "two blacks in a row must get white",
			p:     withColors(1, w, w, b, b),
			q:     withColors(2, b, w),
			wantP: w,
		},
		{
			name:  "opponent two whites in a row must get black",
			p:     withColors(1, w, b, w),
			q:     withColors(2, b, w, w),
			wantP: w,
		},
		{
			name:  "balance of two must get black",
			p:     withColors(1, w, b, w, w),
			q:     withColors(2, w),
			wantP: b,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocator := NewColorAllocator(testOptions(1))
			gotP, gotQ := allocator.DecideColors(tt.p, tt.q)
			assert.Equal(t, tt.wantP, gotP)
			assert.Equal(t, tt.wantP.Opposite(), gotQ)
		})
	}
}

func TestColorAllocator_CoinFlip(t *testing.T) {
	p := withColors(1, w, b)
	q := withColors(2, w, b)

	run := func(seed int64) ([]domain.Color, int) {
		obs := &countingObserver{}
		opts := testOptions(seed)
		opts.Observer = obs
		allocator := NewColorAllocator(opts)
		var got []domain.Color
		for i := 0; i < 20; i++ {
			c, _ := allocator.DecideColors(p, q)
			got = append(got, c)
		}
		return got, obs.flips
	}

	first, flips := run(42)
	second, _ := run(42)
	assert.Equal(t, first, second, "same seed must give the same colors")
	assert.Equal(t, 20, flips)
	assert.Contains(t, first, w)
	assert.Contains(t, first, b)
}

func TestMandatoryColor(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Competitor
		want domain.Color
	}{
		{name: "fresh", c: withColors(1), want: n},
		{name: "alternating", c: withColors(1, w, b, w), want: n},
		{name: "two whites", c: withColors(1, b, w, w), want: b},
		{name: "two blacks around a bye", c: withColors(1, b, n, b), want: w},
		{name: "minus two", c: withColors(1, b, w, b, b), want: w},
		{name: "conflicting obligations", c: withColors(1, b, b, b, b, w, w), want: n},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mandatoryColor(tt.c))
		})
	}
}

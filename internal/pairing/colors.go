package pairing

import (
	"math/rand"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/sirupsen/logrus"
)

// maxColorBalance is the largest |#White-#Black| a competitor may reach.
const maxColorBalance = 2

// ColorAllocator decides which side each player of a confirmed pair takes.
type ColorAllocator struct {
	rng      *rand.Rand
	log      logrus.FieldLogger
	observer Observer
}

func NewColorAllocator(opts Options) *ColorAllocator {
	opts = opts.withDefaults()
	return &ColorAllocator{
		rng:      opts.Rand,
		log:      opts.Log,
		observer: opts.Observer,
	}
}

// mandatoryColor returns the color c must receive next to stay within the
// balance bound and avoid a third identical color in a row. NoColor means
// either side is acceptable.
func mandatoryColor(c domain.Competitor) domain.Color {
	var required domain.Color
	balance := c.ColorBalance()
	switch {
	case balance <= -maxColorBalance:
		required = domain.White
	case balance >= maxColorBalance:
		required = domain.Black
	}

	played := c.PlayedColors()
	if n := len(played); n >= 2 && played[n-1] == played[n-2] {
		streak := played[n-1].Opposite()
		if required != domain.NoColor && required != streak {
			// already broken history, nothing is safe
			return domain.NoColor
		}
		required = streak
	}
	return required
}

// colorCompatible is false when both players are obliged to take the same
// color.
func colorCompatible(a, b domain.Competitor) bool {
	ma := mandatoryColor(a)
	return ma == domain.NoColor || ma != mandatoryColor(b)
}

// DecideColors returns the colors of a and b. Rules, first match wins:
// obligations from mandatoryColor, the more Black-heavy balance gets White,
// the player whose last color was Black gets White, fewer Whites gets White,
// and finally a coin flip.
func (a *ColorAllocator) DecideColors(p, q domain.Competitor) (domain.Color, domain.Color) {
	white := func(pWhite bool) (domain.Color, domain.Color) {
		if pWhite {
			return domain.White, domain.Black
		}
		return domain.Black, domain.White
	}

	mp, mq := mandatoryColor(p), mandatoryColor(q)
	if mp != domain.NoColor && mp != mq {
		return white(mp == domain.White)
	}
	if mq != domain.NoColor && mq != mp {
		return white(mq == domain.Black)
	}

	if bp, bq := p.ColorBalance(), q.ColorBalance(); bp != bq {
		return white(bp < bq)
	}

	if lp, lq := p.LastColor(), q.LastColor(); lp != lq {
		if lp == domain.Black {
			return white(true)
		}
		if lq == domain.Black {
			return white(false)
		}
	}

	if wp, wq := p.Whites(), q.Whites(); wp != wq {
		return white(wp < wq)
	}

	pWhite := a.rng.Intn(2) == 0
	whiteID := q.ID
	if pWhite {
		whiteID = p.ID
	}
	a.observer.ColorCoinFlip()
	a.log.WithFields(logrus.Fields{
		"player1": p.ID,
		"player2": q.ID,
		"white":   whiteID,
	}).Debug("color histories tied, coin flip")
	return white(pWhite)
}

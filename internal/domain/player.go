package domain

import (
	"time"
)

// Player is a club member. Rating and PeakRating are the club-wide values
// that tournament closure updates.
type Player struct {
	ID           int
	Name         string
	RegisteredAt time.Time
	Rating       int
	PeakRating   int
}

package domain

// Pairing is one board of a round. Player2 == ByeID means a bye, in which
// case Color1 is NoColor and Color2 is unused.
type Pairing struct {
	Player1 int
	Player2 int
	Color1  Color
	Color2  Color
	// Rematch is set when the pairing repeats an earlier encounter because
	// no fresh opponent was left.
	Rematch bool
}

func (p Pairing) IsBye() bool {
	return p.Player2 == ByeID
}

// White returns the id playing white, or ByeID for a bye.
func (p Pairing) White() int {
	switch {
	case p.IsBye():
		return ByeID
	case p.Color1 == White:
		return p.Player1
	default:
		return p.Player2
	}
}

func (p Pairing) Black() int {
	switch {
	case p.IsBye():
		return ByeID
	case p.Color1 == Black:
		return p.Player1
	default:
		return p.Player2
	}
}

// Swapped returns the same encounter with colors exchanged.
func (p Pairing) Swapped() Pairing {
	p.Color1, p.Color2 = p.Color2, p.Color1
	return p
}

// NewBye builds the bye pairing for id.
func NewBye(id int) Pairing {
	return Pairing{Player1: id, Player2: ByeID, Color1: NoColor, Color2: NoColor}
}

// Round is the result of pairing one round: Pairings holds the boards and
// Bye the optional bye.
type Round struct {
	Number   int
	Pairings []Pairing
	Bye      *Pairing
}

// All returns the boards followed by the bye, if any.
func (r Round) All() []Pairing {
	all := make([]Pairing, 0, len(r.Pairings)+1)
	all = append(all, r.Pairings...)
	if r.Bye != nil {
		all = append(all, *r.Bye)
	}
	return all
}

// Rematches counts boards that repeat an earlier encounter.
func (r Round) Rematches() int {
	n := 0
	for _, p := range r.Pairings {
		if p.Rematch {
			n++
		}
	}
	return n
}

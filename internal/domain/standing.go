package domain

// TieBreaks holds every tie-break of one competitor. Under the
// weighted-square policy Buchholz and BuchholzCut1 stay zero.
type TieBreaks struct {
	Buchholz        float64
	BuchholzCut1    float64
	SonnebornBerger float64
	WeightedSquare  float64
}

// Primary returns the value the policy ranks by after score.
func (t TieBreaks) Primary(policy TieBreakPolicy) float64 {
	if policy == PolicyWeightedSquare {
		return t.WeightedSquare
	}
	return t.Buchholz
}

// Standing is one line of the tournament table.
type Standing struct {
	Rank         int
	CompetitorID int
	Name         string
	Rating       int
	Score        float64
	TieBreaks    TieBreaks
}

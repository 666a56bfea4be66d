// Package tier maps continuous skill scores to discrete competitive bands.
// All mappings are pure, total and table-driven.
package tier

import "fmt"

type Tier string

const (
	Unranked Tier = "UNRANKED"
	QuintaB  Tier = "QUINTA_B"
	QuintaA  Tier = "QUINTA_A"
	CuartaB  Tier = "CUARTA_B"
	CuartaA  Tier = "CUARTA_A"
	TerceraB Tier = "TERCERA_B"
	TerceraA Tier = "TERCERA_A"
	SegundaB Tier = "SEGUNDA_B"
	SegundaA Tier = "SEGUNDA_A"
	PrimeraB Tier = "PRIMERA_B"
	PrimeraA Tier = "PRIMERA_A"
)

type band struct {
	tier  Tier
	lower float64
}

// bands is ordered top down; Classify walks it comparing against lower
// bounds, so each band covers [lower, next lower).
var bands = []band{
	{PrimeraA, 90},
	{PrimeraB, 80},
	{SegundaA, 70},
	{SegundaB, 60},
	{TerceraA, 50},
	{TerceraB, 40},
	{CuartaA, 30},
	{CuartaB, 20},
	{QuintaA, 10},
	{QuintaB, 0},
}

// Classify maps a score to its band. A nil score is UNRANKED; a negative
// score clamps into the lowest band.
func Classify(score *float64) Tier {
	if score == nil {
		return Unranked
	}
	for _, b := range bands {
		if *score >= b.lower {
			return b.tier
		}
	}
	return QuintaB
}

type Threshold struct {
	Tier  Tier
	Score float64
}

// NextThreshold returns the immediately superior tier and its lower bound.
// The top tier has no next threshold. Unranked players target the lowest
// band's entry point.
func NextThreshold(t Tier) *Threshold {
	if t == Unranked {
		return &Threshold{Tier: QuintaB, Score: 0}
	}
	for i := len(bands) - 1; i >= 0; i-- {
		if bands[i].tier != t {
			continue
		}
		if i == 0 {
			return nil
		}
		return &Threshold{Tier: bands[i-1].tier, Score: bands[i-1].lower}
	}
	return nil
}

var labels = map[Tier]string{
	Unranked: "Sin clasificar",
	QuintaB:  "Quinta B",
	QuintaA:  "Quinta A",
	CuartaB:  "Cuarta B",
	CuartaA:  "Cuarta A",
	TerceraB: "Tercera B",
	TerceraA: "Tercera A",
	SegundaB: "Segunda B",
	SegundaA: "Segunda A",
	PrimeraB: "Primera B",
	PrimeraA: "Primera A",
}

func Label(t Tier) string {
	return labels[t]
}

var colors = map[Tier]string{
	Unranked: "neutral",
	QuintaB:  "slate",
	QuintaA:  "slate",
	CuartaB:  "green",
	CuartaA:  "green",
	TerceraB: "blue",
	TerceraA: "blue",
	SegundaB: "purple",
	SegundaA: "purple",
	PrimeraB: "gold",
	PrimeraA: "gold",
}

// Color returns the display color token for a tier.
func Color(t Tier) string {
	return colors[t]
}

var groups = map[Tier]string{
	Unranked: "",
	QuintaB:  "5ta",
	QuintaA:  "5ta",
	CuartaB:  "4ta",
	CuartaA:  "4ta",
	TerceraB: "3ra",
	TerceraA: "3ra",
	SegundaB: "2da",
	SegundaA: "2da",
	PrimeraB: "1ra",
	PrimeraA: "1ra",
}

// CategoryGroup collapses the A/B split into the category name used on
// leaderboards. Unranked maps to an empty string.
func CategoryGroup(t Tier) string {
	return groups[t]
}

func Parse(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := labels[t]; !ok {
		return "", fmt.Errorf("unknown tier %q", s)
	}
	return t, nil
}

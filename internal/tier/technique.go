package tier

type TechniqueTier string

const (
	Bronce   TechniqueTier = "BRONCE"
	Plata    TechniqueTier = "PLATA"
	Oro      TechniqueTier = "ORO"
	Platino  TechniqueTier = "PLATINO"
	Diamante TechniqueTier = "DIAMANTE"
)

type techniqueBand struct {
	tier  TechniqueTier
	lower float64
}

var techniqueBands = []techniqueBand{
	{Diamante, 85},
	{Platino, 70},
	{Oro, 55},
	{Plata, 40},
	{Bronce, 0},
}

// ClassifyTechnique maps a per-technique score to its band. Scores below
// zero clamp into BRONCE.
func ClassifyTechnique(score float64) TechniqueTier {
	for _, b := range techniqueBands {
		if score >= b.lower {
			return b.tier
		}
	}
	return Bronce
}

var techniqueLabels = map[TechniqueTier]string{
	Bronce:   "Bronce",
	Plata:    "Plata",
	Oro:      "Oro",
	Platino:  "Platino",
	Diamante: "Diamante",
}

func TechniqueLabel(t TechniqueTier) string {
	return techniqueLabels[t]
}

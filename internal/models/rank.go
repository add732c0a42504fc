package models

// PoliceRank is one tier of the display-only ladder derived from wallet
// balance. Purely cosmetic, never part of any transactional write path.
type PoliceRank struct {
	Min   int64  `json:"min"`
	Label string `json:"label"`
}

// PoliceRanks is ordered by ascending minimum balance
var PoliceRanks = []PoliceRank{
	{Min: 0, Label: "Adjoint de Sécurité"},
	{Min: 1000, Label: "Gardien de la Paix"},
	{Min: 2500, Label: "Brigadier"},
	{Min: 5000, Label: "Lieutenant"},
	{Min: 7500, Label: "Capitaine"},
	{Min: 10000, Label: "Commandant"},
	{Min: 15000, Label: "Commissaire"},
	{Min: 25000, Label: "Commissaire Divisionnaire"},
	{Min: 50000, Label: "Directeur des Services Actifs"},
}

// RankFor returns the highest rank whose minimum is at or below balance
func RankFor(balance int64) PoliceRank {
	rank := PoliceRanks[0]
	for _, r := range PoliceRanks {
		if balance >= r.Min {
			rank = r
		}
	}
	return rank
}

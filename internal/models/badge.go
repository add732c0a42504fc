package models

import "time"

type BadgeType string

const (
	BadgeFirstBet    BadgeType = "FIRST_BET"
	BadgeSniper      BadgeType = "SNIPER"
	BadgeBigWinner   BadgeType = "BIG_WINNER"
	BadgeVeteran     BadgeType = "VETERAN"
	BadgeMillionaire BadgeType = "MILLIONAIRE"
	BadgeHotStreak   BadgeType = "HOT_STREAK"
)

// BadgeDefinition is display metadata for an achievement
type BadgeDefinition struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// BadgeDefinitions maps each badge type to its display metadata
var BadgeDefinitions = map[BadgeType]BadgeDefinition{
	BadgeFirstBet:    {Label: "Recrue", Description: "Premier rapport d'enquête archivé"},
	BadgeSniper:      {Label: "Sniper", Description: "Heure exacte devinée (Score 1000)"},
	BadgeBigWinner:   {Label: "Gros Bonnet", Description: "Pari de 5000₪ ou plus réussi avec profit"},
	BadgeVeteran:     {Label: "Vétéran", Description: "50 missions d'investigation effectuées"},
	BadgeMillionaire: {Label: "Millionnaire", Description: "A atteint un solde de 1 000 000 ₪"},
	BadgeHotStreak:   {Label: "En Feu", Description: "Série de 10 victoires consécutives"},
}

// BadgeResponse renders an awarded badge with its display metadata
type BadgeResponse struct {
	Type        BadgeType `json:"type"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	AwardedAt   time.Time `json:"awarded_at"`
}

// BadgeResponses attaches display metadata to awarded badges. A type
// without a definition falls back to its raw tag as the label.
func BadgeResponses(badges []Badge) []BadgeResponse {
	responses := make([]BadgeResponse, 0, len(badges))
	for _, b := range badges {
		def, ok := BadgeDefinitions[b.Type]
		if !ok {
			def = BadgeDefinition{Label: string(b.Type)}
		}
		responses = append(responses, BadgeResponse{
			Type:        b.Type,
			Label:       def.Label,
			Description: def.Description,
			AwardedAt:   b.CreatedAt,
		})
	}
	return responses
}

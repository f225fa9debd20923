package catalog

import "time"

type AuraID string

const (
	AuraLucky     AuraID = "lucky_aura"
	AuraGolden    AuraID = "golden_aura"
	AuraRainbow   AuraID = "rainbow_aura"
	AuraDivine    AuraID = "divine_aura"
	AuraCelestial AuraID = "celestial_aura"
)

type Aura struct {
	Name       string        `json:"name"`
	Coins      int64         `json:"coins"`
	Duration   string        `json:"duration"` // display label
	Lifetime   time.Duration `json:"-"`        // parsed from the label, used only when expiry is enforced
	Effect     string        `json:"effect"`
	Multiplier float64       `json:"multiplier"`
}

var Auras = map[AuraID]Aura{
	AuraLucky: {
		Name:       "Lucky Aura",
		Coins:      100000,
		Duration:   "30 min",
		Lifetime:   30 * time.Minute,
		Effect:     "+10% Better Numbers",
		Multiplier: 1.1,
	},
	AuraGolden: {
		Name:       "Golden Aura",
		Coins:      250000,
		Duration:   "30 min",
		Lifetime:   30 * time.Minute,
		Effect:     "+25% Better Numbers",
		Multiplier: 1.25,
	},
	AuraRainbow: {
		Name:       "Rainbow Aura",
		Coins:      500000,
		Duration:   "1 hour",
		Lifetime:   time.Hour,
		Effect:     "+50% Better Numbers",
		Multiplier: 1.5,
	},
	AuraDivine: {
		Name:       "Divine Aura",
		Coins:      1000000,
		Duration:   "1 hour",
		Lifetime:   time.Hour,
		Effect:     "+100% Better Numbers",
		Multiplier: 2.0,
	},
	AuraCelestial: {
		Name:       "Celestial Aura",
		Coins:      2000000,
		Duration:   "2 hours",
		Lifetime:   2 * time.Hour,
		Effect:     "+200% Better Numbers",
		Multiplier: 3.0,
	},
}

type PassID string

const (
	PassTripleGenerate PassID = "triple_generate"
	PassDoubleLuck     PassID = "double_luck"
	PassAutoGenerate   PassID = "auto_generate"
)

type GamePass struct {
	Name      string `json:"name"`
	RealPrice string `json:"real_price"`
}

var GamePasses = map[PassID]GamePass{
	PassTripleGenerate: {Name: "Triple Generate Pass", RealPrice: "14.99"},
	PassDoubleLuck:     {Name: "Double Luck Pass", RealPrice: "19.99"},
	PassAutoGenerate:   {Name: "Auto Generate Pass", RealPrice: "24.99"},
}

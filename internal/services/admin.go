package services

import (
	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
)

// Admin operations mutate the same player document through the same
// per-document lock as the player-facing ones. The capability gate lives in
// the middleware, not here.

func (ge *GameEngine) AdminAddCoins(amount int64) (int64, error) {
	var balance int64

	_, err := ge.withState(func(state *models.PlayerState) error {
		if amount <= 0 {
			return validationErrorf("amount must be positive")
		}
		state.Coins += amount
		balance = state.Coins
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (ge *GameEngine) AdminResetStats() error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		state.Stats = models.Stats{}
		return nil
	})
	return err
}

func (ge *GameEngine) AdminResetInventory() error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		for _, rarity := range catalog.RarityOrder {
			state.Inventory[rarity] = []models.OwnedItem{}
		}
		state.MarketHoldings = map[catalog.MarketItemID]int64{}
		return nil
	})
	return err
}

func (ge *GameEngine) AdminResetPrestige() error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		state.Prestige.Level = 0
		state.Prestige.Multiplier = 1.0
		state.Prestige.Points = 0
		return nil
	})
	return err
}

func (ge *GameEngine) AdminResetAll() error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		*state = *models.NewDefaultState()
		return nil
	})
	return err
}

func (ge *GameEngine) AdminGiveItem(req *models.AdminGiveItemRequest) error {
	amount := req.Amount
	if amount <= 0 {
		amount = 1
	}

	_, err := ge.withState(func(state *models.PlayerState) error {
		item, ok := catalog.FindItem(req.Rarity, req.ItemName)
		if !ok {
			return validationErrorf("unknown item: %s (%s)", req.ItemName, req.Rarity)
		}

		owned := models.OwnedItem{
			Name:   item.Name,
			Value:  item.Value,
			Icon:   item.Icon,
			Rarity: req.Rarity,
			Color:  catalog.Rarities[req.Rarity].Color,
		}
		for i := int64(0); i < amount; i++ {
			state.Inventory[req.Rarity] = append(state.Inventory[req.Rarity], owned)
		}
		return nil
	})
	return err
}

func (ge *GameEngine) AdminGiveAura(id catalog.AuraID) error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		aura, ok := catalog.Auras[id]
		if !ok {
			return validationErrorf("unknown aura: %s", id)
		}
		for _, active := range state.ActiveAuras {
			if active.ID == id {
				return validationErrorf("aura already owned")
			}
		}
		state.ActiveAuras = append(state.ActiveAuras, models.ActiveAura{
			ID:       id,
			Name:     aura.Name,
			Effect:   aura.Effect,
			Duration: aura.Duration,
		})
		return nil
	})
	return err
}

func (ge *GameEngine) AdminGivePass(id catalog.PassID) error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		if _, ok := catalog.GamePasses[id]; !ok {
			return validationErrorf("unknown game pass: %s", id)
		}
		if state.GamePasses[id] {
			return validationErrorf("game pass already owned")
		}
		state.GamePasses[id] = true
		return nil
	})
	return err
}

func (ge *GameEngine) AdminSetPrestigeLevel(level int) error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		if level < 0 {
			return validationErrorf("prestige level must not be negative")
		}
		state.Prestige.Level = level
		state.Prestige.Multiplier = 1.0 + float64(level)*0.1
		return nil
	})
	return err
}

func (ge *GameEngine) AdminSetNumberLimit(limit int64) error {
	_, err := ge.withState(func(state *models.PlayerState) error {
		if limit <= 0 {
			return validationErrorf("number limit must be positive")
		}
		state.NumberLimit = limit
		return nil
	})
	return err
}

package services

import (
	"math"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
)

// SeedMarket fills in market entries for catalog items the state has not
// traded yet. Runs on every market read so new catalog items appear in old
// saves.
func SeedMarket(state *models.PlayerState) {
	for id, item := range catalog.MarketItems {
		if _, ok := state.Market[id]; !ok {
			state.Market[id] = models.MarketEntry{
				Price:  item.BasePrice,
				Supply: item.InitialSupply,
			}
		}
	}
}

// NextPrice recomputes an item's price after its supply changed. The curve
// is base_price / sqrt(supply/initial_supply): price rises without bound as
// supply approaches zero. At supply zero the last price is kept; purchases
// are rejected instead of dividing by zero.
func NextPrice(item catalog.MarketItem, supply int64, lastPrice int64) int64 {
	if supply <= 0 {
		return lastPrice
	}
	ratio := float64(supply) / float64(item.InitialSupply)
	return int64(math.Floor(float64(item.BasePrice) / math.Sqrt(ratio)))
}

// PurchaseMarketItem debits coins, credits holdings, decrements supply and
// reprices. Rejections happen before any mutation.
func PurchaseMarketItem(state *models.PlayerState, id catalog.MarketItemID, quantity int64) error {
	item, ok := catalog.MarketItems[id]
	if !ok {
		return validationErrorf("unknown market item: %s", id)
	}
	if quantity <= 0 {
		return validationErrorf("quantity must be positive")
	}

	SeedMarket(state)
	entry := state.Market[id]

	if entry.Supply <= 0 {
		return validationErrorf("%s is sold out", item.Name)
	}
	if entry.Supply < quantity {
		return validationErrorf("not enough supply: %d available", entry.Supply)
	}

	totalCost := entry.Price * quantity
	if state.Coins < totalCost {
		return validationErrorf("not enough coins: need %d", totalCost)
	}

	state.Coins -= totalCost
	state.MarketHoldings[id] += quantity
	entry.Supply -= quantity
	entry.Price = NextPrice(item, entry.Supply, entry.Price)
	state.Market[id] = entry

	return nil
}

// MarketView assembles the per-item market info for the caller.
func MarketView(state *models.PlayerState) map[catalog.MarketItemID]models.MarketItemInfo {
	SeedMarket(state)

	view := make(map[catalog.MarketItemID]models.MarketItemInfo, len(catalog.MarketItems))
	for id, item := range catalog.MarketItems {
		entry := state.Market[id]
		view[id] = models.MarketItemInfo{
			Name:        item.Name,
			Description: item.Description,
			Icon:        item.Icon,
			Price:       entry.Price,
			Supply:      entry.Supply,
			Owned:       state.MarketHoldings[id],
		}
	}
	return view
}

package catalog_test

import (
	"testing"

	"luckroll-backend/internal/catalog"
)

func TestRarityWeightsSumToHundred(t *testing.T) {
	total := 0
	for _, rarity := range catalog.RarityOrder {
		info, ok := catalog.Rarities[rarity]
		if !ok {
			t.Fatalf("rarity %s in the order but not in the table", rarity)
		}
		if info.Chance <= 0 {
			t.Errorf("rarity %s has non-positive chance %d", rarity, info.Chance)
		}
		total += info.Chance
	}
	if total != 100 {
		t.Errorf("rarity weights sum to %d, want 100", total)
	}
	if len(catalog.Rarities) != len(catalog.RarityOrder) {
		t.Errorf("table has %d rarities, order lists %d", len(catalog.Rarities), len(catalog.RarityOrder))
	}
}

func TestEveryRarityHasItems(t *testing.T) {
	for _, rarity := range catalog.RarityOrder {
		items := catalog.ItemsByRarity[rarity]
		if len(items) == 0 {
			t.Errorf("rarity %s has no items", rarity)
			continue
		}
		for _, item := range items {
			if item.Name == "" || item.Value <= 0 {
				t.Errorf("bad item in %s: %+v", rarity, item)
			}
		}
	}
}

func TestFindItem(t *testing.T) {
	item, ok := catalog.FindItem(catalog.RarityCommon, "Wooden Sword")
	if !ok {
		t.Fatal("known item not found")
	}
	if item.Value != 10000 {
		t.Errorf("Wooden Sword value = %d, want 10000", item.Value)
	}

	if _, ok := catalog.FindItem(catalog.RarityCommon, "Excalibur"); ok {
		t.Error("found a legendary item under common")
	}
	if _, ok := catalog.FindItem("no_such_tier", "Wooden Sword"); ok {
		t.Error("found an item under an unknown tier")
	}
}

func TestMarketItems(t *testing.T) {
	if len(catalog.MarketItems) == 0 {
		t.Fatal("no market items")
	}
	for id, item := range catalog.MarketItems {
		if item.BasePrice <= 0 {
			t.Errorf("%s base price = %d, want positive", id, item.BasePrice)
		}
		if item.InitialSupply <= 0 {
			t.Errorf("%s initial supply = %d, want positive", id, item.InitialSupply)
		}
	}
}

func TestCoinPacks(t *testing.T) {
	for id, pack := range catalog.CoinPacks {
		if pack.Coins <= 0 {
			t.Errorf("pack %s grants %d coins, want positive", id, pack.Coins)
		}
		if pack.RealPrice == "" {
			t.Errorf("pack %s has no price tag", id)
		}
	}
}

func TestAuras(t *testing.T) {
	for id, aura := range catalog.Auras {
		if aura.Multiplier <= 1.0 {
			t.Errorf("aura %s multiplier = %v, want above 1.0", id, aura.Multiplier)
		}
		if aura.Coins <= 0 {
			t.Errorf("aura %s costs %d, want positive", id, aura.Coins)
		}
		if aura.Lifetime <= 0 {
			t.Errorf("aura %s has no lifetime", id)
		}
	}
}

func TestAchievements(t *testing.T) {
	for id, ach := range catalog.Achievements {
		if ach.Reward <= 0 {
			t.Errorf("achievement %s reward = %d, want positive", id, ach.Reward)
		}
		if ach.Name == "" || ach.Description == "" {
			t.Errorf("achievement %s missing name or description", id)
		}
	}
}

func TestPrestigeUpgrades(t *testing.T) {
	for id, upgrade := range catalog.PrestigeUpgrades {
		if upgrade.Cost <= 0 || upgrade.MaxLevel <= 0 || upgrade.Effect <= 0 {
			t.Errorf("upgrade %s has bad numbers: %+v", id, upgrade)
		}
	}
}

func TestDailyRewardSchedule(t *testing.T) {
	for i, reward := range catalog.DailyRewards {
		if reward.Day != i+1 {
			t.Errorf("schedule entry %d has day %d", i, reward.Day)
		}
		if reward.Coins <= 0 {
			t.Errorf("day %d pays %d coins, want positive", reward.Day, reward.Coins)
		}
		if i > 0 && reward.Coins < catalog.DailyRewards[i-1].Coins {
			t.Errorf("day %d pays less than day %d", reward.Day, reward.Day-1)
		}
	}
}

package services_test

import (
	"context"
	"testing"
	"time"

	"luckroll-backend/internal/config"
	"luckroll-backend/internal/services"
)

func testBotConfig() *config.Config {
	return &config.Config{
		BotActionMinDelay: time.Millisecond,
		BotActionMaxDelay: 5 * time.Millisecond,
		BotRoundPause:     0,
	}
}

func TestBotPoolRoster(t *testing.T) {
	pool := services.NewBotPool(testBotConfig())

	agents := pool.Agents()
	if len(agents) == 0 {
		t.Fatal("pool has no bots")
	}

	seen := make(map[string]bool, len(agents))
	for _, agent := range agents {
		if agent.Name == "" {
			t.Error("bot with empty name")
		}
		if seen[agent.Name] {
			t.Errorf("duplicate bot name %q", agent.Name)
		}
		seen[agent.Name] = true

		if agent.Coins < 10000 || agent.Coins > 100000 {
			t.Errorf("bot %s starts with %d coins, want [10000, 100000]", agent.Name, agent.Coins)
		}
		if !agent.Active {
			t.Errorf("bot %s not active at startup", agent.Name)
		}
	}
}

func TestBotPoolRunsAndStops(t *testing.T) {
	pool := services.NewBotPool(testBotConfig())

	pool.Start(context.Background())
	time.Sleep(200 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pool did not stop")
	}

	var rolls int64
	for _, agent := range pool.Agents() {
		rolls += agent.TotalRolls
	}
	if rolls == 0 {
		t.Error("no bot rolled while the pool was running")
	}
}

func TestBotPoolStopWithoutStart(t *testing.T) {
	pool := services.NewBotPool(testBotConfig())
	pool.Stop()
}

func TestBotPoolSetActive(t *testing.T) {
	pool := services.NewBotPool(testBotConfig())

	full := len(pool.Snapshot())
	if full == 0 {
		t.Fatal("empty snapshot")
	}

	name := pool.Agents()[0].Name
	if !pool.SetActive(name, false) {
		t.Fatalf("SetActive(%q) did not find the bot", name)
	}

	if got := len(pool.Snapshot()); got != full-1 {
		t.Errorf("snapshot has %d entries after deactivation, want %d", got, full-1)
	}
	// Deactivated bots stay in the roster.
	if got := len(pool.Agents()); got != full {
		t.Errorf("roster has %d entries after deactivation, want %d", got, full)
	}

	if pool.SetActive("NoSuchBot", false) {
		t.Error("SetActive matched a bot that does not exist")
	}

	if !pool.SetActive(name, true) {
		t.Fatalf("SetActive(%q) did not find the bot on reactivation", name)
	}
	if got := len(pool.Snapshot()); got != full {
		t.Errorf("snapshot has %d entries after reactivation, want %d", got, full)
	}
}

func TestBotPoolSnapshotUnderLoad(t *testing.T) {
	pool := services.NewBotPool(testBotConfig())

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	defer func() {
		cancel()
		pool.Stop()
	}()

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		for _, entry := range pool.Snapshot() {
			if entry.TotalRolls < 0 || entry.BestNumber < 0 {
				t.Fatalf("torn snapshot entry: %+v", entry)
			}
		}
	}
}

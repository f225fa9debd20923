package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/config"
	"luckroll-backend/internal/models"
)

// botRollLimit is the fixed ceiling bots roll against; bots do not buy
// limit increases.
const botRollLimit int64 = 1000000

var botNames = []string{
	"LuckyBot", "NumberNinja", "RollMaster", "CoinCollector", "GambleGuru",
	"LuckyLarry", "RollingRandy", "NumberNerd", "CoinKing", "GambleGirl",
	"LuckyLucy", "RollingRob", "NumberNick", "CoinCarla", "GambleGary",
}

// BotPool runs one goroutine per simulated player. Each bot's record is
// written only by its own goroutine; snapshot reads take the per-bot lock
// so the leaderboard never observes a torn write. The roster is fixed at
// startup — bots deactivate but are never removed.
type BotPool struct {
	bots []*botRecord

	minDelay   time.Duration
	maxDelay   time.Duration
	roundPause time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type botRecord struct {
	mu    sync.Mutex
	agent models.BotAgent
	rng   *rand.Rand
}

func NewBotPool(cfg *config.Config) *BotPool {
	pool := &BotPool{
		minDelay:   cfg.BotActionMinDelay,
		maxDelay:   cfg.BotActionMaxDelay,
		roundPause: cfg.BotRoundPause,
	}

	seed := time.Now().UnixNano()
	for i, name := range botNames {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		pool.bots = append(pool.bots, &botRecord{
			agent: models.BotAgent{
				Name:       name,
				Coins:      10000 + rng.Int63n(90001), // 10k–100k starting balance
				Active:     true,
				LastActive: time.Now().Unix(),
			},
			rng: rng,
		})
	}

	return pool
}

// Start launches the per-bot loops. Shutdown is graceful: cancellation
// stops new actions and in-flight sleeps wind down on their own.
func (p *BotPool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	for _, bot := range p.bots {
		p.wg.Add(1)
		go p.runBot(ctx, bot)
	}
}

// Stop cancels the pool and waits for every bot loop to exit.
func (p *BotPool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *BotPool) runBot(ctx context.Context, bot *botRecord) {
	defer p.wg.Done()

	for {
		// The action delay simulates human pacing; the round pause is the
		// legacy pool-wide breather between passes, folded into each cycle.
		delay := p.minDelay + time.Duration(bot.rng.Int63n(int64(p.maxDelay-p.minDelay)+1))
		timer := time.NewTimer(delay + p.roundPause)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		bot.mu.Lock()
		if bot.agent.Active {
			switch bot.rng.Intn(3) {
			case 0:
				bot.generate()
			case 1:
				bot.gamble()
			case 2:
				bot.buyItem()
			}
		}
		bot.mu.Unlock()
	}
}

// generate mirrors the player roll: same power-law transform, fixed ceiling,
// flat coin reward.
func (b *botRecord) generate() {
	base := RollNumber(b.rng, botRollLimit)
	if base > b.agent.BestNumber {
		b.agent.BestNumber = base
	}
	b.agent.TotalRolls++
	b.agent.Coins += RollReward
	b.agent.LastActive = time.Now().Unix()
}

func (b *botRecord) gamble() {
	if b.agent.Coins < 1000 {
		return
	}

	maxBet := int64(10000)
	if b.agent.Coins < maxBet {
		maxBet = b.agent.Coins
	}
	bet := 1000 + b.rng.Int63n(maxBet-1000+1)

	minVal := 1 + b.rng.Int63n(100000)
	maxVal := minVal + 100 + b.rng.Int63n(9901)

	base := RollNumber(b.rng, botRollLimit)
	won := base >= minVal && base <= maxVal

	probability := float64(maxVal-minVal) / float64(botRollLimit)
	payoutMultiplier := 1 / probability
	if payoutMultiplier > GamblePayoutCap {
		payoutMultiplier = GamblePayoutCap
	}

	if won {
		winnings := int64(float64(bet) * payoutMultiplier)
		b.agent.Coins += winnings - bet
	} else {
		b.agent.Coins -= bet
	}
	b.agent.LastActive = time.Now().Unix()
}

func (b *botRecord) buyItem() {
	if b.agent.Coins < 10000 {
		return
	}

	ids := make([]catalog.MarketItemID, 0, len(catalog.MarketItems))
	for id := range catalog.MarketItems {
		ids = append(ids, id)
	}
	item := catalog.MarketItems[ids[b.rng.Intn(len(ids))]]

	if b.agent.Coins >= item.BasePrice {
		b.agent.Coins -= item.BasePrice
		b.agent.LastActive = time.Now().Unix()
	}
}

// Snapshot returns a consistent copy of every active bot for leaderboard
// assembly.
func (p *BotPool) Snapshot() []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(p.bots))
	for _, bot := range p.bots {
		bot.mu.Lock()
		if bot.agent.Active {
			entries = append(entries, models.LeaderboardEntry{
				Name:       bot.agent.Name,
				Coins:      bot.agent.Coins,
				BestNumber: bot.agent.BestNumber,
				TotalRolls: bot.agent.TotalRolls,
			})
		}
		bot.mu.Unlock()
	}
	return entries
}

// Agents copies the full roster, inactive bots included.
func (p *BotPool) Agents() []models.BotAgent {
	agents := make([]models.BotAgent, 0, len(p.bots))
	for _, bot := range p.bots {
		bot.mu.Lock()
		agents = append(agents, bot.agent)
		bot.mu.Unlock()
	}
	return agents
}

// SetActive toggles a bot. Deactivated bots are skipped by their loop and
// by snapshots but stay in the roster.
func (p *BotPool) SetActive(name string, active bool) bool {
	for _, bot := range p.bots {
		bot.mu.Lock()
		if bot.agent.Name == name {
			bot.agent.Active = active
			bot.mu.Unlock()
			return true
		}
		bot.mu.Unlock()
	}
	return false
}

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"luckroll-backend/internal/config"
	"luckroll-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// StateStore is the Persistence Gateway contract: load the single player
// document (synthesizing the default when none exists) and save it back.
// A save is atomic with respect to partial writes.
type StateStore interface {
	LoadState() (*models.PlayerState, error)
	SaveState(state *models.PlayerState) error
}

type RedisService struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisService{
		client: client,
		ctx:    ctx,
	}, nil
}

func (s *RedisService) LoadState() (*models.PlayerState, error) {
	data, err := s.client.Get(s.ctx, KeyPlayerState).Result()
	if err == redis.Nil {
		state := models.NewDefaultState()
		if err := s.SaveState(state); err != nil {
			return nil, fmt.Errorf("failed to create default state: %v", err)
		}
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player state: %v", err)
	}

	var state models.PlayerState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player state: %v", err)
	}
	state.Normalize()

	return &state, nil
}

// SaveState writes the full document with a single SET, so a failed write
// never leaves a partially-updated document behind.
func (s *RedisService) SaveState(state *models.PlayerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal player state: %v", err)
	}

	return s.client.Set(s.ctx, KeyPlayerState, data, 0).Err()
}

func (s *RedisService) DeleteState() error {
	return s.client.Del(s.ctx, KeyPlayerState).Err()
}

func (s *RedisService) StoreAdminSession(sessionID string, username string) error {
	key := fmt.Sprintf(KeyAdminSession, sessionID)
	return s.client.Set(s.ctx, key, username, TTLAdminSession).Err()
}

func (s *RedisService) GetAdminSession(sessionID string) (string, error) {
	key := fmt.Sprintf(KeyAdminSession, sessionID)

	username, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("admin session not found")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get admin session: %v", err)
	}

	return username, nil
}

func (s *RedisService) DeleteAdminSession(sessionID string) error {
	key := fmt.Sprintf(KeyAdminSession, sessionID)
	return s.client.Del(s.ctx, key).Err()
}

func (s *RedisService) Close() error {
	return s.client.Close()
}

// MemoryStore is an in-process StateStore used by engine tests. It hands
// out deep copies so callers never share the stored document.
type MemoryStore struct {
	state    *models.PlayerState
	failSave bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadState() (*models.PlayerState, error) {
	if m.state == nil {
		return models.NewDefaultState(), nil
	}
	return copyState(m.state)
}

func (m *MemoryStore) SaveState(state *models.PlayerState) error {
	if m.failSave {
		return fmt.Errorf("simulated save failure")
	}
	copied, err := copyState(state)
	if err != nil {
		return err
	}
	m.state = copied
	return nil
}

// FailSaves toggles simulated save failures for persistence-error tests.
func (m *MemoryStore) FailSaves(fail bool) {
	m.failSave = fail
}

func copyState(state *models.PlayerState) (*models.PlayerState, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var copied models.PlayerState
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	copied.Normalize()
	return &copied, nil
}

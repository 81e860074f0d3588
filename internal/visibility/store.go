// store.go
//
// Hooomz OS — back-office data service for the Hooomz construction management application
// Copyright (c) 2026 Hooomz
//
// This file is part of hooomz-os.
// hooomz-os is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// hooomz-os is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with hooomz-os.
// If not, see <https://www.gnu.org/licenses/>.

package visibility

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/navigation"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/roles"
)

// Settings maps role -> section -> visible.
type Settings map[roles.ID]map[navigation.SectionID]bool

// settingsKey is the fixed key the settings blob is persisted under.
const settingsKey = "hooomz:visibility_settings"

// Store persists the visibility settings blob. A nil Settings from Load
// means nothing has been persisted yet.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// RedisStore keeps the settings blob in Redis under settingsKey.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore creates a RedisStore for the given address.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Load reads and decodes the settings blob.
func (r *RedisStore) Load(ctx context.Context) (Settings, error) {
	raw, err := r.Client.Get(ctx, settingsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		// A corrupt blob is treated like an absent one; defaults will be
		// recomputed and written back on the next mutation.
		return nil, nil
	}
	return s, nil
}

// Save encodes and writes the whole settings blob.
func (r *RedisStore) Save(ctx context.Context, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, settingsKey, raw, 0).Err()
}

// Ping checks Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// MemoryStore is an in-process Store used for tests and as the fallback
// when no Redis address is configured.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

// Load decodes the held blob.
func (m *MemoryStore) Load(ctx context.Context) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, nil
	}
	var s Settings
	if err := json.Unmarshal(m.blob, &s); err != nil {
		return nil, nil
	}
	return s, nil
}

// Save encodes and holds the blob.
func (m *MemoryStore) Save(ctx context.Context, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blob = raw
	m.mu.Unlock()
	return nil
}

package energycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/shiji-energy/internal/domain/energy"
)

// ValkeyStore caches day profiles in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration) *ValkeyStore {
	if prefix == "" {
		prefix = "energy"
	}
	return &ValkeyStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *ValkeyStore) GetDayProfile(ctx context.Context, userID int64, date, revision string) ([]energy.HourRecord, bool, error) {
	cmd := s.client.B().Get().Key(s.profileKey(userID, date, revision)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var records []energy.HourRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, false, err
	}
	return records, true, nil
}

func (s *ValkeyStore) SetDayProfile(ctx context.Context, userID int64, date, revision string, records []energy.HourRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.profileKey(userID, date, revision)).Value(string(payload))
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) profileKey(userID int64, date, revision string) string {
	return fmt.Sprintf("%s:day:%d:%s:%s", s.prefix, userID, date, revision)
}

var _ energy.ProfileCache = (*ValkeyStore)(nil)

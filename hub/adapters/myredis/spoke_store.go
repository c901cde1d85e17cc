package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"lgsmfleet/apierr"
	"lgsmfleet/helpers"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	spokePrefix   = "spoke"
	addrPrefix    = "spoke_addr"
	spokeIDSeqKey = "spoke_next_id"
)

type spokeRecord struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

type spokeStore struct {
	client  redis.UniversalClient
	records *records[domain.Spoke]
}

// NewSpokeStore creates a SpokeStore. Spokes live under spoke:{id} as JSON,
// with spoke_addr:{ip}:{port} pointing at the id so re-registration updates in place.
func NewSpokeStore(client redis.UniversalClient) interfaces.SpokeStore {
	client = helpers.NilPanic(client, "myredis.spoke_store.go: client is required")
	marshal := func(s domain.Spoke) ([]byte, error) { return json.Marshal(spokeRecord(s)) }
	unmarshal := func(b []byte) (domain.Spoke, error) {
		var r spokeRecord
		err := json.Unmarshal(b, &r)
		return domain.Spoke(r), err
	}
	return &spokeStore{
		client:  client,
		records: newRecords(client, spokePrefix, marshal, unmarshal),
	}
}

func (s *spokeStore) List(ctx context.Context) ([]domain.Spoke, error) {
	spokes, err := s.records.list(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(spokes, func(i, j int) bool { return spokes[i].ID < spokes[j].ID })
	return spokes, nil
}

func (s *spokeStore) Get(ctx context.Context, id int64) (domain.Spoke, error) {
	sp, err := s.records.read(ctx, strconv.FormatInt(id, 10))
	if apierr.IsEntityNotFoundError(err) {
		return domain.Spoke{}, apierr.NewEntityNotFoundError("Spoke not found", err)
	}
	return sp, err
}

func (s *spokeStore) Add(ctx context.Context, sp domain.Spoke) (domain.Spoke, error) {
	id, err := s.idFor(ctx, sp)
	if err != nil {
		return domain.Spoke{}, err
	}
	sp.ID = id
	if err := s.records.write(ctx, strconv.FormatInt(id, 10), sp); err != nil {
		return domain.Spoke{}, err
	}
	return sp, nil
}

// idFor returns the id already bound to the spoke's address, or binds a new one.
func (s *spokeStore) idFor(ctx context.Context, sp domain.Spoke) (int64, error) {
	addrKey := addrKey(sp)
	id, err := s.client.Get(ctx, addrKey).Int64()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, apierr.NewInternalServerError("Redis read key error", fmt.Errorf("can't read spoke address index (key='%s'), err: %w", addrKey, err))
	}

	next, err := s.client.Incr(ctx, spokeIDSeqKey).Result()
	if err != nil {
		return 0, apierr.NewInternalServerError("Redis incr error", fmt.Errorf("can't allocate spoke id, err: %w", err))
	}
	won, err := s.client.SetNX(ctx, addrKey, next, 0).Result()
	if err != nil {
		return 0, apierr.NewInternalServerError("Redis write key error", fmt.Errorf("can't write spoke address index (key='%s'), err: %w", addrKey, err))
	}
	if won {
		return next, nil
	}
	// A concurrent registration of the same address bound it first.
	id, err = s.client.Get(ctx, addrKey).Int64()
	if err != nil {
		return 0, apierr.NewInternalServerError("Redis read key error", fmt.Errorf("can't read spoke address index (key='%s'), err: %w", addrKey, err))
	}
	return id, nil
}

func (s *spokeStore) Delete(ctx context.Context, id int64) error {
	sp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, addrKey(sp)).Err(); err != nil {
		return apierr.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete spoke address index, err: %w", err))
	}
	return s.records.delete(ctx, strconv.FormatInt(id, 10))
}

func addrKey(sp domain.Spoke) string {
	return fmt.Sprintf("%s:%s:%d", addrPrefix, sp.IP, sp.Port)
}

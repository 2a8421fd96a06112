package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/infra"
	"antriqu/internal/infra/repository/converter"

	"github.com/redis/go-redis/v9"
)

// RedisTicketRepository stores the collection as a redis list of JSON
// records, one element per ticket in insertion order.
type RedisTicketRepository struct {
	client redis.UniversalClient
	key    string
	logger *slog.Logger
}

func NewRedisTicketRepository(client redis.UniversalClient, key string, logger *slog.Logger) *RedisTicketRepository {
	return &RedisTicketRepository{
		client: client,
		key:    key,
		logger: logger,
	}
}

func (r *RedisTicketRepository) Load(ctx context.Context) ([]*ticket.Ticket, error) {
	items, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCacheFailure, "failed to read ticket list", err)
	}

	records := make([]converter.TicketRecord, 0, len(items))
	for _, item := range items {
		var rec converter.TicketRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to decode ticket record", err)
		}
		records = append(records, rec)
	}

	tickets, err := converter.FromRecords(records)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "invalid ticket record in redis", err)
	}
	return tickets, nil
}

// Save replaces the whole list inside a MULTI/EXEC block so readers never
// observe a partially written snapshot.
func (r *RedisTicketRepository) Save(ctx context.Context, tickets []*ticket.Ticket) error {
	values := make([]any, 0, len(tickets))
	for _, rec := range converter.ToRecords(tickets) {
		data, err := json.Marshal(rec)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to encode ticket record", err)
		}
		values = append(values, data)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		if len(values) > 0 {
			pipe.RPush(ctx, r.key, values...)
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCacheFailure, "failed to write ticket list", err)
	}
	return nil
}

func (r *RedisTicketRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCacheFailure, "failed to delete ticket list", err)
	}
	return nil
}

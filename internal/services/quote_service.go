package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/finboard/finboard/internal/models"
)

const quoteKeyPrefix = "quote:"

// ErrQuoteStoreUnavailable is returned when the server came up without
// a Redis connection.
var ErrQuoteStoreUnavailable = errors.New("quote store unavailable")

// QuoteService keeps the latest price snapshot per symbol in Redis.
type QuoteService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuoteService(client *redis.Client) *QuoteService {
	return &QuoteService{client: client, ttl: 5 * time.Minute}
}

// SetQuotes writes snapshots for all given quotes in one pipeline.
func (s *QuoteService) SetQuotes(ctx context.Context, quotes []models.Quote) error {
	if s.client == nil {
		return ErrQuoteStoreUnavailable
	}
	pipe := s.client.Pipeline()
	for _, q := range quotes {
		payload, err := json.Marshal(q)
		if err != nil {
			return err
		}
		pipe.Set(ctx, quoteKeyPrefix+q.Symbol, payload, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetQuotes fetches the latest snapshots for a list of symbols (MGET).
// Symbols without a snapshot are skipped rather than reported.
func (s *QuoteService) GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	if s.client == nil {
		return nil, ErrQuoteStoreUnavailable
	}
	if len(symbols) == 0 {
		return nil, nil
	}

	keys := make([]string, len(symbols))
	for i, sym := range symbols {
		keys[i] = quoteKeyPrefix + sym
	}

	results, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	var quotes []models.Quote
	for _, val := range results {
		payload, ok := val.(string)
		if !ok || payload == "" {
			continue
		}
		var q models.Quote
		if err := json.Unmarshal([]byte(payload), &q); err != nil {
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

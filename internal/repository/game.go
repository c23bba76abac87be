package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const tallyKey = "tally"

var ErrResultNotFound = errors.New("game result not found")

// ResultRepository keeps finished games and the running score.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	GetByID(ctx context.Context, id string) (*entity.GameResult, error)
	Tally(ctx context.Context) (*entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and counts it in the tally in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal game result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(result.ID), resultJSON, 0)
		pipe.HIncrBy(ctx, tallyKey, result.TallyField(), 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.GameResult, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game result: %w", err)
	}

	var result entity.GameResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) Tally(ctx context.Context) (*entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, tallyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &entity.Tally{}
	counters := map[string]*int{
		entity.PlayerX.String():   &tally.XWins,
		entity.PlayerO.String():   &tally.OWins,
		string(entity.StatusDraw): &tally.Draws,
	}

	for field, counter := range counters {
		value, ok := fields[field]
		if !ok {
			continue
		}

		if *counter, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("invalid tally field %s: %w", field, err)
		}
	}

	return tally, nil
}

func resultKey(id string) string {
	return "game:" + id
}

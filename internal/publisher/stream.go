package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ballsim/internal/game"
)

const FinalStream = "games.final"

// PlayByPlayStream is the stream key holding one game's at-bats.
func PlayByPlayStream(gameID string) string {
	return fmt.Sprintf("games.playbyplay.%s", gameID)
}

// StreamPublisher publishes play-by-play entries and final results to Redis Streams.
type StreamPublisher struct {
	redis *redis.Client
}

func NewStreamPublisher(redisClient *redis.Client) *StreamPublisher {
	return &StreamPublisher{redis: redisClient}
}

func entryValues(e game.Entry) (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("error marshaling entry: %w", err)
	}
	return map[string]interface{}{
		"seq":     e.Seq,
		"outcome": e.Outcome.String(),
		"data":    string(data),
	}, nil
}

func (p *StreamPublisher) PublishEntry(ctx context.Context, e game.Entry) error {
	values, err := entryValues(e)
	if err != nil {
		return err
	}
	stream := PlayByPlayStream(e.GameID)
	if err := p.redis.XAdd(ctx, &redis.XAddArgs{Stream: stream, Values: values}).Err(); err != nil {
		return fmt.Errorf("error publishing to stream %s: %w", stream, err)
	}
	return nil
}

// PublishResult publishes the final result without its entries.
func (p *StreamPublisher) PublishResult(ctx context.Context, res game.SimResult) error {
	res.Entries = nil
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("error marshaling result: %w", err)
	}
	_, err = p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: FinalStream,
		Values: map[string]interface{}{
			"game_id": res.GameID,
			"data":    string(data),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("error publishing to stream %s: %w", FinalStream, err)
	}
	return nil
}

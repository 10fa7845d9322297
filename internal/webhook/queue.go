package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const webhookQueueKey = "incident_webhook_events"

// ErrQueueEmpty очередь пуста по истечении ожидания
var ErrQueueEmpty = errors.New("webhook queue is empty")

// Queue очередь сериализованных событий
type Queue interface {
	Push(ctx context.Context, payload []byte) error
	// Pop ждёт событие не дольше timeout
	Pop(ctx context.Context, timeout time.Duration) ([]byte, error)
}

// RedisQueue очередь на списке Redis: LPUSH в голову, BRPOP с хвоста
type RedisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client, key: webhookQueueKey}
}

func (q *RedisQueue) Push(ctx context.Context, payload []byte) error {
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQueueEmpty
		}
		return nil, err
	}
	// result[0] - ключ, result[1] - значение
	return []byte(result[1]), nil
}

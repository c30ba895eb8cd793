package database

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/qixiao/douyin-lite/internal/entity"
)

type HistoryRedisStorage struct {
	client *redis.Client
	key    string
}

func NewHistoryRedisStorage(redisClient *redis.Client, key string) (*HistoryRedisStorage, error) {

	// Проверка подключения
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &HistoryRedisStorage{
		client: redisClient,
		key:    key,
	}, nil
}

func (s *HistoryRedisStorage) Load(ctx context.Context) (entity.SearchHistory, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return entity.SearchHistory{}, nil
		}
		return nil, err
	}

	var history entity.SearchHistory
	if err := json.Unmarshal(data, &history); err != nil {
		// Битая запись: чистим и начинаем с пустой истории
		logrus.WithField("key", s.key).Warnf("corrupted search history entry, purging: %v", err)
		s.client.Del(ctx, s.key)
		return entity.SearchHistory{}, nil
	}

	return history, nil
}

func (s *HistoryRedisStorage) Save(ctx context.Context, history entity.SearchHistory) error {
	return s.client.Set(ctx, s.key, history, 0).Err()
}

func (s *HistoryRedisStorage) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

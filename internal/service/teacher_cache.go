package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"yoga-studio/internal/domain"
)

const teacherListKey = "teachers:list"

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// TeacherCache guarda el listado de instructores en redis con TTL.
// Un cache nulo o caído se comporta como miss permanente.
type TeacherCache struct {
	client redisKV
	ttl    time.Duration
}

func NewTeacherCache(client *redis.Client, ttl time.Duration) *TeacherCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TeacherCache{client: client, ttl: ttl}
}

func (c *TeacherCache) GetList(ctx context.Context) ([]domain.Teacher, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, teacherListKey).Result()
	if err != nil {
		return nil, false
	}
	var teachers []domain.Teacher
	if err := json.Unmarshal([]byte(val), &teachers); err != nil {
		return nil, false
	}
	return teachers, true
}

func (c *TeacherCache) SetList(ctx context.Context, teachers []domain.Teacher) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(teachers)
	if err != nil {
		return
	}
	c.client.Set(ctx, teacherListKey, data, c.ttl)
}

package session

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so they survive process restarts.
type RedisStore struct {
	pool *redis.Pool
	ttl  time.Duration
}

// NewRedisStore creates a RedisStore connecting to addr (host:port).
func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	pool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
	}
	return &RedisStore{pool: pool, ttl: ttl}
}

func (s *RedisStore) Put(token string, userID uint64) error {
	conn := s.pool.Get()
	defer conn.Close()

	key := redisKeyPrefix + token
	var err error
	if s.ttl > 0 {
		_, err = conn.Do("SETEX", key, int(s.ttl.Seconds()), userID)
	} else {
		_, err = conn.Do("SET", key, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(token string) (uint64, bool) {
	conn := s.pool.Get()
	defer conn.Close()

	userID, err := redis.Uint64(conn.Do("GET", redisKeyPrefix+token))
	if err != nil {
		return 0, false
	}
	return userID, true
}

func (s *RedisStore) Remove(token string) {
	conn := s.pool.Get()
	defer conn.Close()

	conn.Do("DEL", redisKeyPrefix+token)
}

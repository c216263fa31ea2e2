package server

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"
)

// newRedisStorage connects the shared session and rate-limit store.
func newRedisStorage(url string) (store fiber.Storage, err error) {
	// redis.New panics when the URL is invalid or the server is unreachable.
	defer func() {
		if r := recover(); r != nil {
			store = nil
			err = fmt.Errorf("failed to connect to redis: %v", r)
		}
	}()
	return redis.New(redis.Config{URL: url}), nil
}

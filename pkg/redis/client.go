package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPoolSize = 10

// NewClient 추천 캐시, 이메일 인증 코드, 요청 제한에 공용으로 쓰는
// Redis 클라이언트를 생성한다. 연결 확인까지 마친 클라이언트만 돌려준다.
func NewClient(host string, port int, password string, db int, poolSize int) (*redis.Client, error) {
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 연결 실패: %w", err)
	}

	return client, nil
}

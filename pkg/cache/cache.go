package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLRecommend    = 5 * time.Minute  // 추천 채널 랭킹
	TTLChannel      = 2 * time.Minute  // 채널 상세
	TTLVerification = 10 * time.Minute // 이메일 인증코드
	TTLDefault      = 5 * time.Minute  // 기본값
)

// 캐시 키 접두사
const (
	PrefixRecommend    = "recommend:"
	PrefixChannel      = "channel:"
	PrefixVerification = "verify:"
)

// ErrCacheMiss 키가 없는 경우
var ErrCacheMiss = errors.New("cache miss")

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// 추천 채널 캐시
	GetRecommend(ctx context.Context, dest interface{}) error
	SetRecommend(ctx context.Context, data interface{}) error
	InvalidateRecommend(ctx context.Context) error

	// 이메일 인증코드
	SetVerificationCode(ctx context.Context, emailPrefix, code string) error
	GetVerificationCode(ctx context.Context, emailPrefix string) (string, error)
	DeleteVerificationCode(ctx context.Context, emailPrefix string) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 확인
func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get retrieves a JSON value and unmarshals into dest
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	return json.Unmarshal(data, dest)
}

// Set marshals value to JSON and stores it with a TTL
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// GetRecommend 추천 채널 랭킹 조회
func (c *redisCache) GetRecommend(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, PrefixRecommend+"channels", dest)
}

// SetRecommend 추천 채널 랭킹 저장
func (c *redisCache) SetRecommend(ctx context.Context, data interface{}) error {
	return c.Set(ctx, PrefixRecommend+"channels", data, TTLRecommend)
}

// InvalidateRecommend 추천 채널 랭킹 무효화
func (c *redisCache) InvalidateRecommend(ctx context.Context) error {
	return c.Delete(ctx, PrefixRecommend+"channels")
}

// SetVerificationCode 이메일 인증코드 저장
func (c *redisCache) SetVerificationCode(ctx context.Context, emailPrefix, code string) error {
	return c.client.Set(ctx, PrefixVerification+emailPrefix, code, TTLVerification).Err()
}

// GetVerificationCode 이메일 인증코드 조회
func (c *redisCache) GetVerificationCode(ctx context.Context, emailPrefix string) (string, error) {
	code, err := c.client.Get(ctx, PrefixVerification+emailPrefix).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return code, nil
}

// DeleteVerificationCode 이메일 인증코드 삭제
func (c *redisCache) DeleteVerificationCode(ctx context.Context, emailPrefix string) error {
	return c.Delete(ctx, PrefixVerification+emailPrefix)
}

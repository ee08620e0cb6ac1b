package redis

import (
	"context"
	"fmt"
	"time"

	"holdco-backend/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const (
	jwtPrefix       = "jwt_blacklist:"
	magicLinkPrefix = "magic_link:"
)

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{cfg: cfg}

	client.client = redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if _, err := client.client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// WriteJWTToBlacklist помещает токен в черный список до истечения его срока
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, jwtPrefix+jwtStr, true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil, если токен найден в черном списке
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, jwtPrefix+jwtStr).Err()
}

// StoreMagicLink сохраняет одноразовый токен входа для email
func (c *Client) StoreMagicLink(ctx context.Context, token, email string, ttl time.Duration) error {
	return c.client.Set(ctx, magicLinkPrefix+token, email, ttl).Err()
}

// ConsumeMagicLink возвращает email по токену и сразу удаляет его,
// токен одноразовый
func (c *Client) ConsumeMagicLink(ctx context.Context, token string) (string, error) {
	key := magicLinkPrefix + token
	email, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("magic link not found or expired: %w", err)
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return "", err
	}
	return email, nil
}

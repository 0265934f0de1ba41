package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// RankingCache 首页热销榜缓存
// 设计说明：
// 1. 热销榜是全表聚合查询,首页访问量大,用Redis缓存结果
// 2. Key设计：ranking:most_purchased:{n}
// 3. 缓存未命中返回ErrCacheMiss,由调用方回源数据库并回填
type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("缓存未命中")

// NewRankingCache 创建热销榜缓存
func NewRankingCache(client *redis.Client) *RankingCache {
	return &RankingCache{client: client, ttl: 5 * time.Minute}
}

// GetMostPurchased 读取热销榜缓存
func (c *RankingCache) GetMostPurchased(ctx context.Context, n int) ([]*catalog.RankedBook, error) {
	key := fmt.Sprintf("ranking:most_purchased:%d", n)

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, apperrors.Wrap(err, "读取热销榜缓存失败")
	}

	var books []*catalog.RankedBook
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		// 缓存内容损坏按未命中处理,回源后覆盖
		return nil, ErrCacheMiss
	}
	return books, nil
}

// SetMostPurchased 回填热销榜缓存
func (c *RankingCache) SetMostPurchased(ctx context.Context, n int, books []*catalog.RankedBook) error {
	key := fmt.Sprintf("ranking:most_purchased:%d", n)

	raw, err := json.Marshal(books)
	if err != nil {
		return apperrors.Wrap(err, "序列化热销榜失败")
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入热销榜缓存失败")
	}
	return nil
}

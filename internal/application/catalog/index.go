package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/pkg/metrics"
)

// 首页榜单长度
const indexListSize = 10

// RankingCache 热销榜缓存接口
// 由redis.RankingCache实现,测试时用内存桩替换
type RankingCache interface {
	GetMostPurchased(ctx context.Context, n int) ([]*catalog.RankedBook, error)
	SetMostPurchased(ctx context.Context, n int, books []*catalog.RankedBook) error
}

// IndexUseCase 首页用例
// 登录前:全站热销榜
// 登录后:热销榜+个性化推荐(从未买过的书)
type IndexUseCase struct {
	bookRepo catalog.Repository
	cache    RankingCache // 可以为nil(Redis未启用)
}

// NewIndexUseCase 创建首页用例
func NewIndexUseCase(bookRepo catalog.Repository, cache RankingCache) *IndexUseCase {
	return &IndexUseCase{bookRepo: bookRepo, cache: cache}
}

// IndexRequest 首页请求DTO
type IndexRequest struct {
	Viewer string // 查看者用户名,未登录为空
}

// RankedBookInfo 榜单行DTO
type RankedBookInfo struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	Units     int64  `json:"units,omitempty"` // 累计售出册数(热销榜)
}

// IndexResponse 首页响应DTO
type IndexResponse struct {
	MostPurchased []RankedBookInfo `json:"most_purchased"`
	Recommended   []RankedBookInfo `json:"recommended,omitempty"` // 仅登录顾客
}

// Execute 执行首页查询
func (uc *IndexUseCase) Execute(ctx context.Context, req IndexRequest) (*IndexResponse, error) {
	ranked, err := uc.mostPurchased(ctx)
	if err != nil {
		return nil, err
	}

	resp := &IndexResponse{MostPurchased: toRankedInfos(ranked)}

	// 登录顾客追加个性化推荐
	if req.Viewer != "" {
		recommended, err := uc.bookRepo.RecommendedFor(ctx, req.Viewer, indexListSize)
		if err != nil {
			return nil, err
		}
		resp.Recommended = toRankedInfos(recommended)
	}

	return resp, nil
}

// mostPurchased 热销榜,优先走缓存,未命中回源数据库并回填
func (uc *IndexUseCase) mostPurchased(ctx context.Context) ([]*catalog.RankedBook, error) {
	if uc.cache != nil {
		if books, err := uc.cache.GetMostPurchased(ctx, indexListSize); err == nil {
			uc.countCache("hit")
			return books, nil
		}
		uc.countCache("miss")
	}

	books, err := uc.bookRepo.MostPurchased(ctx, indexListSize)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetMostPurchased(ctx, indexListSize, books); err != nil {
			log.Printf("回填热销榜缓存失败: err=%v", err)
		}
	}
	return books, nil
}

func (uc *IndexUseCase) countCache(result string) {
	if metrics.CacheRequestsTotal != nil {
		metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"result": result})
	}
}

func toRankedInfos(books []*catalog.RankedBook) []RankedBookInfo {
	infos := make([]RankedBookInfo, len(books))
	for i, b := range books {
		infos[i] = RankedBookInfo{
			ISBN:      b.ISBN,
			Title:     b.Title,
			Price:     b.Price,
			PriceYuan: fmt.Sprintf("%.2f", float64(b.Price)/100),
			Units:     b.Units,
		}
	}
	return infos
}

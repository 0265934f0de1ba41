package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/pkg/metrics"
)

// SearchBooksUseCase 图书搜索用例
type SearchBooksUseCase struct {
	catalogService catalog.Service
}

// NewSearchBooksUseCase 创建图书搜索用例
func NewSearchBooksUseCase(catalogService catalog.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{catalogService: catalogService}
}

// SearchBooksRequest 图书搜索请求DTO
// 空字符串字段不参与过滤;Author是"名_姓"形式的搜索项
type SearchBooksRequest struct {
	Title     string
	Publisher string
	Subject   string
	Keywords  string
	Language  string
	Author    string
	SortBy    string
	Viewer    string // 查看者用户名,未登录为空
}

// BookResult 搜索结果DTO
type BookResult struct {
	ISBN            string   `json:"isbn"`
	Title           string   `json:"title"`
	Publisher       string   `json:"publisher"`
	PublicationDate string   `json:"publication_date"`
	Subject         string   `json:"subject"`
	Language        string   `json:"language"`
	StockLevel      int      `json:"stock_level"`
	Price           int64    `json:"price"`
	PriceYuan       string   `json:"price_yuan"`
	AvgScore        *float64 `json:"avg_score,omitempty"` // 按评分排序时填充
}

// SearchBooksResponse 图书搜索响应DTO
type SearchBooksResponse struct {
	Books []BookResult `json:"books"`
	Total int          `json:"total"`
}

// Execute 执行图书搜索
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*SearchBooksResponse, error) {
	start := time.Now()

	sortBy, err := catalog.ParseSortKey(req.SortBy)
	if err != nil {
		return nil, err
	}

	params := catalog.SearchParams{
		Title:     req.Title,
		Publisher: req.Publisher,
		Subject:   req.Subject,
		Keywords:  req.Keywords,
		Language:  req.Language,
		SortBy:    sortBy,
	}
	if sortBy == catalog.SortTrustedScore {
		params.TrustedBy = req.Viewer
	}

	// 作者搜索项是"名_姓"形式
	if req.Author != "" {
		name, err := catalog.ParseAuthorToken(req.Author)
		if err != nil {
			return nil, err
		}
		params.AuthorFirst = name.FirstName
		params.AuthorLast = name.LastName
	}

	results, err := uc.catalogService.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	books := make([]BookResult, len(results))
	for i, r := range results {
		books[i] = BookResult{
			ISBN:            r.Book.ISBN,
			Title:           r.Book.Title,
			Publisher:       r.Book.Publisher,
			PublicationDate: r.Book.PublicationDate.Format("2006-01-02"),
			Subject:         r.Book.Subject,
			Language:        r.Book.Language,
			StockLevel:      r.Book.StockLevel,
			Price:           r.Book.Price,
			PriceYuan:       fmt.Sprintf("%.2f", float64(r.Book.Price)/100),
			AvgScore:        r.AvgScore,
		}
	}

	if metrics.SearchTotal != nil {
		sortLabel := string(sortBy)
		if sortLabel == "" {
			sortLabel = "none"
		}
		metrics.IncCounterVec(metrics.SearchTotal, map[string]string{"sort": sortLabel})
		metrics.ObserveHistogram(metrics.SearchDuration, time.Since(start).Seconds())
	}

	return &SearchBooksResponse{Books: books, Total: len(books)}, nil
}

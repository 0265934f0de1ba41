package catalog

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/pkg/metrics"
)

// DegreeSearchUseCase 度分离搜索用例
// 从种子作者出发,沿合著关系找1度或2度可达的作者及其作品
type DegreeSearchUseCase struct {
	catalogService catalog.Service
}

// NewDegreeSearchUseCase 创建度分离搜索用例
func NewDegreeSearchUseCase(catalogService catalog.Service) *DegreeSearchUseCase {
	return &DegreeSearchUseCase{catalogService: catalogService}
}

// DegreeSearchRequest 度分离搜索请求DTO
type DegreeSearchRequest struct {
	Author string // "名_姓"形式的种子作者
	Degree int    // 1或2
}

// SeparatedAuthorInfo 度分离结果DTO
type SeparatedAuthorInfo struct {
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Books     []BookResult `json:"books"`
}

// DegreeSearchResponse 度分离搜索响应DTO
type DegreeSearchResponse struct {
	Degree  int                   `json:"degree"`
	Authors []SeparatedAuthorInfo `json:"authors"`
}

// Execute 执行度分离搜索
func (uc *DegreeSearchUseCase) Execute(ctx context.Context, req DegreeSearchRequest) (*DegreeSearchResponse, error) {
	seed, err := catalog.ParseAuthorToken(req.Author)
	if err != nil {
		return nil, err
	}

	authors, err := uc.catalogService.DegreeOfSeparation(ctx, seed, req.Degree)
	if err != nil {
		return nil, err
	}

	infos := make([]SeparatedAuthorInfo, len(authors))
	for i, a := range authors {
		books := make([]BookResult, len(a.Books))
		for j, b := range a.Books {
			books[j] = BookResult{
				ISBN:            b.ISBN,
				Title:           b.Title,
				Publisher:       b.Publisher,
				PublicationDate: b.PublicationDate.Format("2006-01-02"),
				Subject:         b.Subject,
				Language:        b.Language,
				StockLevel:      b.StockLevel,
				Price:           b.Price,
				PriceYuan:       fmt.Sprintf("%.2f", float64(b.Price)/100),
			}
		}
		infos[i] = SeparatedAuthorInfo{
			FirstName: a.AuthorName.FirstName,
			LastName:  a.AuthorName.LastName,
			Books:     books,
		}
	}

	if metrics.DegreeSearchTotal != nil {
		metrics.IncCounterVec(metrics.DegreeSearchTotal, map[string]string{
			"degree": fmt.Sprintf("%d", req.Degree),
		})
	}

	return &DegreeSearchResponse{Degree: req.Degree, Authors: infos}, nil
}

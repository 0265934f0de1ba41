package report

import (
	"context"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/report"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 销量统计窗口:最近90天(一个季度)
const salesWindow = 90 * 24 * time.Hour

// BookReportUseCase 销量报表用例(staff-only)
// 三张榜:最近一个季度销量最高的n本书、n位作者、n家出版社
type BookReportUseCase struct {
	reportRepo report.Repository
}

// NewBookReportUseCase 创建销量报表用例
func NewBookReportUseCase(reportRepo report.Repository) *BookReportUseCase {
	return &BookReportUseCase{reportRepo: reportRepo}
}

// BookReportRequest 销量报表请求DTO
type BookReportRequest struct {
	N int // 榜单长度,必须为正整数
}

// BookSalesInfo 图书销量DTO
type BookSalesInfo struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
	Units int64  `json:"units"`
}

// AuthorSalesInfo 作者销量DTO
type AuthorSalesInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Units     int64  `json:"units"`
}

// PublisherSalesInfo 出版社销量DTO
type PublisherSalesInfo struct {
	Publisher string `json:"publisher"`
	Units     int64  `json:"units"`
}

// BookReportResponse 销量报表响应DTO
type BookReportResponse struct {
	Since         string               `json:"since"` // 统计起点
	TopBooks      []BookSalesInfo      `json:"top_books"`
	TopAuthors    []AuthorSalesInfo    `json:"top_authors"`
	TopPublishers []PublisherSalesInfo `json:"top_publishers"`
}

// Execute 执行销量报表查询
func (uc *BookReportUseCase) Execute(ctx context.Context, req BookReportRequest) (*BookReportResponse, error) {
	if req.N <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "榜单长度必须是正整数")
	}

	since := time.Now().Add(-salesWindow)

	books, err := uc.reportRepo.TopBooks(ctx, since, req.N)
	if err != nil {
		return nil, err
	}

	authors, err := uc.reportRepo.TopAuthors(ctx, since, req.N)
	if err != nil {
		return nil, err
	}

	publishers, err := uc.reportRepo.TopPublishers(ctx, since, req.N)
	if err != nil {
		return nil, err
	}

	bookInfos := make([]BookSalesInfo, len(books))
	for i, row := range books {
		bookInfos[i] = BookSalesInfo{ISBN: row.ISBN, Title: row.Title, Units: row.Units}
	}

	authorInfos := make([]AuthorSalesInfo, len(authors))
	for i, row := range authors {
		authorInfos[i] = AuthorSalesInfo{FirstName: row.FirstName, LastName: row.LastName, Units: row.Units}
	}

	publisherInfos := make([]PublisherSalesInfo, len(publishers))
	for i, row := range publishers {
		publisherInfos[i] = PublisherSalesInfo{Publisher: row.Publisher, Units: row.Units}
	}

	return &BookReportResponse{
		Since:         since.Format("2006-01-02"),
		TopBooks:      bookInfos,
		TopAuthors:    authorInfos,
		TopPublishers: publisherInfos,
	}, nil
}

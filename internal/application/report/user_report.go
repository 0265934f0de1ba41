package report

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/report"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// UserReportUseCase 顾客榜单报表用例(staff-only)
// 两张榜:被信任入度最高的n位顾客、评论平均有用度最高的n位顾客
type UserReportUseCase struct {
	reportRepo report.Repository
}

// NewUserReportUseCase 创建顾客榜单用例
func NewUserReportUseCase(reportRepo report.Repository) *UserReportUseCase {
	return &UserReportUseCase{reportRepo: reportRepo}
}

// UserReportRequest 顾客榜单请求DTO
type UserReportRequest struct {
	N int // 榜单长度,必须为正整数
}

// TrustedCustomerInfo 被信任顾客DTO
type TrustedCustomerInfo struct {
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Banned       bool   `json:"banned"`
	TrustedCount int64  `json:"trusted_count"`
}

// UsefulCustomerInfo 评论有用度顾客DTO
type UsefulCustomerInfo struct {
	Username      string  `json:"username"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Banned        bool    `json:"banned"`
	AvgUsefulness float64 `json:"avg_usefulness"`
}

// UserReportResponse 顾客榜单响应DTO
type UserReportResponse struct {
	MostTrusted []TrustedCustomerInfo `json:"most_trusted"`
	MostUseful  []UsefulCustomerInfo  `json:"most_useful"`
}

// Execute 执行顾客榜单查询
func (uc *UserReportUseCase) Execute(ctx context.Context, req UserReportRequest) (*UserReportResponse, error) {
	if req.N <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "榜单长度必须是正整数")
	}

	trusted, err := uc.reportRepo.TopTrustedCustomers(ctx, req.N)
	if err != nil {
		return nil, err
	}

	useful, err := uc.reportRepo.TopUsefulCustomers(ctx, req.N)
	if err != nil {
		return nil, err
	}

	trustedInfos := make([]TrustedCustomerInfo, len(trusted))
	for i, row := range trusted {
		trustedInfos[i] = TrustedCustomerInfo{
			Username:     row.Username,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Address:      row.Address,
			Phone:        row.Phone,
			Banned:       row.Banned,
			TrustedCount: row.TrustedCount,
		}
	}

	usefulInfos := make([]UsefulCustomerInfo, len(useful))
	for i, row := range useful {
		usefulInfos[i] = UsefulCustomerInfo{
			Username:      row.Username,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Address:       row.Address,
			Phone:         row.Phone,
			Banned:        row.Banned,
			AvgUsefulness: row.AvgUsefulness,
		}
	}

	return &UserReportResponse{MostTrusted: trustedInfos, MostUseful: usefulInfos}, nil
}

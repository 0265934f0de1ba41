package customer

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// RecordOffenseUseCase 违规登记用例(管理员)
// 稽查发现违规内容时给顾客记一次,累计次数供封禁决策参考
type RecordOffenseUseCase struct {
	customerRepo customer.Repository
}

// NewRecordOffenseUseCase 创建违规登记用例
func NewRecordOffenseUseCase(customerRepo customer.Repository) *RecordOffenseUseCase {
	return &RecordOffenseUseCase{customerRepo: customerRepo}
}

// RecordOffenseRequest 违规登记请求DTO
type RecordOffenseRequest struct {
	Target string // 目标顾客用户名
}

// RecordOffenseResponse 违规登记响应DTO
type RecordOffenseResponse struct {
	Username     string `json:"username"`
	OffenseCount int    `json:"offense_count"` // 累计违规次数
}

// Execute 执行违规登记
func (uc *RecordOffenseUseCase) Execute(ctx context.Context, req RecordOffenseRequest) (*RecordOffenseResponse, error) {
	// 目标顾客必须存在
	if _, err := uc.customerRepo.FindByUsername(ctx, req.Target); err != nil {
		return nil, err
	}

	offense, err := uc.customerRepo.IncrOffense(ctx, req.Target)
	if err != nil {
		return nil, err
	}

	return &RecordOffenseResponse{
		Username:     offense.Username,
		OffenseCount: offense.OffenseCount,
	}, nil
}

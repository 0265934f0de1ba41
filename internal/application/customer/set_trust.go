package customer

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// TxManager 事务管理接口
// 由infrastructure层的mysql.TxManager实现,测试时用内存桩替换
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SetTrustUseCase 信任/不信任切换用例
//
// 业务规则:
//  1. 不能对自己表态
//  2. 目标顾客必须存在
//  3. 信任与不信任互斥:建立一侧的同时删除另一侧,
//     两条语句放在同一事务里,读者任何时刻只会看到一种关系
//  4. 重复点击幂等:已信任再点信任不报错也不产生重复边
type SetTrustUseCase struct {
	customerRepo customer.Repository
	trustRepo    customer.TrustRepository
	txManager    TxManager
}

// NewSetTrustUseCase 创建信任切换用例
func NewSetTrustUseCase(
	customerRepo customer.Repository,
	trustRepo customer.TrustRepository,
	txManager TxManager,
) *SetTrustUseCase {
	return &SetTrustUseCase{
		customerRepo: customerRepo,
		trustRepo:    trustRepo,
		txManager:    txManager,
	}
}

// SetTrustRequest 信任切换请求DTO
type SetTrustRequest struct {
	Username  string // 发起方(从JWT中提取)
	Target    string // 被表态的顾客用户名
	Direction string // trust/untrust
}

// SetTrustResponse 信任切换响应DTO
type SetTrustResponse struct {
	Target    string `json:"target"`
	Direction string `json:"direction"`
	Message   string `json:"message"`
}

// Execute 执行信任切换
func (uc *SetTrustUseCase) Execute(ctx context.Context, req SetTrustRequest) (*SetTrustResponse, error) {
	direction, err := customer.ParseTrustDirection(req.Direction)
	if err != nil {
		return nil, err
	}

	// 不能对自己表态
	if req.Username == req.Target {
		return nil, customer.ErrTrustSelf
	}

	// 目标顾客必须存在
	if _, err := uc.customerRepo.FindByUsername(ctx, req.Target); err != nil {
		return nil, err
	}

	// 建立一侧+删除另一侧,同一事务
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		switch direction {
		case customer.DirectionTrust:
			if err := uc.trustRepo.EnsureTrust(txCtx, req.Username, req.Target); err != nil {
				return err
			}
			return uc.trustRepo.DeleteUntrust(txCtx, req.Username, req.Target)
		case customer.DirectionUntrust:
			if err := uc.trustRepo.EnsureUntrust(txCtx, req.Username, req.Target); err != nil {
				return err
			}
			return uc.trustRepo.DeleteTrust(txCtx, req.Username, req.Target)
		}
		return customer.ErrInvalidDirection
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("你已信任顾客 %s", req.Target)
	if direction == customer.DirectionUntrust {
		message = fmt.Sprintf("你已不信任顾客 %s", req.Target)
	}

	return &SetTrustResponse{
		Target:    req.Target,
		Direction: string(direction),
		Message:   message,
	}, nil
}

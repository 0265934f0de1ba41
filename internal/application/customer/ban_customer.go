package customer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/customer"
	"github.com/xiebiao/bookmall/pkg/mq"
)

// BanCustomerUseCase 封禁切换用例(管理员)
// 每次调用翻转目标顾客的封禁状态:已封禁则解封,未封禁则封禁
type BanCustomerUseCase struct {
	customerRepo customer.Repository
	publisher    mq.EventPublisher // 可以为nil(RabbitMQ未启用)
}

// NewBanCustomerUseCase 创建封禁切换用例
func NewBanCustomerUseCase(customerRepo customer.Repository, publisher mq.EventPublisher) *BanCustomerUseCase {
	return &BanCustomerUseCase{customerRepo: customerRepo, publisher: publisher}
}

// BanCustomerRequest 封禁切换请求DTO
type BanCustomerRequest struct {
	Target   string // 目标顾客用户名
	Operator string // 操作的管理员用户名(从JWT中提取)
}

// BanCustomerResponse 封禁切换响应DTO
type BanCustomerResponse struct {
	Username string `json:"username"`
	Banned   bool   `json:"banned"` // 切换后的状态
	Message  string `json:"message"`
}

// Execute 执行封禁切换
func (uc *BanCustomerUseCase) Execute(ctx context.Context, req BanCustomerRequest) (*BanCustomerResponse, error) {
	c, err := uc.customerRepo.FindByUsername(ctx, req.Target)
	if err != nil {
		return nil, err
	}

	banned := !c.Banned
	if err := uc.customerRepo.UpdateBanned(ctx, req.Target, banned); err != nil {
		return nil, err
	}

	// 发布状态变更事件(尽力而为)
	if uc.publisher != nil {
		event := mq.CustomerBannedEvent{
			Username: req.Target,
			Banned:   banned,
			Operator: req.Operator,
			Time:     time.Now(),
		}
		if err := uc.publisher.Publish(mq.RoutingKeyCustomerBanned, event); err != nil {
			log.Printf("发布封禁事件失败: username=%s, err=%v", req.Target, err)
		}
	}

	message := fmt.Sprintf("顾客 %s 已封禁", req.Target)
	if !banned {
		message = fmt.Sprintf("顾客 %s 已解封", req.Target)
	}

	return &BanCustomerResponse{Username: req.Target, Banned: banned, Message: message}, nil
}

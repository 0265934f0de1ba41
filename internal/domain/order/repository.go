package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 订单和明细必须在同一事务中创建(通过context传递事务)
// 2. 订单创建后不可变,接口不提供Update
type Repository interface {
	// Create 创建订单(包含订单明细)
	Create(ctx context.Context, order *Order) error

	// ListByUsername 顾客的订单列表(含明细),按下单时间倒序
	ListByUsername(ctx context.Context, username string) ([]*Order, error)
}

package cart

import (
	"context"
)

// Repository 购物车仓储接口(依赖倒置原则)
// 设计说明:
// 1. 支持事务操作(通过context传递事务DB)
// 2. Clear在结算事务内调用,与建单/扣库存同生共死
type Repository interface {
	// FindItem 查找条目,不存在返回ErrItemNotFound
	FindItem(ctx context.Context, username, isbn string) (*Item, error)

	// Create 新建条目(count=1起步)
	Create(ctx context.Context, item *Item) error

	// Save 更新条目数量
	Save(ctx context.Context, item *Item) error

	// Delete 删除条目(数量减到0时)
	Delete(ctx context.Context, username, isbn string) error

	// Lines 顾客的全部购物车行,联查书名/单价/当前库存
	Lines(ctx context.Context, username string) ([]*Line, error)

	// Clear 清空顾客购物车(结算事务内)
	Clear(ctx context.Context, username string) error
}

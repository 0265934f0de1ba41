package qa

import (
	"context"
)

// Repository 问答仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建提问
	Create(ctx context.Context, question *Question) error

	// FindByID 根据ID查找提问
	FindByID(ctx context.Context, id uint) (*Question, error)

	// ListByUsername 某顾客的全部提问,按提问时间倒序
	ListByUsername(ctx context.Context, username string) ([]*Question, error)

	// UpdateAnswer 经理回答(覆盖answer字段)
	UpdateAnswer(ctx context.Context, id uint, answer string) error
}

package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/order"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 订单和明细通过GORM关联一次写入,创建必须发生在结算事务内
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(包含订单明细)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "订单号已存在")
		}
		return apperrors.Wrap(err, "创建订单失败")
	}

	o.ID = model.ID
	for i := range model.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

// ListByUsername 顾客的订单列表(含明细),按下单时间倒序
func (r *orderRepository) ListByUsername(ctx context.Context, username string) ([]*order.Order, error) {
	var models []OrderModel
	err := getDB(ctx, r.db).
		Preload("Items").
		Where("username = ?", username).
		Order("order_time DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, nil
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.Item, len(model.Items))
	for i, m := range model.Items {
		items[i] = order.Item{ID: m.ID, OrderID: m.OrderID, ISBN: m.ISBN, Count: m.Count, Price: m.Price}
	}
	return &order.Order{
		ID:        model.ID,
		OrderNo:   model.OrderNo,
		Username:  model.Username,
		OrderTime: model.OrderTime,
		Total:     model.Total,
		Items:     items,
	}
}

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{ISBN: item.ISBN, Count: item.Count, Price: item.Price}
	}
	return &OrderModel{
		OrderNo:   o.OrderNo,
		Username:  o.Username,
		OrderTime: o.OrderTime,
		Total:     o.Total,
		Items:     items,
	}
}

package order

import (
	"time"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,Item是子实体,必须在同一事务中创建
// 2. OrderNo是业务主键(全局唯一,时间有序),ID是展示给顾客的订单号
// 3. OrderTime在创建时刻写入,此后不可变
// 4. Total冗余存储下单时刻的总金额,商家改价不影响历史订单
type Order struct {
	ID        uint
	OrderNo   string // 订单号(业务主键)
	Username  string // 买家用户名
	OrderTime time.Time
	Total     int64  // 总金额(分)
	Items     []Item // 订单明细
}

// Item 订单明细项
// Price记录下单时的单价快照,Count与结算时购物车行一致
type Item struct {
	ID      uint
	OrderID uint
	ISBN    string
	Count   int
	Price   int64 // 下单时单价(分)
}

// NewOrder 创建新订单(工厂方法)
func NewOrder(orderNo, username string, items []Item, total int64) *Order {
	return &Order{
		OrderNo:   orderNo,
		Username:  username,
		OrderTime: time.Now(),
		Total:     total,
		Items:     items,
	}
}

// CalculateTotal 根据明细实时计算总金额
// 用于校验冗余的Total字段
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Count)
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定顾客
func (o *Order) IsOwnedBy(username string) bool {
	return o.Username == username
}

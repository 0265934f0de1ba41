package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/internal/domain/order"
)

// ListOrdersUseCase 历史订单查询用例(我的订单页)
type ListOrdersUseCase struct {
	orderRepo order.Repository
	bookRepo  catalog.Repository
}

// NewListOrdersUseCase 创建历史订单查询用例
func NewListOrdersUseCase(orderRepo order.Repository, bookRepo catalog.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo, bookRepo: bookRepo}
}

// ListOrdersRequest 历史订单请求DTO
type ListOrdersRequest struct {
	Username string
}

// OrderItemInfo 订单明细DTO
type OrderItemInfo struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Count     int    `json:"count"`
	Price     int64  `json:"price"` // 下单时单价(分)
	PriceYuan string `json:"price_yuan"`
}

// OrderInfo 订单DTO
type OrderInfo struct {
	OrderID   uint            `json:"order_id"`
	OrderNo   string          `json:"order_no"`
	OrderTime string          `json:"order_time"`
	Total     int64           `json:"total"`
	TotalYuan string          `json:"total_yuan"`
	Items     []OrderItemInfo `json:"items"`
}

// ListOrdersResponse 历史订单响应DTO
type ListOrdersResponse struct {
	Orders []OrderInfo `json:"orders"`
}

// Execute 执行历史订单查询,按下单时间倒序
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	orders, err := uc.orderRepo.ListByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	// 书名按ISBN去重后补查,同一本书跨订单只查一次
	titles := make(map[string]string)
	infos := make([]OrderInfo, len(orders))
	for i, o := range orders {
		items := make([]OrderItemInfo, len(o.Items))
		for j, item := range o.Items {
			title, ok := titles[item.ISBN]
			if !ok {
				book, err := uc.bookRepo.FindByISBN(ctx, item.ISBN)
				if err != nil {
					// 图书可能已下架,订单明细仍然要能展示
					if !errors.Is(err, catalog.ErrBookNotFound) {
						return nil, err
					}
					title = ""
				} else {
					title = book.Title
				}
				titles[item.ISBN] = title
			}
			items[j] = OrderItemInfo{
				ISBN:      item.ISBN,
				Title:     title,
				Count:     item.Count,
				Price:     item.Price,
				PriceYuan: formatYuan(item.Price),
			}
		}
		infos[i] = OrderInfo{
			OrderID:   o.ID,
			OrderNo:   o.OrderNo,
			OrderTime: o.OrderTime.Format("2006-01-02 15:04:05"),
			Total:     o.Total,
			TotalYuan: formatYuan(o.Total),
			Items:     items,
		}
	}

	return &ListOrdersResponse{Orders: infos}, nil
}

func formatYuan(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

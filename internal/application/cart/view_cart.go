package cart

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// ViewCartUseCase 查看购物车用例
type ViewCartUseCase struct {
	cartRepo cart.Repository
}

// NewViewCartUseCase 创建查看购物车用例
func NewViewCartUseCase(cartRepo cart.Repository) *ViewCartUseCase {
	return &ViewCartUseCase{cartRepo: cartRepo}
}

// ViewCartRequest 查看购物车请求DTO
type ViewCartRequest struct {
	Username string
}

// CartLineItem 购物车行DTO
type CartLineItem struct {
	ISBN         string `json:"isbn"`
	Title        string `json:"title"`
	Price        int64  `json:"price"`
	PriceYuan    string `json:"price_yuan"`
	Count        int    `json:"count"`
	Subtotal     int64  `json:"subtotal"`
	SubtotalYuan string `json:"subtotal_yuan"`
	Stock        int    `json:"stock"` // 当前库存,前端据此提示缺货
}

// ViewCartResponse 查看购物车响应DTO
type ViewCartResponse struct {
	Items     []CartLineItem `json:"items"`
	Total     int64          `json:"total"`
	TotalYuan string         `json:"total_yuan"`
}

// Execute 执行查看购物车
func (uc *ViewCartUseCase) Execute(ctx context.Context, req ViewCartRequest) (*ViewCartResponse, error) {
	lines, err := uc.cartRepo.Lines(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	items := make([]CartLineItem, len(lines))
	var total int64
	for i, line := range lines {
		subtotal := line.Subtotal()
		total += subtotal
		items[i] = CartLineItem{
			ISBN:         line.ISBN,
			Title:        line.Title,
			Price:        line.Price,
			PriceYuan:    FormatYuan(line.Price),
			Count:        line.Count,
			Subtotal:     subtotal,
			SubtotalYuan: FormatYuan(subtotal),
			Stock:        line.Stock,
		}
	}

	return &ViewCartResponse{Items: items, Total: total, TotalYuan: FormatYuan(total)}, nil
}

// FormatYuan 分转元显示
func FormatYuan(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

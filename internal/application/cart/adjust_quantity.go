package cart

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// AdjustQuantityUseCase 调整购物车数量用例
// 业务规则:increase数量+1;decrease数量-1,减到0整行删除
type AdjustQuantityUseCase struct {
	cartRepo cart.Repository
}

// NewAdjustQuantityUseCase 创建调整数量用例
func NewAdjustQuantityUseCase(cartRepo cart.Repository) *AdjustQuantityUseCase {
	return &AdjustQuantityUseCase{cartRepo: cartRepo}
}

// AdjustQuantityRequest 调整数量请求DTO
type AdjustQuantityRequest struct {
	Username string
	ISBN     string
	Action   string // increase/decrease
}

// AdjustQuantityResponse 调整数量响应DTO
// Removed为true时该行已被删除,Count为0
type AdjustQuantityResponse struct {
	ISBN    string `json:"isbn"`
	Count   int    `json:"count"`
	Removed bool   `json:"removed"`
}

// Execute 执行数量调整
func (uc *AdjustQuantityUseCase) Execute(ctx context.Context, req AdjustQuantityRequest) (*AdjustQuantityResponse, error) {
	action, err := cart.ParseQuantityAction(req.Action)
	if err != nil {
		return nil, err
	}

	item, err := uc.cartRepo.FindItem(ctx, req.Username, req.ISBN)
	if err != nil {
		return nil, err
	}

	switch action {
	case cart.ActionIncrease:
		item.Count++
		if err := uc.cartRepo.Save(ctx, item); err != nil {
			return nil, err
		}
	case cart.ActionDecrease:
		item.Count--
		if item.Count <= 0 {
			if err := uc.cartRepo.Delete(ctx, req.Username, req.ISBN); err != nil {
				return nil, err
			}
			return &AdjustQuantityResponse{ISBN: req.ISBN, Count: 0, Removed: true}, nil
		}
		if err := uc.cartRepo.Save(ctx, item); err != nil {
			return nil, err
		}
	}

	return &AdjustQuantityResponse{ISBN: req.ISBN, Count: item.Count}, nil
}

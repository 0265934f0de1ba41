package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/catalog"
)

// AddToCartUseCase 加入购物车用例
// 业务规则:同一本书重复加入时数量+1,不产生第二行
type AddToCartUseCase struct {
	cartRepo cart.Repository
	bookRepo catalog.Repository
}

// NewAddToCartUseCase 创建加入购物车用例
func NewAddToCartUseCase(cartRepo cart.Repository, bookRepo catalog.Repository) *AddToCartUseCase {
	return &AddToCartUseCase{cartRepo: cartRepo, bookRepo: bookRepo}
}

// AddToCartRequest 加入购物车请求DTO
type AddToCartRequest struct {
	Username string // 从JWT中提取
	ISBN     string
}

// AddToCartResponse 加入购物车响应DTO
type AddToCartResponse struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
	Count int    `json:"count"` // 加入后的数量
}

// Execute 执行加入购物车
func (uc *AddToCartUseCase) Execute(ctx context.Context, req AddToCartRequest) (*AddToCartResponse, error) {
	// 1. 图书必须存在
	book, err := uc.bookRepo.FindByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}

	// 2. 已有条目则数量+1,否则从1起步
	item, err := uc.cartRepo.FindItem(ctx, req.Username, req.ISBN)
	if err != nil {
		if !errors.Is(err, cart.ErrItemNotFound) {
			return nil, err
		}
		item = &cart.Item{Username: req.Username, ISBN: req.ISBN, Count: 1}
		if err := uc.cartRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	} else {
		item.Count++
		if err := uc.cartRepo.Save(ctx, item); err != nil {
			return nil, err
		}
	}

	return &AddToCartResponse{ISBN: book.ISBN, Title: book.Title, Count: item.Count}, nil
}

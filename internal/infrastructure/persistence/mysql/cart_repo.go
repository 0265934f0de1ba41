package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindItem 查找条目,不存在返回ErrItemNotFound
func (r *cartRepository) FindItem(ctx context.Context, username, isbn string) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("username = ? AND isbn = ?", username, isbn).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return &cart.Item{ID: model.ID, Username: model.Username, ISBN: model.ISBN, Count: model.Count}, nil
}

// Create 新建条目
func (r *cartRepository) Create(ctx context.Context, item *cart.Item) error {
	model := &CartItemModel{Username: item.Username, ISBN: item.ISBN, Count: item.Count}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "购物车里已有这本书")
		}
		return apperrors.Wrap(err, "创建购物车条目失败")
	}
	item.ID = model.ID
	return nil
}

// Save 更新条目数量
func (r *cartRepository) Save(ctx context.Context, item *cart.Item) error {
	result := getDB(ctx, r.db).Model(&CartItemModel{}).
		Where("id = ?", item.ID).
		Update("count", item.Count)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}
	return nil
}

// Delete 删除条目(数量减到0时)
func (r *cartRepository) Delete(ctx context.Context, username, isbn string) error {
	err := getDB(ctx, r.db).
		Where("username = ? AND isbn = ?", username, isbn).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除购物车条目失败")
	}
	return nil
}

// Lines 顾客的全部购物车行,联查书名/单价/当前库存
func (r *cartRepository) Lines(ctx context.Context, username string) ([]*cart.Line, error) {
	var rows []cart.Line
	err := getDB(ctx, r.db).Table("shopping_cart_items").
		Select("shopping_cart_items.isbn, books.title, books.price, shopping_cart_items.count, books.stock_level AS stock").
		Joins("JOIN books ON books.isbn = shopping_cart_items.isbn").
		Where("shopping_cart_items.username = ?", username).
		Order("books.title").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	lines := make([]*cart.Line, len(rows))
	for i := range rows {
		lines[i] = &rows[i]
	}
	return lines, nil
}

// Clear 清空顾客购物车(结算事务内)
func (r *cartRepository) Clear(ctx context.Context, username string) error {
	err := getDB(ctx, r.db).
		Where("username = ?", username).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/internal/domain/order"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// ========================================
// 内存桩:用map模拟仓储,验证结算用例的业务逻辑
// ========================================

type fakeBookRepo struct {
	books map[string]*catalog.Book
}

func (f *fakeBookRepo) Create(ctx context.Context, book *catalog.Book, authors []catalog.AuthorName) error {
	f.books[book.ISBN] = book
	return nil
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	b, ok := f.books[isbn]
	if !ok {
		return nil, catalog.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) AuthorsByISBN(ctx context.Context, isbn string) ([]*catalog.Author, error) {
	return nil, nil
}

func (f *fakeBookRepo) Search(ctx context.Context, params catalog.SearchParams) ([]*catalog.SearchResult, error) {
	return nil, nil
}

func (f *fakeBookRepo) LockByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	return f.FindByISBN(ctx, isbn)
}

func (f *fakeBookRepo) DecrStock(ctx context.Context, isbn string, count int) error {
	b, ok := f.books[isbn]
	if !ok {
		return catalog.ErrBookNotFound
	}
	if b.StockLevel < count {
		return catalog.ErrInsufficientStock
	}
	b.StockLevel -= count
	return nil
}

func (f *fakeBookRepo) MostPurchased(ctx context.Context, n int) ([]*catalog.RankedBook, error) {
	return nil, nil
}

func (f *fakeBookRepo) RecommendedFor(ctx context.Context, username string, n int) ([]*catalog.RankedBook, error) {
	return nil, nil
}

type fakeCartRepo struct {
	lines   map[string][]*cart.Line // username → 购物车行
	cleared bool
}

func (f *fakeCartRepo) FindItem(ctx context.Context, username, isbn string) (*cart.Item, error) {
	return nil, cart.ErrItemNotFound
}

func (f *fakeCartRepo) Create(ctx context.Context, item *cart.Item) error { return nil }

func (f *fakeCartRepo) Save(ctx context.Context, item *cart.Item) error { return nil }

func (f *fakeCartRepo) Delete(ctx context.Context, username, isbn string) error { return nil }

func (f *fakeCartRepo) Lines(ctx context.Context, username string) ([]*cart.Line, error) {
	return f.lines[username], nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, username string) error {
	f.cleared = true
	f.lines[username] = nil
	return nil
}

type fakeOrderRepo struct {
	orders []*order.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) ListByUsername(ctx context.Context, username string) ([]*order.Order, error) {
	return f.orders, nil
}

// fakeTxManager 直接执行回调,不开真事务
type fakeTxManager struct{}

func (f *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ========================================
// 测试用例
// ========================================

// TestCheckout_Success 测试正常结算:建单、扣库存、清空购物车
func TestCheckout_Success(t *testing.T) {
	bookRepo := &fakeBookRepo{books: map[string]*catalog.Book{
		"9787111213826": {ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, StockLevel: 5},
		"9787115275790": {ISBN: "9787115275790", Title: "图解HTTP", Price: 4900, StockLevel: 3},
	}}
	cartRepo := &fakeCartRepo{lines: map[string][]*cart.Line{
		"zhangsan": {
			{ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, Count: 2, Stock: 5},
			{ISBN: "9787115275790", Title: "图解HTTP", Price: 4900, Count: 1, Stock: 3},
		},
	}}
	orderRepo := &fakeOrderRepo{}

	uc := NewCheckoutUseCase(cartRepo, bookRepo, orderRepo, &fakeTxManager{}, nil)

	resp, err := uc.Execute(context.Background(), CheckoutRequest{Username: "zhangsan"})
	require.NoError(t, err)

	// 总金额 = 2×139.00 + 1×49.00 = 327.00元
	assert.Equal(t, int64(32700), resp.Total)
	assert.Equal(t, "327.00", resp.TotalYuan)
	assert.Equal(t, 2, resp.ItemCount)
	assert.NotEmpty(t, resp.OrderNo)

	// 库存已扣减
	assert.Equal(t, 3, bookRepo.books["9787111213826"].StockLevel)
	assert.Equal(t, 2, bookRepo.books["9787115275790"].StockLevel)

	// 购物车已清空
	assert.True(t, cartRepo.cleared)

	// 订单明细记录了下单时的单价
	require.Len(t, orderRepo.orders, 1)
	assert.Equal(t, int64(13900), orderRepo.orders[0].Items[0].Price)
	assert.Equal(t, orderRepo.orders[0].Total, orderRepo.orders[0].CalculateTotal())
}

// TestCheckout_InsufficientStock 测试缺货:报告全部缺货行,不产生任何副作用
func TestCheckout_InsufficientStock(t *testing.T) {
	bookRepo := &fakeBookRepo{books: map[string]*catalog.Book{
		"9787111213826": {ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, StockLevel: 1},
		"9787115275790": {ISBN: "9787115275790", Title: "图解HTTP", Price: 4900, StockLevel: 0},
	}}
	cartRepo := &fakeCartRepo{lines: map[string][]*cart.Line{
		"zhangsan": {
			{ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, Count: 2, Stock: 1},
			{ISBN: "9787115275790", Title: "图解HTTP", Price: 4900, Count: 1, Stock: 0},
		},
	}}
	orderRepo := &fakeOrderRepo{}

	uc := NewCheckoutUseCase(cartRepo, bookRepo, orderRepo, &fakeTxManager{}, nil)

	_, err := uc.Execute(context.Background(), CheckoutRequest{Username: "zhangsan"})
	require.Error(t, err)

	// 错误码是库存不足,文案点名两本缺货的书
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
	assert.Contains(t, appErr.Message, "深入理解计算机系统")
	assert.Contains(t, appErr.Message, "图解HTTP")

	// 无副作用:库存不变、购物车保留、没有订单
	assert.Equal(t, 1, bookRepo.books["9787111213826"].StockLevel)
	assert.False(t, cartRepo.cleared)
	assert.Empty(t, orderRepo.orders)
}

// TestCheckout_StockChangedInTx 测试预检通过但锁内复核失败(并发扣库存场景)
func TestCheckout_StockChangedInTx(t *testing.T) {
	bookRepo := &fakeBookRepo{books: map[string]*catalog.Book{
		// 预检时购物车行的Stock快照是2,但数据库里实际只剩1
		"9787111213826": {ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, StockLevel: 1},
	}}
	cartRepo := &fakeCartRepo{lines: map[string][]*cart.Line{
		"zhangsan": {
			{ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, Count: 2, Stock: 2},
		},
	}}
	orderRepo := &fakeOrderRepo{}

	uc := NewCheckoutUseCase(cartRepo, bookRepo, orderRepo, &fakeTxManager{}, nil)

	_, err := uc.Execute(context.Background(), CheckoutRequest{Username: "zhangsan"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
	assert.Empty(t, orderRepo.orders)
	assert.False(t, cartRepo.cleared)
}

// TestCheckout_EmptyCart 测试空购物车结算
func TestCheckout_EmptyCart(t *testing.T) {
	cartRepo := &fakeCartRepo{lines: map[string][]*cart.Line{}}

	uc := NewCheckoutUseCase(cartRepo, &fakeBookRepo{books: map[string]*catalog.Book{}}, &fakeOrderRepo{}, &fakeTxManager{}, nil)

	_, err := uc.Execute(context.Background(), CheckoutRequest{Username: "zhangsan"})
	assert.ErrorIs(t, err, cart.ErrCartEmpty)
}

package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/catalog"
)

// fakeItemStore 带条目存储的购物车桩(checkout_test里的桩只管行快照)
type fakeItemStore struct {
	items map[string]*cart.Item // isbn → 条目(单顾客场景)
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: map[string]*cart.Item{}}
}

func (f *fakeItemStore) FindItem(ctx context.Context, username, isbn string) (*cart.Item, error) {
	item, ok := f.items[isbn]
	if !ok {
		return nil, cart.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeItemStore) Create(ctx context.Context, item *cart.Item) error {
	f.items[item.ISBN] = item
	return nil
}

func (f *fakeItemStore) Save(ctx context.Context, item *cart.Item) error {
	f.items[item.ISBN] = item
	return nil
}

func (f *fakeItemStore) Delete(ctx context.Context, username, isbn string) error {
	delete(f.items, isbn)
	return nil
}

func (f *fakeItemStore) Lines(ctx context.Context, username string) ([]*cart.Line, error) {
	var lines []*cart.Line
	for _, item := range f.items {
		lines = append(lines, &cart.Line{ISBN: item.ISBN, Count: item.Count})
	}
	return lines, nil
}

func (f *fakeItemStore) Clear(ctx context.Context, username string) error {
	f.items = map[string]*cart.Item{}
	return nil
}

// TestAddToCart 测试加入购物车:重复加入数量+1而不是产生第二行
func TestAddToCart(t *testing.T) {
	store := newFakeItemStore()
	bookRepo := &fakeBookRepo{books: map[string]*catalog.Book{
		"9787111213826": {ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, StockLevel: 5},
	}}
	uc := NewAddToCartUseCase(store, bookRepo)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, AddToCartRequest{Username: "zhangsan", ISBN: "9787111213826"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)

	resp, err = uc.Execute(ctx, AddToCartRequest{Username: "zhangsan", ISBN: "9787111213826"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, store.items, 1)
}

// TestAddToCart_BookNotFound 测试加入不存在的书
func TestAddToCart_BookNotFound(t *testing.T) {
	uc := NewAddToCartUseCase(newFakeItemStore(), &fakeBookRepo{books: map[string]*catalog.Book{}})

	_, err := uc.Execute(context.Background(), AddToCartRequest{Username: "zhangsan", ISBN: "0000000000000"})
	assert.ErrorIs(t, err, catalog.ErrBookNotFound)
}

// TestAdjustQuantity 测试数量调整:减到0整行删除
func TestAdjustQuantity(t *testing.T) {
	store := newFakeItemStore()
	store.items["9787111213826"] = &cart.Item{Username: "zhangsan", ISBN: "9787111213826", Count: 2}
	uc := NewAdjustQuantityUseCase(store)
	ctx := context.Background()

	t.Run("增加", func(t *testing.T) {
		resp, err := uc.Execute(ctx, AdjustQuantityRequest{Username: "zhangsan", ISBN: "9787111213826", Action: "increase"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Count)
	})

	t.Run("减少", func(t *testing.T) {
		resp, err := uc.Execute(ctx, AdjustQuantityRequest{Username: "zhangsan", ISBN: "9787111213826", Action: "decrease"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Count)
		assert.False(t, resp.Removed)
	})

	t.Run("减到0删除整行", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, err := uc.Execute(ctx, AdjustQuantityRequest{Username: "zhangsan", ISBN: "9787111213826", Action: "decrease"})
			require.NoError(t, err)
			if i == 1 {
				assert.True(t, resp.Removed)
				assert.Zero(t, resp.Count)
			}
		}
		assert.Empty(t, store.items)
	})

	t.Run("未知动作", func(t *testing.T) {
		_, err := uc.Execute(ctx, AdjustQuantityRequest{Username: "zhangsan", ISBN: "9787111213826", Action: "double"})
		assert.ErrorIs(t, err, cart.ErrInvalidAction)
	})

	t.Run("条目不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, AdjustQuantityRequest{Username: "zhangsan", ISBN: "9787111213826", Action: "increase"})
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

// TestViewCart 测试购物车展示:小计和总计换算成元
func TestViewCart(t *testing.T) {
	cartRepo := &fakeCartRepo{lines: map[string][]*cart.Line{
		"zhangsan": {
			{ISBN: "9787111213826", Title: "深入理解计算机系统", Price: 13900, Count: 2, Stock: 5},
			{ISBN: "9787115275790", Title: "图解HTTP", Price: 4900, Count: 1, Stock: 3},
		},
	}}
	uc := NewViewCartUseCase(cartRepo)

	resp, err := uc.Execute(context.Background(), ViewCartRequest{Username: "zhangsan"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(27800), resp.Items[0].Subtotal)
	assert.Equal(t, "278.00", resp.Items[0].SubtotalYuan)
	assert.Equal(t, int64(32700), resp.Total)
	assert.Equal(t, "327.00", resp.TotalYuan)
}

// TestFormatYuan 测试分转元
func TestFormatYuan(t *testing.T) {
	assert.Equal(t, "0.00", FormatYuan(0))
	assert.Equal(t, "0.05", FormatYuan(5))
	assert.Equal(t, "139.00", FormatYuan(13900))
	assert.Equal(t, "1.23", FormatYuan(123))
}

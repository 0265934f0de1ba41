package cart

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/internal/domain/order"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/metrics"
	"github.com/xiebiao/bookmall/pkg/mq"
)

// TxManager 事务管理接口
// 由infrastructure层的mysql.TxManager实现,测试时用内存桩替换
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CheckoutUseCase 购物车结算用例
// 这是整个商城最核心的用例,涉及事务、并发控制、业务校验
type CheckoutUseCase struct {
	cartRepo  cart.Repository
	bookRepo  catalog.Repository
	orderRepo order.Repository
	txManager TxManager
	publisher mq.EventPublisher // 可以为nil(RabbitMQ未启用)
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	cartRepo cart.Repository,
	bookRepo catalog.Repository,
	orderRepo order.Repository,
	txManager TxManager,
	publisher mq.EventPublisher,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// CheckoutRequest 结算请求DTO
type CheckoutRequest struct {
	Username string // 从JWT中提取
}

// CheckoutResponse 结算响应DTO
type CheckoutResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	ItemCount int    `json:"item_count"`
	OrderTime string `json:"order_time"`
}

// Execute 执行结算
//
// 防止超卖的完整流程:
//  1. 读购物车,逐行对照当前库存做预检,把全部缺货行一次性报给顾客
//  2. 预检通过后开事务:SELECT FOR UPDATE逐本锁定图书行
//  3. 锁内重新校验库存(预检和加锁之间别的结算可能已扣走库存)
//  4. 以锁定时的价格建订单和明细
//  5. 条件UPDATE扣减库存,清空购物车,COMMIT释放锁
//
// 任何一步失败整个事务回滚:订单不会产生,库存不会减少,购物车原样保留
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	start := time.Now()

	// 1. 读购物车
	lines, err := uc.cartRepo.Lines(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		uc.countResult("empty_cart")
		return nil, cart.ErrCartEmpty
	}

	// 2. 预检:收集全部缺货行,让顾客一次看到所有问题
	var shortages []string
	for _, line := range lines {
		if line.Stock < line.Count {
			shortages = append(shortages, shortageMessage(line.Title, line.Stock, line.Count))
		}
	}
	if len(shortages) > 0 {
		uc.countResult("insufficient_stock")
		return nil, apperrors.New(apperrors.ErrCodeInsufficientStock, strings.Join(shortages, "\n"))
	}

	// 3. 事务内加锁复核并建单
	var created *order.Order
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		items := make([]order.Item, len(lines))
		var total int64

		for i, line := range lines {
			// SELECT FOR UPDATE锁定图书行,并发结算在此排队
			book, err := uc.bookRepo.LockByISBN(txCtx, line.ISBN)
			if err != nil {
				return err
			}

			// 锁内重新校验:预检之后库存可能已被并发结算扣走
			if book.StockLevel < line.Count {
				return apperrors.New(apperrors.ErrCodeInsufficientStock,
					shortageMessage(book.Title, book.StockLevel, line.Count))
			}

			// 用锁定时的数据库价格,不信任读购物车时的快照
			items[i] = order.Item{ISBN: line.ISBN, Count: line.Count, Price: book.Price}
			total += book.Price * int64(line.Count)
		}

		newOrder := order.NewOrder(order.GenerateOrderNo(), req.Username, items, total)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		for _, line := range lines {
			if err := uc.bookRepo.DecrStock(txCtx, line.ISBN, line.Count); err != nil {
				return err
			}
		}

		if err := uc.cartRepo.Clear(txCtx, req.Username); err != nil {
			return err
		}

		created = newOrder
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) && apperrors.GetAppError(err).Code == apperrors.ErrCodeInsufficientStock {
			uc.countResult("insufficient_stock")
		} else {
			uc.countResult("failure")
		}
		return nil, err
	}

	// 4. 事务已提交,发布建单事件(尽力而为,失败只记日志不影响订单)
	if uc.publisher != nil {
		event := mq.OrderCreatedEvent{
			OrderNo:   created.OrderNo,
			Username:  created.Username,
			Total:     created.Total,
			ItemCount: len(created.Items),
			OrderTime: created.OrderTime,
		}
		if err := uc.publisher.Publish(mq.RoutingKeyOrderCreated, event); err != nil {
			log.Printf("发布建单事件失败: OrderNo=%s, err=%v", created.OrderNo, err)
		}
	}

	uc.countResult("success")
	if metrics.CheckoutDuration != nil {
		metrics.ObserveHistogram(metrics.CheckoutDuration, time.Since(start).Seconds())
		metrics.ObserveHistogram(metrics.CheckoutAmount, float64(created.Total)/100)
	}

	return &CheckoutResponse{
		OrderID:   created.ID,
		OrderNo:   created.OrderNo,
		Total:     created.Total,
		TotalYuan: FormatYuan(created.Total),
		ItemCount: len(created.Items),
		OrderTime: created.OrderTime.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *CheckoutUseCase) countResult(result string) {
	if metrics.CheckoutTotal != nil {
		metrics.IncCounterVec(metrics.CheckoutTotal, map[string]string{"result": result})
	}
}

// shortageMessage 缺货提示文案,点名书名和实际库存
func shortageMessage(title string, stock, want int) string {
	return fmt.Sprintf("《%s》库存不足,当前库存:%d,需要:%d", title, stock, want)
}

package cart

// Item 购物车条目
// 设计说明:
// 1. (Username,ISBN)唯一:同一本书在一个顾客的购物车里只有一行
// 2. Count>=1:减到0时整行删除,不保留数量为0的行
type Item struct {
	ID       uint
	Username string
	ISBN     string
	Count    int
}

// Line 购物车展示/结算行:条目联查图书后的快照
// Stock和Price是读取时刻的值,结算事务内会重新加锁校验
type Line struct {
	ISBN  string
	Title string
	Price int64 // 单价(分)
	Count int
	Stock int
}

// Subtotal 行小计(分)
func (l Line) Subtotal() int64 {
	return l.Price * int64(l.Count)
}

// QuantityAction 数量调整动作
// POST表单的"increase/decrease"在边界处解码成枚举后穷举分发
type QuantityAction string

const (
	ActionIncrease QuantityAction = "increase"
	ActionDecrease QuantityAction = "decrease"
)

// ParseQuantityAction 解析数量调整动作
func ParseQuantityAction(s string) (QuantityAction, error) {
	switch QuantityAction(s) {
	case ActionIncrease, ActionDecrease:
		return QuantityAction(s), nil
	default:
		return "", ErrInvalidAction
	}
}

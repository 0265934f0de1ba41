package customer

import (
	"time"
)

// Customer 顾客实体(聚合根)
// 设计说明:
// 1. Username是业务主键,购物车/订单/评论/信任关系都以它为外键
// 2. 密码bcrypt加密存储,不暴露明文
// 3. Banned由管理员切换,被封禁顾客不能发表评论
// 4. Staff标记经理账号(报表、答疑等staff-only操作)
type Customer struct {
	ID        uint
	Username  string
	Password  string // bcrypt哈希值
	FirstName string
	LastName  string
	Address   string
	Phone     string
	Banned    bool
	Staff     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer 创建新顾客(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewCustomer(username, hashedPassword, firstName, lastName, address, phone string) *Customer {
	now := time.Now()
	return &Customer{
		Username:  username,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Address:   address,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TrustDirection 信任切换方向
// 设计说明:POST表单里"哪个字段出现"式的分支在边界处解码成这个枚举,
// 后续全部走穷举匹配,不再做顺序成员检查
type TrustDirection string

const (
	DirectionTrust   TrustDirection = "trust"
	DirectionUntrust TrustDirection = "untrust"
)

// ParseTrustDirection 解析信任方向
func ParseTrustDirection(s string) (TrustDirection, error) {
	switch TrustDirection(s) {
	case DirectionTrust, DirectionUntrust:
		return TrustDirection(s), nil
	default:
		return "", ErrInvalidDirection
	}
}

// TrustStatus 评论展示用的信任标注
// 每条评论相对查看者计算,不落库
type TrustStatus string

const (
	TrustStatusSelf    TrustStatus = "self"    // 查看者本人的评论
	TrustStatusTrust   TrustStatus = "trust"   // 查看者信任评论作者
	TrustStatusUntrust TrustStatus = "untrust" // 查看者不信任评论作者
	TrustStatusNone    TrustStatus = ""        // 无关系
)

// Offense 违规记录
// 由管理员稽查累计,每位顾客至多一条,count只增不减
type Offense struct {
	ID           uint
	Username     string
	OffenseCount int
}

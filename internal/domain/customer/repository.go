package customer

import (
	"context"
)

// Repository 顾客仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建顾客
	Create(ctx context.Context, customer *Customer) error

	// FindByUsername 根据用户名查找顾客
	FindByUsername(ctx context.Context, username string) (*Customer, error)

	// UpdateBanned 切换封禁状态
	UpdateBanned(ctx context.Context, username string, banned bool) error

	// IncrOffense 违规次数+1,无记录时插入count=1
	IncrOffense(ctx context.Context, username string) (*Offense, error)
}

// TrustRepository 信任关系仓储接口
// 设计说明:
// 1. Trusted/Untrusted是两张带(username,target)唯一约束的边表
// 2. Ensure*是get-or-create语义:边已存在时不报错也不产生重复
// 3. Delete*忽略边不存在的情况
// 4. 切换操作(Ensure+Delete对侧)必须在同一事务中执行,
//    读者任何时刻都不会同时观察到两条边
type TrustRepository interface {
	// EnsureTrust 建立信任边(get-or-create)
	EnsureTrust(ctx context.Context, username, target string) error

	// DeleteTrust 删除信任边(不存在则忽略)
	DeleteTrust(ctx context.Context, username, target string) error

	// EnsureUntrust 建立不信任边(get-or-create)
	EnsureUntrust(ctx context.Context, username, target string) error

	// DeleteUntrust 删除不信任边(不存在则忽略)
	DeleteUntrust(ctx context.Context, username, target string) error

	// IsTrusted username是否信任target
	IsTrusted(ctx context.Context, username, target string) (bool, error)

	// IsUntrusted username是否不信任target
	IsUntrusted(ctx context.Context, username, target string) (bool, error)

	// ListTrusted username信任的全部顾客用户名
	ListTrusted(ctx context.Context, username string) ([]string, error)

	// ListUntrusted username不信任的全部顾客用户名
	ListUntrusted(ctx context.Context, username string) ([]string, error)
}

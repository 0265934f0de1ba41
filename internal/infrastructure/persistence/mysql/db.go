package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookmall/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&CustomerModel{},
		&BookModel{},
		&AuthorModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&CommentModel{},
		&TrustModel{},
		&UntrustModel{},
		&QuestionModel{},
		&OffenseModel{},
	)
}

// CustomerModel GORM顾客模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/customer/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type CustomerModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:30;not null;comment:用户名"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName string    `gorm:"size:30;not null;comment:名"`
	LastName  string    `gorm:"size:30;not null;comment:姓"`
	Address   string    `gorm:"size:100;comment:地址"`
	Phone     string    `gorm:"size:10;comment:电话"`
	Banned    bool      `gorm:"default:false;comment:是否封禁"`
	Staff     bool      `gorm:"default:false;comment:是否经理"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN是业务主键,不使用自增ID
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. 库存非负由结算事务内的条件UPDATE保证
type BookModel struct {
	ISBN            string    `gorm:"primaryKey;size:13;comment:ISBN号"`
	Title           string    `gorm:"index;size:100;not null;comment:书名"`
	Publisher       string    `gorm:"index;size:100;not null;comment:出版社"`
	PublicationDate time.Time `gorm:"type:date;comment:出版日期"`
	Subject         string    `gorm:"size:100;comment:主题分类"`
	Keywords        string    `gorm:"size:100;comment:关键词"`
	Language        string    `gorm:"size:30;comment:语言"`
	PageCount       int       `gorm:"comment:页数"`
	StockLevel      int       `gorm:"not null;comment:库存数量"`
	Price           int64     `gorm:"not null;comment:价格(分)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// AuthorModel GORM作者模型
// (isbn,first_name,last_name)唯一:同一本书同名作者只记一次
// 度分离搜索在这张表上做自连接
type AuthorModel struct {
	ID        uint   `gorm:"primaryKey"`
	ISBN      string `gorm:"uniqueIndex:idx_author_record;index;size:13;not null;comment:ISBN号"`
	FirstName string `gorm:"uniqueIndex:idx_author_record;index:idx_author_name;size:30;not null;comment:名"`
	LastName  string `gorm:"uniqueIndex:idx_author_record;index:idx_author_name;size:30;not null;comment:姓"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CartItemModel GORM购物车条目模型
// (username,isbn)唯一:一个顾客的购物车里一本书只有一行
type CartItemModel struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex:idx_cart_line;size:30;not null;comment:用户名"`
	ISBN     string `gorm:"uniqueIndex:idx_cart_line;size:13;not null;comment:ISBN号"`
	Count    int    `gorm:"not null;comment:数量"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "shopping_cart_items"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引(业务主键)
// 3. OrderTime创建后不可变
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	OrderNo   string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	Username  string           `gorm:"index;size:30;not null;comment:买家用户名"`
	OrderTime time.Time        `gorm:"index;not null;comment:下单时间"`
	Total     int64            `gorm:"not null;comment:订单总金额(分)"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID"` // 一对多关联
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "book_orders"
}

// OrderItemModel GORM订单明细模型
// Price字段记录下单时的单价快照
type OrderItemModel struct {
	ID      uint   `gorm:"primaryKey"`
	OrderID uint   `gorm:"index;not null;comment:订单ID"`
	ISBN    string `gorm:"index;size:13;not null;comment:ISBN号"`
	Count   int    `gorm:"not null;comment:购买数量"`
	Price   int64  `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "books_in_order"
}

// CommentModel GORM评论模型
// (username,isbn)唯一:每位顾客对一本书至多一条评论
type CommentModel struct {
	ID              uint      `gorm:"primaryKey"`
	Username        string    `gorm:"uniqueIndex:idx_comment_pair;size:30;not null;comment:作者用户名"`
	ISBN            string    `gorm:"uniqueIndex:idx_comment_pair;index;size:13;not null;comment:ISBN号"`
	Score           int       `gorm:"not null;comment:评分(1-10)"`
	Text            string    `gorm:"type:text;not null;comment:评论正文"`
	Time            time.Time `gorm:"comment:评论时间"`
	UselessCount    int       `gorm:"default:0;comment:无用票数"`
	UsefulCount     int       `gorm:"default:0;comment:有用票数"`
	VeryUsefulCount int       `gorm:"default:0;comment:非常有用票数"`
	UsefulnessScore float64   `gorm:"default:0;comment:有用度(派生)"`
}

// TableName 指定表名
func (CommentModel) TableName() string {
	return "comments"
}

// TrustModel GORM信任边模型
// (username,target)唯一;与UntrustModel互斥,由切换事务保证
type TrustModel struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex:idx_trust_pair;size:30;not null;comment:发起方用户名"`
	Target   string `gorm:"uniqueIndex:idx_trust_pair;index;size:30;not null;comment:被信任方用户名"`
}

// TableName 指定表名
func (TrustModel) TableName() string {
	return "trusted_customers"
}

// UntrustModel GORM不信任边模型
type UntrustModel struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex:idx_untrust_pair;size:30;not null;comment:发起方用户名"`
	Target   string `gorm:"uniqueIndex:idx_untrust_pair;index;size:30;not null;comment:被不信任方用户名"`
}

// TableName 指定表名
func (UntrustModel) TableName() string {
	return "untrusted_customers"
}

// QuestionModel GORM提问模型
type QuestionModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"index;size:30;not null;comment:提问者用户名"`
	TimeAsked time.Time `gorm:"comment:提问时间"`
	Question  string    `gorm:"type:text;not null;comment:问题"`
	Answer    string    `gorm:"type:text;not null;comment:回答(默认未回答占位)"`
}

// TableName 指定表名
func (QuestionModel) TableName() string {
	return "questions"
}

// OffenseModel GORM违规记录模型
// 每位顾客至多一条,count只增不减
type OffenseModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:30;not null;comment:用户名"`
	OffenseCount int    `gorm:"not null;comment:违规次数"`
}

// TableName 指定表名
func (OffenseModel) TableName() string {
	return "offenses"
}

package catalog

import (
	"context"
)

// SortKey 搜索结果排序方式
// 说明:最多指定一种排序,空字符串表示不排序
type SortKey string

const (
	SortNone            SortKey = ""                 // 不排序
	SortPublicationDate SortKey = "publication_date" // 出版日期升序
	SortScore           SortKey = "score"            // 全部评论平均分升序
	SortTrustedScore    SortKey = "trusted_score"    // 信任顾客评论平均分升序(需登录)
)

// ParseSortKey 解析排序方式
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortNone, SortPublicationDate, SortScore, SortTrustedScore:
		return SortKey(s), nil
	default:
		return SortNone, ErrInvalidSortKey
	}
}

// SearchParams 图书搜索参数
// 空字符串字段不参与过滤;TrustedBy只在SortTrustedScore时有值(查看者用户名)
type SearchParams struct {
	Title       string
	Publisher   string
	Subject     string
	Keywords    string
	Language    string
	AuthorFirst string
	AuthorLast  string
	SortBy      SortKey
	TrustedBy   string
}

// HasFilter 是否至少有一个过滤条件
// 全部为空的"空搜索"在进入数据库前就被拒绝
func (p SearchParams) HasFilter() bool {
	return p.Title != "" || p.Publisher != "" || p.Subject != "" ||
		p.Keywords != "" || p.Language != "" ||
		p.AuthorFirst != "" || p.AuthorLast != ""
}

// SearchResult 搜索结果行
// AvgScore在按评分排序时填充,无评论的书为nil
type SearchResult struct {
	Book     *Book
	AvgScore *float64
}

// RankedBook 销量统计行(首页推荐用)
type RankedBook struct {
	ISBN  string
	Title string
	Price int64
	Units int64 // 累计售出册数
}

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书(目录导入)
	Create(ctx context.Context, book *Book, authors []AuthorName) error

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// AuthorsByISBN 查询一本书的全部作者
	AuthorsByISBN(ctx context.Context, isbn string) ([]*Author, error)

	// Search 过滤+排序查询
	// 调用方保证params.HasFilter()为真
	Search(ctx context.Context, params SearchParams) ([]*SearchResult, error)

	// LockByISBN 悲观锁查询图书(结算时锁定库存)
	// 使用SELECT FOR UPDATE锁定行,防止并发结算超卖
	LockByISBN(ctx context.Context, isbn string) (*Book, error)

	// DecrStock 扣减库存(原子操作)
	// UPDATE时校验stock_level-count>=0,不足返回ErrInsufficientStock
	DecrStock(ctx context.Context, isbn string, count int) error

	// MostPurchased 累计销量最高的n本书
	MostPurchased(ctx context.Context, n int) ([]*RankedBook, error)

	// RecommendedFor 顾客从未购买过的n本书;username为空时返回任意n本
	RecommendedFor(ctx context.Context, username string, n int) ([]*RankedBook, error)
}

// AuthorRepository 合著关系仓储接口(度分离搜索)
type AuthorRepository interface {
	// Exists 判断作者是否在目录中出现过
	Exists(ctx context.Context, name AuthorName) (bool, error)

	// CoAuthors 与指定作者共同署名过至少一个ISBN的其他作者(去重)
	CoAuthors(ctx context.Context, name AuthorName) ([]AuthorName, error)

	// CoAuthorsOfSet 与集合中任一作者合著过的作者(去重,一次查询)
	// 用于2度搜索:先取1度集合,再一次性展开其邻居
	CoAuthorsOfSet(ctx context.Context, names []AuthorName) ([]AuthorName, error)

	// BooksByAuthor 指定作者的全部作品,按书名升序
	BooksByAuthor(ctx context.Context, name AuthorName) ([]*Book, error)
}

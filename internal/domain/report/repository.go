package report

import (
	"context"
	"time"
)

// TrustedCustomerRow 被信任顾客统计行
type TrustedCustomerRow struct {
	Username     string
	FirstName    string
	LastName     string
	Address      string
	Phone        string
	Banned       bool
	TrustedCount int64 // 被多少位顾客信任(入度)
}

// UsefulCustomerRow 评论有用度统计行
type UsefulCustomerRow struct {
	Username      string
	FirstName     string
	LastName      string
	Address       string
	Phone         string
	Banned        bool
	AvgUsefulness float64 // 其全部评论的平均有用度
}

// BookSalesRow 图书销量统计行
type BookSalesRow struct {
	ISBN  string
	Title string
	Units int64 // 售出册数
}

// AuthorSalesRow 作者销量统计行
type AuthorSalesRow struct {
	FirstName string
	LastName  string
	Units     int64
}

// PublisherSalesRow 出版社销量统计行
type PublisherSalesRow struct {
	Publisher string
	Units     int64
}

// Repository 报表仓储接口(staff-only聚合查询)
// 设计说明:
// 1. 销量口径:BookInOrder联结BookOrder.order_time,只统计since之后的订单
// 2. n由调用方校验为正整数
type Repository interface {
	// TopTrustedCustomers 被信任边入度最高的n位顾客
	TopTrustedCustomers(ctx context.Context, n int) ([]*TrustedCustomerRow, error)

	// TopUsefulCustomers 评论平均有用度最高的n位顾客
	TopUsefulCustomers(ctx context.Context, n int) ([]*UsefulCustomerRow, error)

	// TopBooks since之后销量最高的n本书
	TopBooks(ctx context.Context, since time.Time, n int) ([]*BookSalesRow, error)

	// TopAuthors since之后销量最高的n位作者
	TopAuthors(ctx context.Context, since time.Time, n int) ([]*AuthorSalesRow, error)

	// TopPublishers since之后销量最高的n家出版社
	TopPublishers(ctx context.Context, since time.Time, n int) ([]*PublisherSalesRow, error)
}

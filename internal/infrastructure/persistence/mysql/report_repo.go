package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/report"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// reportRepository 报表仓储实现(MySQL)
// 设计说明:
// 1. 全部是staff-only的聚合查询,直接Scan进报表行结构
// 2. 销量口径:books_in_order联结book_orders.order_time,只统计since之后的订单
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓储
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{db: db}
}

// TopTrustedCustomers 被信任边入度最高的n位顾客
func (r *reportRepository) TopTrustedCustomers(ctx context.Context, n int) ([]*report.TrustedCustomerRow, error) {
	var rows []report.TrustedCustomerRow
	err := getDB(ctx, r.db).Table("customers").
		Select("customers.username, customers.first_name, customers.last_name, "+
			"customers.address, customers.phone, customers.banned, "+
			"COUNT(trusted_customers.id) AS trusted_count").
		Joins("JOIN trusted_customers ON trusted_customers.target = customers.username").
		Group("customers.username").
		Order("trusted_count DESC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计被信任顾客失败")
	}

	result := make([]*report.TrustedCustomerRow, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// TopUsefulCustomers 评论平均有用度最高的n位顾客
func (r *reportRepository) TopUsefulCustomers(ctx context.Context, n int) ([]*report.UsefulCustomerRow, error) {
	var rows []report.UsefulCustomerRow
	err := getDB(ctx, r.db).Table("customers").
		Select("customers.username, customers.first_name, customers.last_name, "+
			"customers.address, customers.phone, customers.banned, "+
			"AVG(comments.usefulness_score) AS avg_usefulness").
		Joins("JOIN comments ON comments.username = customers.username").
		Group("customers.username").
		Order("avg_usefulness DESC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计评论有用度失败")
	}

	result := make([]*report.UsefulCustomerRow, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// TopBooks since之后销量最高的n本书
func (r *reportRepository) TopBooks(ctx context.Context, since time.Time, n int) ([]*report.BookSalesRow, error) {
	var rows []report.BookSalesRow
	err := getDB(ctx, r.db).Table("books_in_order").
		Select("books.isbn, books.title, SUM(books_in_order.count) AS units").
		Joins("JOIN book_orders ON book_orders.id = books_in_order.order_id").
		Joins("JOIN books ON books.isbn = books_in_order.isbn").
		Where("book_orders.order_time >= ?", since).
		Group("books.isbn").
		Order("units DESC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计图书销量失败")
	}

	result := make([]*report.BookSalesRow, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// TopAuthors since之后销量最高的n位作者
// 合著的书每位作者都计全量
func (r *reportRepository) TopAuthors(ctx context.Context, since time.Time, n int) ([]*report.AuthorSalesRow, error) {
	var rows []report.AuthorSalesRow
	err := getDB(ctx, r.db).Table("books_in_order").
		Select("authors.first_name, authors.last_name, SUM(books_in_order.count) AS units").
		Joins("JOIN book_orders ON book_orders.id = books_in_order.order_id").
		Joins("JOIN authors ON authors.isbn = books_in_order.isbn").
		Where("book_orders.order_time >= ?", since).
		Group("authors.first_name, authors.last_name").
		Order("units DESC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计作者销量失败")
	}

	result := make([]*report.AuthorSalesRow, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// TopPublishers since之后销量最高的n家出版社
func (r *reportRepository) TopPublishers(ctx context.Context, since time.Time, n int) ([]*report.PublisherSalesRow, error) {
	var rows []report.PublisherSalesRow
	err := getDB(ctx, r.db).Table("books_in_order").
		Select("books.publisher, SUM(books_in_order.count) AS units").
		Joins("JOIN book_orders ON book_orders.id = books_in_order.order_id").
		Joins("JOIN books ON books.isbn = books_in_order.isbn").
		Where("book_orders.order_time >= ?", since).
		Group("books.publisher").
		Order("units DESC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计出版社销量失败")
	}

	result := make([]*report.PublisherSalesRow, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

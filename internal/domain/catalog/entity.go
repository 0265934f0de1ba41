package catalog

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. ISBN是业务主键(13位),不使用自增ID
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. StockLevel只在结算事务内扣减,任何时刻不为负
type Book struct {
	ISBN            string    // ISBN号(业务主键)
	Title           string    // 书名
	Publisher       string    // 出版社
	PublicationDate time.Time // 出版日期
	Subject         string    // 主题分类
	Keywords        string    // 关键词
	Language        string    // 语言
	PageCount       int       // 页数
	StockLevel      int       // 库存数量
	Price           int64     // 价格(单位:分,1元=100分)
}

// NewBook 创建新图书(工厂方法)
func NewBook(isbn, title, publisher string, publicationDate time.Time, subject, keywords, language string, pageCount, stockLevel int, price int64) (*Book, error) {
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}
	if pageCount < 0 {
		return nil, ErrInvalidPageCount
	}
	if stockLevel < 0 {
		return nil, ErrInvalidStock
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	return &Book{
		ISBN:            isbn,
		Title:           title,
		Publisher:       publisher,
		PublicationDate: publicationDate,
		Subject:         subject,
		Keywords:        keywords,
		Language:        language,
		PageCount:       pageCount,
		StockLevel:      stockLevel,
		Price:           price,
	}, nil
}

// DecrStock 扣减库存(用于结算)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.StockLevel < quantity {
		return ErrInsufficientStock
	}
	b.StockLevel -= quantity
	return nil
}

// Author 作者记录
// 说明:一条记录对应一本书的一位作者,(ISBN,FirstName,LastName)唯一
// 共同署名同一ISBN即构成合著关系,度分离搜索在这张表上做自连接
type Author struct {
	ID        uint
	ISBN      string
	FirstName string
	LastName  string
}

// AuthorName 作者姓名(度分离搜索的图节点)
type AuthorName struct {
	FirstName string
	LastName  string
}

// Equal 判断两个作者姓名是否相同
func (n AuthorName) Equal(other AuthorName) bool {
	return n.FirstName == other.FirstName && n.LastName == other.LastName
}

// SeparatedAuthor 度分离搜索结果:作者及其全部作品(按书名排序)
type SeparatedAuthor struct {
	AuthorName
	Books []*Book
}

// isValidISBN 校验ISBN格式
// 简化实现:只检查位数和是否全为数字(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	if len(isbn) != 10 && len(isbn) != 13 {
		return false
	}
	for _, ch := range isbn {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

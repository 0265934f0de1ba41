package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. LockByISBN/DecrStock必须通过getDB参与结算事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) catalog.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书(目录导入,连同作者记录)
func (r *bookRepository) Create(ctx context.Context, b *catalog.Book, authors []catalog.AuthorName) error {
	model := toBookModel(b)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "ISBN号已存在")
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	for _, name := range authors {
		author := &AuthorModel{ISBN: b.ISBN, FirstName: name.FirstName, LastName: name.LastName}
		if err := db.Create(author).Error; err != nil {
			// (isbn,first,last)唯一,重复署名静默忽略
			if isDuplicateError(err) {
				continue
			}
			return apperrors.Wrap(err, "创建作者记录失败")
		}
	}

	return nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// AuthorsByISBN 查询一本书的全部作者
func (r *bookRepository) AuthorsByISBN(ctx context.Context, isbn string) ([]*catalog.Author, error) {
	var models []AuthorModel
	err := getDB(ctx, r.db).Where("isbn = ?", isbn).
		Order("last_name, first_name").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	authors := make([]*catalog.Author, len(models))
	for i, m := range models {
		authors[i] = &catalog.Author{ID: m.ID, ISBN: m.ISBN, FirstName: m.FirstName, LastName: m.LastName}
	}
	return authors, nil
}

// searchRow 搜索结果扫描行
// AvgScore在聚合排序时由SQL填充,无评论的书为NULL
type searchRow struct {
	ISBN            string
	Title           string
	Publisher       string
	PublicationDate time.Time
	Subject         string
	Keywords        string
	Language        string
	PageCount       int
	StockLevel      int
	Price           int64
	AvgScore        *float64
}

// Search 过滤+排序查询
// 设计说明:
// 1. 空字符串字段已在service层剔除,这里只拼接非空条件(精确匹配)
// 2. 作者过滤通过authors表联结
// 3. 评分排序用LEFT JOIN聚合,无评论的书AVG为NULL,升序时排在最前
// 4. 信任评分排序把联结限制在查看者信任的作者发表的评论上
func (r *bookRepository) Search(ctx context.Context, params catalog.SearchParams) ([]*catalog.SearchResult, error) {
	query := getDB(ctx, r.db).Table("books").
		Select("books.isbn, books.title, books.publisher, books.publication_date, " +
			"books.subject, books.keywords, books.language, books.page_count, " +
			"books.stock_level, books.price")

	// 过滤条件
	if params.Title != "" {
		query = query.Where("books.title = ?", params.Title)
	}
	if params.Publisher != "" {
		query = query.Where("books.publisher = ?", params.Publisher)
	}
	if params.Subject != "" {
		query = query.Where("books.subject = ?", params.Subject)
	}
	if params.Keywords != "" {
		query = query.Where("books.keywords = ?", params.Keywords)
	}
	if params.Language != "" {
		query = query.Where("books.language = ?", params.Language)
	}
	if params.AuthorFirst != "" || params.AuthorLast != "" {
		query = query.Joins("JOIN authors ON authors.isbn = books.isbn").
			Where("authors.first_name = ? AND authors.last_name = ?", params.AuthorFirst, params.AuthorLast)
	}

	// 排序
	switch params.SortBy {
	case catalog.SortPublicationDate:
		query = query.Order("books.publication_date ASC")
	case catalog.SortScore:
		query = query.
			Select("books.isbn, books.title, books.publisher, books.publication_date, "+
				"books.subject, books.keywords, books.language, books.page_count, "+
				"books.stock_level, books.price, AVG(comments.score) AS avg_score").
			Joins("LEFT JOIN comments ON comments.isbn = books.isbn").
			Group("books.isbn").
			Order("avg_score ASC")
	case catalog.SortTrustedScore:
		// 只统计查看者信任的顾客发表的评论
		query = query.
			Select("books.isbn, books.title, books.publisher, books.publication_date, "+
				"books.subject, books.keywords, books.language, books.page_count, "+
				"books.stock_level, books.price, AVG(comments.score) AS avg_score").
			Joins("LEFT JOIN comments ON comments.isbn = books.isbn "+
				"AND comments.username IN (SELECT target FROM trusted_customers WHERE username = ?)",
				params.TrustedBy).
			Group("books.isbn").
			Order("avg_score ASC")
	}

	var rows []searchRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "图书搜索失败")
	}

	results := make([]*catalog.SearchResult, len(rows))
	for i, row := range rows {
		results[i] = &catalog.SearchResult{
			Book: &catalog.Book{
				ISBN:            row.ISBN,
				Title:           row.Title,
				Publisher:       row.Publisher,
				PublicationDate: row.PublicationDate,
				Subject:         row.Subject,
				Keywords:        row.Keywords,
				Language:        row.Language,
				PageCount:       row.PageCount,
				StockLevel:      row.StockLevel,
				Price:           row.Price,
			},
			AvgScore: row.AvgScore,
		}
	}
	return results, nil
}

// LockByISBN 悲观锁查询图书(结算时锁定库存)
// SELECT FOR UPDATE锁定行,其他结算事务必须等待当前事务结束
func (r *bookRepository) LockByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	var model BookModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// DecrStock 扣减库存(原子操作)
// UPDATE books SET stock_level = stock_level - ? WHERE isbn = ? AND stock_level >= ?
// 条件UPDATE保证库存任何时刻不为负
func (r *bookRepository) DecrStock(ctx context.Context, isbn string, count int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("isbn = ?", isbn).
		Where("stock_level >= ?", count).
		Update("stock_level", gorm.Expr("stock_level - ?", count))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "扣减库存失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者库存不足,再查一次确定原因
		var model BookModel
		if err := db.Where("isbn = ?", isbn).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalog.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return catalog.ErrInsufficientStock
	}

	return nil
}

// rankedRow 销量统计扫描行
type rankedRow struct {
	ISBN  string
	Title string
	Price int64
	Units int64
}

// MostPurchased 累计销量最高的n本书(首页"热销榜")
func (r *bookRepository) MostPurchased(ctx context.Context, n int) ([]*catalog.RankedBook, error) {
	var rows []rankedRow
	err := getDB(ctx, r.db).Table("books").
		Select("books.isbn, books.title, books.price, COALESCE(SUM(books_in_order.count), 0) AS units").
		Joins("LEFT JOIN books_in_order ON books_in_order.isbn = books.isbn").
		Group("books.isbn").
		Order("units DESC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询热销图书失败")
	}

	return toRankedBooks(rows), nil
}

// RecommendedFor 顾客从未购买过的n本书;username为空时返回任意n本
func (r *bookRepository) RecommendedFor(ctx context.Context, username string, n int) ([]*catalog.RankedBook, error) {
	db := getDB(ctx, r.db)

	query := db.Table("books").Select("books.isbn, books.title, books.price, 0 AS units")
	if username != "" {
		query = query.Where("books.isbn NOT IN (?)",
			db.Table("books_in_order").
				Select("books_in_order.isbn").
				Joins("JOIN book_orders ON book_orders.id = books_in_order.order_id").
				Where("book_orders.username = ?", username))
	}

	var rows []rankedRow
	if err := query.Limit(n).Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询推荐图书失败")
	}

	return toRankedBooks(rows), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *catalog.Book {
	return &catalog.Book{
		ISBN:            model.ISBN,
		Title:           model.Title,
		Publisher:       model.Publisher,
		PublicationDate: model.PublicationDate,
		Subject:         model.Subject,
		Keywords:        model.Keywords,
		Language:        model.Language,
		PageCount:       model.PageCount,
		StockLevel:      model.StockLevel,
		Price:           model.Price,
	}
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *catalog.Book) *BookModel {
	return &BookModel{
		ISBN:            b.ISBN,
		Title:           b.Title,
		Publisher:       b.Publisher,
		PublicationDate: b.PublicationDate,
		Subject:         b.Subject,
		Keywords:        b.Keywords,
		Language:        b.Language,
		PageCount:       b.PageCount,
		StockLevel:      b.StockLevel,
		Price:           b.Price,
	}
}

func toRankedBooks(rows []rankedRow) []*catalog.RankedBook {
	books := make([]*catalog.RankedBook, len(rows))
	for i, row := range rows {
		books[i] = &catalog.RankedBook{ISBN: row.ISBN, Title: row.Title, Price: row.Price, Units: row.Units}
	}
	return books
}

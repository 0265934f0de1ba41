package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// authorRepository 合著关系仓储实现(MySQL)
// 度分离搜索的全部SQL都在这里:authors表按ISBN自联结
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建合著关系仓储
func NewAuthorRepository(db *gorm.DB) catalog.AuthorRepository {
	return &authorRepository{db: db}
}

// Exists 判断作者是否在目录中出现过
func (r *authorRepository) Exists(ctx context.Context, name catalog.AuthorName) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&AuthorModel{}).
		Where("first_name = ? AND last_name = ?", name.FirstName, name.LastName).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询作者失败")
	}
	return count > 0, nil
}

// nameRow 作者姓名扫描行
type nameRow struct {
	FirstName string
	LastName  string
}

// CoAuthors 与指定作者共同署名过至少一个ISBN的其他作者(去重)
// authors表自联结:a1是种子作者的署名记录,a2是同一本书上的其他署名
func (r *authorRepository) CoAuthors(ctx context.Context, name catalog.AuthorName) ([]catalog.AuthorName, error) {
	var rows []nameRow
	err := getDB(ctx, r.db).Table("authors AS a1").
		Select("DISTINCT a2.first_name, a2.last_name").
		Joins("JOIN authors AS a2 ON a2.isbn = a1.isbn").
		Where("a1.first_name = ? AND a1.last_name = ?", name.FirstName, name.LastName).
		Where("NOT (a2.first_name = ? AND a2.last_name = ?)", name.FirstName, name.LastName).
		Order("a2.last_name, a2.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询合著作者失败")
	}

	return toAuthorNames(rows), nil
}

// CoAuthorsOfSet 与集合中任一作者合著过的作者(去重,一次查询)
// 2度搜索用:把1度集合整体作为种子,元组IN一次性展开邻居,
// 排除种子自身的工作由service层的集合运算完成
func (r *authorRepository) CoAuthorsOfSet(ctx context.Context, names []catalog.AuthorName) ([]catalog.AuthorName, error) {
	if len(names) == 0 {
		return nil, nil
	}

	tuples := make([][]string, len(names))
	for i, name := range names {
		tuples[i] = []string{name.FirstName, name.LastName}
	}

	var rows []nameRow
	err := getDB(ctx, r.db).Table("authors AS a1").
		Select("DISTINCT a2.first_name, a2.last_name").
		Joins("JOIN authors AS a2 ON a2.isbn = a1.isbn").
		Where("(a1.first_name, a1.last_name) IN ?", tuples).
		Order("a2.last_name, a2.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "展开合著关系失败")
	}

	return toAuthorNames(rows), nil
}

// BooksByAuthor 指定作者的全部作品,按书名升序
func (r *authorRepository) BooksByAuthor(ctx context.Context, name catalog.AuthorName) ([]*catalog.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Model(&BookModel{}).
		Joins("JOIN authors ON authors.isbn = books.isbn").
		Where("authors.first_name = ? AND authors.last_name = ?", name.FirstName, name.LastName).
		Order("books.title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者作品失败")
	}

	books := make([]*catalog.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

func toAuthorNames(rows []nameRow) []catalog.AuthorName {
	names := make([]catalog.AuthorName, len(rows))
	for i, row := range rows {
		names[i] = catalog.AuthorName{FirstName: row.FirstName, LastName: row.LastName}
	}
	return names
}

package comment

import (
	"context"
)

// Repository 评论仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建评论
	// (username,isbn)已有评论时返回ErrDuplicateComment
	Create(ctx context.Context, comment *Comment) error

	// FindByID 根据ID查找评论
	FindByID(ctx context.Context, id uint) (*Comment, error)

	// FindByUserAndISBN 查找某顾客对某书的评论,不存在返回ErrCommentNotFound
	FindByUserAndISBN(ctx context.Context, username, isbn string) (*Comment, error)

	// ListByISBN 一本书的全部评论
	ListByISBN(ctx context.Context, isbn string) ([]*Comment, error)

	// ListByUsername 某顾客发表的全部评论
	ListByUsername(ctx context.Context, username string) ([]*Comment, error)

	// ApplyRating 打分(原子操作)
	// 单条UPDATE内完成计数器+1和有用度重算,并发打分不会丢更新
	ApplyRating(ctx context.Context, id uint, tier RatingTier) error
}

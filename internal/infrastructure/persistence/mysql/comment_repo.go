package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/comment"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// commentRepository 评论仓储实现(MySQL)
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓储
func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{db: db}
}

// Create 创建评论
func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	model := toCommentModel(c)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// (username,isbn)唯一索引冲突:一人一书一评
		if isDuplicateError(err) {
			return comment.ErrDuplicateComment
		}
		return apperrors.Wrap(err, "创建评论失败")
	}

	c.ID = model.ID
	return nil
}

// FindByID 根据ID查找评论
func (r *commentRepository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var model CommentModel
	err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	return toCommentEntity(&model), nil
}

// FindByUserAndISBN 查找某顾客对某书的评论
func (r *commentRepository) FindByUserAndISBN(ctx context.Context, username, isbn string) (*comment.Comment, error) {
	var model CommentModel
	err := getDB(ctx, r.db).
		Where("username = ? AND isbn = ?", username, isbn).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	return toCommentEntity(&model), nil
}

// ListByISBN 一本书的全部评论,按评论时间倒序
func (r *commentRepository) ListByISBN(ctx context.Context, isbn string) ([]*comment.Comment, error) {
	var models []CommentModel
	err := getDB(ctx, r.db).
		Where("isbn = ?", isbn).
		Order("time DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	return toCommentEntities(models), nil
}

// ListByUsername 某顾客发表的全部评论,按评论时间倒序
func (r *commentRepository) ListByUsername(ctx context.Context, username string) ([]*comment.Comment, error) {
	var models []CommentModel
	err := getDB(ctx, r.db).
		Where("username = ?", username).
		Order("time DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	return toCommentEntities(models), nil
}

// ApplyRating 打分(原子操作)
// 计数器+1和有用度重算放在同一条UPDATE里,有用度表达式把+1直接写进SQL,
// 不依赖读出再写回,并发打分也不会丢票
func (r *commentRepository) ApplyRating(ctx context.Context, id uint, tier comment.RatingTier) error {
	var updates map[string]interface{}

	switch tier {
	case comment.TierUseless:
		updates = map[string]interface{}{
			"useless_count":    gorm.Expr("useless_count + 1"),
			"usefulness_score": gorm.Expr("(2 * very_useful_count + useful_count - (useless_count + 1)) / 3.0"),
		}
	case comment.TierUseful:
		updates = map[string]interface{}{
			"useful_count":     gorm.Expr("useful_count + 1"),
			"usefulness_score": gorm.Expr("(2 * very_useful_count + (useful_count + 1) - useless_count) / 3.0"),
		}
	case comment.TierVeryUseful:
		updates = map[string]interface{}{
			"very_useful_count": gorm.Expr("very_useful_count + 1"),
			"usefulness_score":  gorm.Expr("(2 * (very_useful_count + 1) + useful_count - useless_count) / 3.0"),
		}
	default:
		return comment.ErrInvalidTier
	}

	result := getDB(ctx, r.db).Model(&CommentModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "评论打分失败")
	}
	if result.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

// toCommentEntity GORM模型 → 领域实体
func toCommentEntity(model *CommentModel) *comment.Comment {
	return &comment.Comment{
		ID:              model.ID,
		Username:        model.Username,
		ISBN:            model.ISBN,
		Score:           model.Score,
		Text:            model.Text,
		Time:            model.Time,
		UselessCount:    model.UselessCount,
		UsefulCount:     model.UsefulCount,
		VeryUsefulCount: model.VeryUsefulCount,
		UsefulnessScore: model.UsefulnessScore,
	}
}

func toCommentEntities(models []CommentModel) []*comment.Comment {
	comments := make([]*comment.Comment, len(models))
	for i := range models {
		comments[i] = toCommentEntity(&models[i])
	}
	return comments
}

// toCommentModel 领域实体 → GORM模型
func toCommentModel(c *comment.Comment) *CommentModel {
	return &CommentModel{
		Username:        c.Username,
		ISBN:            c.ISBN,
		Score:           c.Score,
		Text:            c.Text,
		Time:            c.Time,
		UselessCount:    c.UselessCount,
		UsefulCount:     c.UsefulCount,
		VeryUsefulCount: c.VeryUsefulCount,
		UsefulnessScore: c.UsefulnessScore,
	}
}

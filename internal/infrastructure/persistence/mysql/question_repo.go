package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/qa"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// questionRepository 问答仓储实现(MySQL)
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository 创建问答仓储
func NewQuestionRepository(db *gorm.DB) qa.Repository {
	return &questionRepository{db: db}
}

// Create 创建提问
func (r *questionRepository) Create(ctx context.Context, q *qa.Question) error {
	model := &QuestionModel{
		Username:  q.Username,
		TimeAsked: q.TimeAsked,
		Question:  q.Question,
		Answer:    q.Answer,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建提问失败")
	}

	q.ID = model.ID
	return nil
}

// FindByID 根据ID查找提问
func (r *questionRepository) FindByID(ctx context.Context, id uint) (*qa.Question, error) {
	var model QuestionModel
	err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, qa.ErrQuestionNotFound
		}
		return nil, apperrors.Wrap(err, "查询提问失败")
	}

	return toQuestionEntity(&model), nil
}

// ListByUsername 某顾客的全部提问,按提问时间倒序
func (r *questionRepository) ListByUsername(ctx context.Context, username string) ([]*qa.Question, error) {
	var models []QuestionModel
	err := getDB(ctx, r.db).
		Where("username = ?", username).
		Order("time_asked DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询提问列表失败")
	}

	questions := make([]*qa.Question, len(models))
	for i := range models {
		questions[i] = toQuestionEntity(&models[i])
	}
	return questions, nil
}

// UpdateAnswer 经理回答(覆盖answer字段)
func (r *questionRepository) UpdateAnswer(ctx context.Context, id uint, answer string) error {
	result := getDB(ctx, r.db).Model(&QuestionModel{}).
		Where("id = ?", id).
		Update("answer", answer)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新回答失败")
	}
	if result.RowsAffected == 0 {
		// 回答内容与原值相同时RowsAffected也是0,确认提问存在即可
		var count int64
		if err := getDB(ctx, r.db).Model(&QuestionModel{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return apperrors.Wrap(err, "查询提问失败")
		}
		if count == 0 {
			return qa.ErrQuestionNotFound
		}
	}
	return nil
}

// toQuestionEntity GORM模型 → 领域实体
func toQuestionEntity(model *QuestionModel) *qa.Question {
	return &qa.Question{
		ID:        model.ID,
		Username:  model.Username,
		TimeAsked: model.TimeAsked,
		Question:  model.Question,
		Answer:    model.Answer,
	}
}

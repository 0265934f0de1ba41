package qa

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/qa"
)

// AskQuestionUseCase 顾客提问用例
// 新问题的answer字段写入待回答占位文案,经理回答后覆盖
type AskQuestionUseCase struct {
	questionRepo qa.Repository
}

// NewAskQuestionUseCase 创建提问用例
func NewAskQuestionUseCase(questionRepo qa.Repository) *AskQuestionUseCase {
	return &AskQuestionUseCase{questionRepo: questionRepo}
}

// AskQuestionRequest 提问请求DTO
type AskQuestionRequest struct {
	Username string // 从JWT中提取
	Question string
}

// AskQuestionResponse 提问响应DTO
type AskQuestionResponse struct {
	QuestionID uint   `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"` // 待回答占位文案
}

// Execute 执行提问
func (uc *AskQuestionUseCase) Execute(ctx context.Context, req AskQuestionRequest) (*AskQuestionResponse, error) {
	question, err := qa.NewQuestion(req.Username, req.Question)
	if err != nil {
		return nil, err
	}

	if err := uc.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	return &AskQuestionResponse{
		QuestionID: question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
	}, nil
}

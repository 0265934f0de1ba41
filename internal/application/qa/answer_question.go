package qa

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/qa"
	"github.com/xiebiao/bookmall/pkg/mq"
)

// AnswerQuestionUseCase 经理答疑用例(staff-only)
// 回答覆盖answer字段,再次回答视为修订
type AnswerQuestionUseCase struct {
	questionRepo qa.Repository
	publisher    mq.EventPublisher // 可以为nil(RabbitMQ未启用)
}

// NewAnswerQuestionUseCase 创建答疑用例
func NewAnswerQuestionUseCase(questionRepo qa.Repository, publisher mq.EventPublisher) *AnswerQuestionUseCase {
	return &AnswerQuestionUseCase{questionRepo: questionRepo, publisher: publisher}
}

// AnswerQuestionRequest 答疑请求DTO
type AnswerQuestionRequest struct {
	QuestionID uint
	Answer     string
}

// AnswerQuestionResponse 答疑响应DTO
type AnswerQuestionResponse struct {
	QuestionID uint   `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// Execute 执行答疑
func (uc *AnswerQuestionUseCase) Execute(ctx context.Context, req AnswerQuestionRequest) (*AnswerQuestionResponse, error) {
	if req.Answer == "" || len(req.Answer) > 300 {
		return nil, qa.ErrInvalidAnswer
	}

	question, err := uc.questionRepo.FindByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	if err := uc.questionRepo.UpdateAnswer(ctx, req.QuestionID, req.Answer); err != nil {
		return nil, err
	}

	// 通知提问顾客(尽力而为)
	if uc.publisher != nil {
		event := mq.QuestionAnsweredEvent{
			QuestionID: question.ID,
			Username:   question.Username,
			Time:       time.Now(),
		}
		if err := uc.publisher.Publish(mq.RoutingKeyQuestionAnswered, event); err != nil {
			log.Printf("发布答疑事件失败: question_id=%d, err=%v", question.ID, err)
		}
	}

	return &AnswerQuestionResponse{
		QuestionID: question.ID,
		Question:   question.Question,
		Answer:     req.Answer,
	}, nil
}

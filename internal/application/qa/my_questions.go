package qa

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/qa"
)

// MyQuestionsUseCase 我的提问列表用例
type MyQuestionsUseCase struct {
	questionRepo qa.Repository
}

// NewMyQuestionsUseCase 创建我的提问列表用例
func NewMyQuestionsUseCase(questionRepo qa.Repository) *MyQuestionsUseCase {
	return &MyQuestionsUseCase{questionRepo: questionRepo}
}

// MyQuestionsRequest 我的提问请求DTO
type MyQuestionsRequest struct {
	Username string
}

// QuestionInfo 提问DTO
type QuestionInfo struct {
	QuestionID uint   `json:"question_id"`
	TimeAsked  string `json:"time_asked"`
	Question   string `json:"question"`
	Answer     string `json:"answer"` // 未回答时是占位文案
	Answered   bool   `json:"answered"`
}

// MyQuestionsResponse 我的提问响应DTO
type MyQuestionsResponse struct {
	Questions []QuestionInfo `json:"questions"`
}

// Execute 执行我的提问查询,按提问时间倒序
func (uc *MyQuestionsUseCase) Execute(ctx context.Context, req MyQuestionsRequest) (*MyQuestionsResponse, error) {
	questions, err := uc.questionRepo.ListByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	infos := make([]QuestionInfo, len(questions))
	for i, q := range questions {
		infos[i] = QuestionInfo{
			QuestionID: q.ID,
			TimeAsked:  q.TimeAsked.Format("2006-01-02 15:04:05"),
			Question:   q.Question,
			Answer:     q.Answer,
			Answered:   q.Answered(),
		}
	}

	return &MyQuestionsResponse{Questions: infos}, nil
}

package qa

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/qa"
)

type fakeQuestionRepo struct {
	questions map[uint]*qa.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uint]*qa.Question{}, nextID: 1}
}

func (f *fakeQuestionRepo) Create(ctx context.Context, q *qa.Question) error {
	q.ID = f.nextID
	f.nextID++
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) FindByID(ctx context.Context, id uint) (*qa.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, qa.ErrQuestionNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) ListByUsername(ctx context.Context, username string) ([]*qa.Question, error) {
	var result []*qa.Question
	for _, q := range f.questions {
		if q.Username == username {
			result = append(result, q)
		}
	}
	return result, nil
}

func (f *fakeQuestionRepo) UpdateAnswer(ctx context.Context, id uint, answer string) error {
	q, ok := f.questions[id]
	if !ok {
		return qa.ErrQuestionNotFound
	}
	q.Answer = answer
	return nil
}

// TestAskQuestion 测试提问:新问题带待回答占位文案
func TestAskQuestion(t *testing.T) {
	repo := newFakeQuestionRepo()
	uc := NewAskQuestionUseCase(repo)

	resp, err := uc.Execute(context.Background(), AskQuestionRequest{
		Username: "zhangsan",
		Question: "有满减活动吗?",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.QuestionID)
	assert.Equal(t, qa.UnansweredSentinel, resp.Answer)
}

// TestAskQuestion_Invalid 测试提问内容校验
func TestAskQuestion_Invalid(t *testing.T) {
	uc := NewAskQuestionUseCase(newFakeQuestionRepo())
	ctx := context.Background()

	_, err := uc.Execute(ctx, AskQuestionRequest{Username: "zhangsan", Question: ""})
	assert.ErrorIs(t, err, qa.ErrInvalidQuestion)

	_, err = uc.Execute(ctx, AskQuestionRequest{Username: "zhangsan", Question: strings.Repeat("a", 301)})
	assert.ErrorIs(t, err, qa.ErrInvalidQuestion)
}

// TestAnswerQuestion 测试答疑:回答覆盖占位文案
func TestAnswerQuestion(t *testing.T) {
	repo := newFakeQuestionRepo()
	askUC := NewAskQuestionUseCase(repo)
	answerUC := NewAnswerQuestionUseCase(repo, nil)
	ctx := context.Background()

	asked, err := askUC.Execute(ctx, AskQuestionRequest{Username: "zhangsan", Question: "有满减活动吗?"})
	require.NoError(t, err)

	resp, err := answerUC.Execute(ctx, AnswerQuestionRequest{QuestionID: asked.QuestionID, Answer: "每满100减20"})
	require.NoError(t, err)
	assert.Equal(t, "每满100减20", resp.Answer)

	// 列表里该问题已标记为已回答
	listUC := NewMyQuestionsUseCase(repo)
	list, err := listUC.Execute(ctx, MyQuestionsRequest{Username: "zhangsan"})
	require.NoError(t, err)
	require.Len(t, list.Questions, 1)
	assert.True(t, list.Questions[0].Answered)
}

// TestAnswerQuestion_Invalid 测试答疑校验
func TestAnswerQuestion_Invalid(t *testing.T) {
	repo := newFakeQuestionRepo()
	uc := NewAnswerQuestionUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, AnswerQuestionRequest{QuestionID: 1, Answer: ""})
	assert.ErrorIs(t, err, qa.ErrInvalidAnswer)

	_, err = uc.Execute(ctx, AnswerQuestionRequest{QuestionID: 999, Answer: "正常长度的回答"})
	assert.ErrorIs(t, err, qa.ErrQuestionNotFound)
}

package qa

import (
	"time"
)

// UnansweredSentinel 待回答占位文案
// 新问题的answer字段默认写入该值,经理回答后覆盖
const UnansweredSentinel = "THIS QUESTION HAS NOT BEEN ANSWERED, PLEASE CHECK BACK LATER"

// Question 顾客提问实体
type Question struct {
	ID        uint
	Username  string
	TimeAsked time.Time
	Question  string
	Answer    string
}

// NewQuestion 创建新提问(工厂方法)
func NewQuestion(username, text string) (*Question, error) {
	if text == "" || len(text) > 300 {
		return nil, ErrInvalidQuestion
	}
	return &Question{
		Username:  username,
		TimeAsked: time.Now(),
		Question:  text,
		Answer:    UnansweredSentinel,
	}, nil
}

// Answered 是否已被经理回答
func (q *Question) Answered() bool {
	return q.Answer != UnansweredSentinel
}

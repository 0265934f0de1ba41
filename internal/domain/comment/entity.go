package comment

import (
	"time"
)

// Comment 评论实体(聚合根)
// 设计说明:
// 1. (Username,ISBN)唯一:每位顾客对一本书至多一条评论
// 2. 三个计数器由其他顾客打分累加,作者本人不能给自己打分
// 3. UsefulnessScore是派生字段,每次打分后按固定公式重算
type Comment struct {
	ID              uint
	Username        string
	ISBN            string
	Score           int // 评分1-10
	Text            string
	Time            time.Time
	UselessCount    int
	UsefulCount     int
	VeryUsefulCount int
	UsefulnessScore float64
}

// NewComment 创建新评论(工厂方法)
// 业务规则:评分1-10,正文非空且不超过300字符
func NewComment(username, isbn string, score int, text string) (*Comment, error) {
	if score < MinScore || score > MaxScore {
		return nil, ErrInvalidScore
	}
	if text == "" || len(text) > MaxTextLength {
		return nil, ErrInvalidText
	}
	return &Comment{
		Username: username,
		ISBN:     isbn,
		Score:    score,
		Text:     text,
		Time:     time.Now(),
	}, nil
}

const (
	MinScore      = 1
	MaxScore      = 10
	MaxTextLength = 300
)

// RatingTier 评论有用度档位
type RatingTier string

const (
	TierUseless    RatingTier = "useless"
	TierUseful     RatingTier = "useful"
	TierVeryUseful RatingTier = "very_useful"
)

// ParseRatingTier 解析打分档位
func ParseRatingTier(s string) (RatingTier, error) {
	switch RatingTier(s) {
	case TierUseless, TierUseful, TierVeryUseful:
		return RatingTier(s), nil
	default:
		return "", ErrInvalidTier
	}
}

// Rate 打分:对应计数器+1并重算有用度
// 调用方保证rater不是评论作者
func (c *Comment) Rate(tier RatingTier) error {
	switch tier {
	case TierUseless:
		c.UselessCount++
	case TierUseful:
		c.UsefulCount++
	case TierVeryUseful:
		c.VeryUsefulCount++
	default:
		return ErrInvalidTier
	}
	c.UsefulnessScore = Usefulness(c.VeryUsefulCount, c.UsefulCount, c.UselessCount)
	return nil
}

// Usefulness 有用度公式
// (2×very_useful + useful − useless) / 3.0
// 注意:除数固定为3,与打分总数无关(是无界的累计分,不是归一化均值)
func Usefulness(veryUseful, useful, useless int) float64 {
	return (2*float64(veryUseful) + float64(useful) - float64(useless)) / 3.0
}

package comment

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/comment"
)

// RateCommentUseCase 评论打分用例
//
// 业务规则:
//  1. 档位只有useless/useful/very_useful三种
//  2. 作者不能给自己的评论打分
//  3. 计数器累加和有用度重算由仓储在单条UPDATE内完成
type RateCommentUseCase struct {
	commentRepo comment.Repository
}

// NewRateCommentUseCase 创建评论打分用例
func NewRateCommentUseCase(commentRepo comment.Repository) *RateCommentUseCase {
	return &RateCommentUseCase{commentRepo: commentRepo}
}

// RateCommentRequest 评论打分请求DTO
type RateCommentRequest struct {
	CommentID uint
	Rater     string // 打分者用户名(从JWT中提取)
	Tier      string // useless/useful/very_useful
}

// RateCommentResponse 评论打分响应DTO
type RateCommentResponse struct {
	CommentID       uint    `json:"comment_id"`
	UselessCount    int     `json:"useless_count"`
	UsefulCount     int     `json:"useful_count"`
	VeryUsefulCount int     `json:"very_useful_count"`
	UsefulnessScore float64 `json:"usefulness_score"`
}

// Execute 执行评论打分
func (uc *RateCommentUseCase) Execute(ctx context.Context, req RateCommentRequest) (*RateCommentResponse, error) {
	tier, err := comment.ParseRatingTier(req.Tier)
	if err != nil {
		return nil, err
	}

	target, err := uc.commentRepo.FindByID(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	// 作者不能给自己的评论打分
	if target.Username == req.Rater {
		return nil, comment.ErrSelfRating
	}

	if err := uc.commentRepo.ApplyRating(ctx, req.CommentID, tier); err != nil {
		return nil, err
	}

	// 回读累加后的计数
	updated, err := uc.commentRepo.FindByID(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	return &RateCommentResponse{
		CommentID:       updated.ID,
		UselessCount:    updated.UselessCount,
		UsefulCount:     updated.UsefulCount,
		VeryUsefulCount: updated.VeryUsefulCount,
		UsefulnessScore: updated.UsefulnessScore,
	}, nil
}

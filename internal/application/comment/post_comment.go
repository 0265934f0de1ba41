package comment

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/internal/domain/comment"
	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// PostCommentUseCase 发表评论用例
//
// 业务规则:
//  1. 图书必须存在
//  2. 被封禁的顾客不能发表评论
//  3. 每位顾客对一本书至多一条评论,重复发表被拒绝
//  4. 评分1-10,正文非空且不超过300字符
type PostCommentUseCase struct {
	commentRepo  comment.Repository
	bookRepo     catalog.Repository
	customerRepo customer.Repository
}

// NewPostCommentUseCase 创建发表评论用例
func NewPostCommentUseCase(
	commentRepo comment.Repository,
	bookRepo catalog.Repository,
	customerRepo customer.Repository,
) *PostCommentUseCase {
	return &PostCommentUseCase{
		commentRepo:  commentRepo,
		bookRepo:     bookRepo,
		customerRepo: customerRepo,
	}
}

// PostCommentRequest 发表评论请求DTO
type PostCommentRequest struct {
	Username string // 从JWT中提取
	ISBN     string
	Score    int
	Text     string
}

// PostCommentResponse 发表评论响应DTO
type PostCommentResponse struct {
	CommentID uint   `json:"comment_id"`
	ISBN      string `json:"isbn"`
	Score     int    `json:"score"`
}

// Execute 执行发表评论
func (uc *PostCommentUseCase) Execute(ctx context.Context, req PostCommentRequest) (*PostCommentResponse, error) {
	// 1. 图书必须存在
	if _, err := uc.bookRepo.FindByISBN(ctx, req.ISBN); err != nil {
		return nil, err
	}

	// 2. 被封禁的顾客不能发表评论
	c, err := uc.customerRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if c.Banned {
		return nil, comment.ErrBannedCustomer
	}

	// 3. 工厂方法校验评分和正文
	newComment, err := comment.NewComment(req.Username, req.ISBN, req.Score, req.Text)
	if err != nil {
		return nil, err
	}

	// 4. 持久化,(username,isbn)唯一索引拦截重复评论
	if err := uc.commentRepo.Create(ctx, newComment); err != nil {
		return nil, err
	}

	return &PostCommentResponse{
		CommentID: newComment.ID,
		ISBN:      newComment.ISBN,
		Score:     newComment.Score,
	}, nil
}

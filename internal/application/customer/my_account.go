package customer

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/comment"
	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// MyAccountUseCase 个人中心用例
// 汇总顾客档案、信任名单和本人发表的评论
type MyAccountUseCase struct {
	customerRepo customer.Repository
	trustRepo    customer.TrustRepository
	commentRepo  comment.Repository
}

// NewMyAccountUseCase 创建个人中心用例
func NewMyAccountUseCase(
	customerRepo customer.Repository,
	trustRepo customer.TrustRepository,
	commentRepo comment.Repository,
) *MyAccountUseCase {
	return &MyAccountUseCase{
		customerRepo: customerRepo,
		trustRepo:    trustRepo,
		commentRepo:  commentRepo,
	}
}

// MyAccountRequest 个人中心请求DTO
type MyAccountRequest struct {
	Username string
}

// MyCommentInfo 本人评论DTO
type MyCommentInfo struct {
	CommentID       uint    `json:"comment_id"`
	ISBN            string  `json:"isbn"`
	Score           int     `json:"score"`
	Text            string  `json:"text"`
	Time            string  `json:"time"`
	UsefulnessScore float64 `json:"usefulness_score"`
}

// MyAccountResponse 个人中心响应DTO
type MyAccountResponse struct {
	Username  string          `json:"username"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	Banned    bool            `json:"banned"`
	Trusted   []string        `json:"trusted"`   // 我信任的顾客
	Untrusted []string        `json:"untrusted"` // 我不信任的顾客
	Comments  []MyCommentInfo `json:"comments"`  // 我发表的评论
}

// Execute 执行个人中心查询
func (uc *MyAccountUseCase) Execute(ctx context.Context, req MyAccountRequest) (*MyAccountResponse, error) {
	c, err := uc.customerRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	trusted, err := uc.trustRepo.ListTrusted(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	untrusted, err := uc.trustRepo.ListUntrusted(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	infos := make([]MyCommentInfo, len(comments))
	for i, cm := range comments {
		infos[i] = MyCommentInfo{
			CommentID:       cm.ID,
			ISBN:            cm.ISBN,
			Score:           cm.Score,
			Text:            cm.Text,
			Time:            cm.Time.Format("2006-01-02 15:04:05"),
			UsefulnessScore: cm.UsefulnessScore,
		}
	}

	return &MyAccountResponse{
		Username:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		Phone:     c.Phone,
		Banned:    c.Banned,
		Trusted:   trusted,
		Untrusted: untrusted,
		Comments:  infos,
	}, nil
}

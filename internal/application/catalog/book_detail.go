package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/internal/domain/comment"
	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// BookDetailUseCase 图书详情用例
// 详情页包含图书信息、作者列表和评论区,
// 每条评论相对查看者标注信任关系(self/trust/untrust)
type BookDetailUseCase struct {
	bookRepo    catalog.Repository
	commentRepo comment.Repository
	trustRepo   customer.TrustRepository
}

// NewBookDetailUseCase 创建图书详情用例
func NewBookDetailUseCase(
	bookRepo catalog.Repository,
	commentRepo comment.Repository,
	trustRepo customer.TrustRepository,
) *BookDetailUseCase {
	return &BookDetailUseCase{
		bookRepo:    bookRepo,
		commentRepo: commentRepo,
		trustRepo:   trustRepo,
	}
}

// BookDetailRequest 图书详情请求DTO
type BookDetailRequest struct {
	ISBN   string
	Viewer string // 查看者用户名,未登录为空
}

// AuthorInfo 作者DTO
type AuthorInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CommentInfo 评论DTO
type CommentInfo struct {
	CommentID       uint    `json:"comment_id"`
	Username        string  `json:"username"`
	Score           int     `json:"score"`
	Text            string  `json:"text"`
	Time            string  `json:"time"`
	UselessCount    int     `json:"useless_count"`
	UsefulCount     int     `json:"useful_count"`
	VeryUsefulCount int     `json:"very_useful_count"`
	UsefulnessScore float64 `json:"usefulness_score"`
	TrustStatus     string  `json:"trust_status"` // self/trust/untrust/""
}

// BookDetailResponse 图书详情响应DTO
type BookDetailResponse struct {
	ISBN            string        `json:"isbn"`
	Title           string        `json:"title"`
	Publisher       string        `json:"publisher"`
	PublicationDate string        `json:"publication_date"`
	Subject         string        `json:"subject"`
	Keywords        string        `json:"keywords"`
	Language        string        `json:"language"`
	PageCount       int           `json:"page_count"`
	StockLevel      int           `json:"stock_level"`
	Price           int64         `json:"price"`
	PriceYuan       string        `json:"price_yuan"`
	Authors         []AuthorInfo  `json:"authors"`
	Comments        []CommentInfo `json:"comments"`
}

// Execute 执行图书详情查询
func (uc *BookDetailUseCase) Execute(ctx context.Context, req BookDetailRequest) (*BookDetailResponse, error) {
	book, err := uc.bookRepo.FindByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}

	authors, err := uc.bookRepo.AuthorsByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}

	// 查看者的信任/不信任名单一次取全,逐条评论标注时查内存
	trusted := make(map[string]bool)
	untrusted := make(map[string]bool)
	if req.Viewer != "" {
		trustedList, err := uc.trustRepo.ListTrusted(ctx, req.Viewer)
		if err != nil {
			return nil, err
		}
		for _, name := range trustedList {
			trusted[name] = true
		}
		untrustedList, err := uc.trustRepo.ListUntrusted(ctx, req.Viewer)
		if err != nil {
			return nil, err
		}
		for _, name := range untrustedList {
			untrusted[name] = true
		}
	}

	commentInfos := make([]CommentInfo, len(comments))
	for i, cm := range comments {
		status := customer.TrustStatusNone
		if req.Viewer != "" {
			switch {
			case cm.Username == req.Viewer:
				status = customer.TrustStatusSelf
			case trusted[cm.Username]:
				status = customer.TrustStatusTrust
			case untrusted[cm.Username]:
				status = customer.TrustStatusUntrust
			}
		}
		commentInfos[i] = CommentInfo{
			CommentID:       cm.ID,
			Username:        cm.Username,
			Score:           cm.Score,
			Text:            cm.Text,
			Time:            cm.Time.Format("2006-01-02 15:04:05"),
			UselessCount:    cm.UselessCount,
			UsefulCount:     cm.UsefulCount,
			VeryUsefulCount: cm.VeryUsefulCount,
			UsefulnessScore: cm.UsefulnessScore,
			TrustStatus:     string(status),
		}
	}

	// 有用度高的评论排在前面
	sort.SliceStable(commentInfos, func(i, j int) bool {
		return commentInfos[i].UsefulnessScore > commentInfos[j].UsefulnessScore
	})

	authorInfos := make([]AuthorInfo, len(authors))
	for i, a := range authors {
		authorInfos[i] = AuthorInfo{FirstName: a.FirstName, LastName: a.LastName}
	}

	return &BookDetailResponse{
		ISBN:            book.ISBN,
		Title:           book.Title,
		Publisher:       book.Publisher,
		PublicationDate: book.PublicationDate.Format("2006-01-02"),
		Subject:         book.Subject,
		Keywords:        book.Keywords,
		Language:        book.Language,
		PageCount:       book.PageCount,
		StockLevel:      book.StockLevel,
		Price:           book.Price,
		PriceYuan:       fmt.Sprintf("%.2f", float64(book.Price)/100),
		Authors:         authorInfos,
		Comments:        commentInfos,
	}, nil
}

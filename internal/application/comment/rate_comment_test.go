package comment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/catalog"
	"github.com/xiebiao/bookmall/internal/domain/comment"
	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// ========================================
// 内存桩
// ========================================

type fakeCommentRepo struct {
	comments map[uint]*comment.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*comment.Comment{}, nextID: 1}
}

func (f *fakeCommentRepo) Create(ctx context.Context, c *comment.Comment) error {
	for _, existing := range f.comments {
		if existing.Username == c.Username && existing.ISBN == c.ISBN {
			return comment.ErrDuplicateComment
		}
	}
	c.ID = f.nextID
	f.nextID++
	f.comments[c.ID] = c
	return nil
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	return c, nil
}

func (f *fakeCommentRepo) FindByUserAndISBN(ctx context.Context, username, isbn string) (*comment.Comment, error) {
	for _, c := range f.comments {
		if c.Username == username && c.ISBN == isbn {
			return c, nil
		}
	}
	return nil, comment.ErrCommentNotFound
}

func (f *fakeCommentRepo) ListByISBN(ctx context.Context, isbn string) ([]*comment.Comment, error) {
	var result []*comment.Comment
	for _, c := range f.comments {
		if c.ISBN == isbn {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCommentRepo) ListByUsername(ctx context.Context, username string) ([]*comment.Comment, error) {
	var result []*comment.Comment
	for _, c := range f.comments {
		if c.Username == username {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCommentRepo) ApplyRating(ctx context.Context, id uint, tier comment.RatingTier) error {
	c, ok := f.comments[id]
	if !ok {
		return comment.ErrCommentNotFound
	}
	return c.Rate(tier)
}

type fakeBookRepo struct {
	books map[string]*catalog.Book
}

func (f *fakeBookRepo) Create(ctx context.Context, book *catalog.Book, authors []catalog.AuthorName) error {
	return nil
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	b, ok := f.books[isbn]
	if !ok {
		return nil, catalog.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) AuthorsByISBN(ctx context.Context, isbn string) ([]*catalog.Author, error) {
	return nil, nil
}

func (f *fakeBookRepo) Search(ctx context.Context, params catalog.SearchParams) ([]*catalog.SearchResult, error) {
	return nil, nil
}

func (f *fakeBookRepo) LockByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	return f.FindByISBN(ctx, isbn)
}

func (f *fakeBookRepo) DecrStock(ctx context.Context, isbn string, count int) error { return nil }

func (f *fakeBookRepo) MostPurchased(ctx context.Context, n int) ([]*catalog.RankedBook, error) {
	return nil, nil
}

func (f *fakeBookRepo) RecommendedFor(ctx context.Context, username string, n int) ([]*catalog.RankedBook, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }

func (f *fakeCustomerRepo) FindByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	c, ok := f.customers[username]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) UpdateBanned(ctx context.Context, username string, banned bool) error {
	return nil
}

func (f *fakeCustomerRepo) IncrOffense(ctx context.Context, username string) (*customer.Offense, error) {
	return nil, nil
}

func testDeps() (*fakeCommentRepo, *fakeBookRepo, *fakeCustomerRepo) {
	commentRepo := newFakeCommentRepo()
	bookRepo := &fakeBookRepo{books: map[string]*catalog.Book{
		"9787111213826": {ISBN: "9787111213826", Title: "深入理解计算机系统"},
	}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*customer.Customer{
		"zhangsan": {Username: "zhangsan"},
		"lisi":     {Username: "lisi"},
		"badguy":   {Username: "badguy", Banned: true},
	}}
	return commentRepo, bookRepo, customerRepo
}

// ========================================
// 测试用例
// ========================================

// TestPostComment_Success 测试正常发表评论
func TestPostComment_Success(t *testing.T) {
	commentRepo, bookRepo, customerRepo := testDeps()
	uc := NewPostCommentUseCase(commentRepo, bookRepo, customerRepo)

	resp, err := uc.Execute(context.Background(), PostCommentRequest{
		Username: "zhangsan", ISBN: "9787111213826", Score: 9, Text: "经典教材",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.CommentID)
	assert.Equal(t, 9, resp.Score)
}

// TestPostComment_Duplicate 测试同一顾客对同一本书的第二条评论被拒绝
func TestPostComment_Duplicate(t *testing.T) {
	commentRepo, bookRepo, customerRepo := testDeps()
	uc := NewPostCommentUseCase(commentRepo, bookRepo, customerRepo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, PostCommentRequest{Username: "zhangsan", ISBN: "9787111213826", Score: 9, Text: "经典教材"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, PostCommentRequest{Username: "zhangsan", ISBN: "9787111213826", Score: 5, Text: "再评一次"})
	assert.ErrorIs(t, err, comment.ErrDuplicateComment)
}

// TestPostComment_Banned 测试被封禁顾客不能发表评论
func TestPostComment_Banned(t *testing.T) {
	commentRepo, bookRepo, customerRepo := testDeps()
	uc := NewPostCommentUseCase(commentRepo, bookRepo, customerRepo)

	_, err := uc.Execute(context.Background(), PostCommentRequest{
		Username: "badguy", ISBN: "9787111213826", Score: 1, Text: "差评",
	})
	assert.ErrorIs(t, err, comment.ErrBannedCustomer)
}

// TestPostComment_BookNotFound 测试对不存在的书评论
func TestPostComment_BookNotFound(t *testing.T) {
	commentRepo, bookRepo, customerRepo := testDeps()
	uc := NewPostCommentUseCase(commentRepo, bookRepo, customerRepo)

	_, err := uc.Execute(context.Background(), PostCommentRequest{
		Username: "zhangsan", ISBN: "0000000000000", Score: 5, Text: "x",
	})
	assert.ErrorIs(t, err, catalog.ErrBookNotFound)
}

// TestRateComment_Success 测试打分累加和有用度重算
func TestRateComment_Success(t *testing.T) {
	commentRepo, bookRepo, customerRepo := testDeps()
	postUC := NewPostCommentUseCase(commentRepo, bookRepo, customerRepo)
	rateUC := NewRateCommentUseCase(commentRepo)
	ctx := context.Background()

	posted, err := postUC.Execute(ctx, PostCommentRequest{Username: "zhangsan", ISBN: "9787111213826", Score: 9, Text: "经典教材"})
	require.NoError(t, err)

	resp, err := rateUC.Execute(ctx, RateCommentRequest{CommentID: posted.CommentID, Rater: "lisi", Tier: "very_useful"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.VeryUsefulCount)
	assert.InDelta(t, 2.0/3.0, resp.UsefulnessScore, 1e-9)
}

// TestRateComment_Self 测试作者给自己的评论打分被拒绝
func TestRateComment_Self(t *testing.T) {
	commentRepo, bookRepo, customerRepo := testDeps()
	postUC := NewPostCommentUseCase(commentRepo, bookRepo, customerRepo)
	rateUC := NewRateCommentUseCase(commentRepo)
	ctx := context.Background()

	posted, err := postUC.Execute(ctx, PostCommentRequest{Username: "zhangsan", ISBN: "9787111213826", Score: 9, Text: "经典教材"})
	require.NoError(t, err)

	_, err = rateUC.Execute(ctx, RateCommentRequest{CommentID: posted.CommentID, Rater: "zhangsan", Tier: "useful"})
	assert.ErrorIs(t, err, comment.ErrSelfRating)
}

// TestRateComment_InvalidTier 测试未知打分档位
func TestRateComment_InvalidTier(t *testing.T) {
	commentRepo, _, _ := testDeps()
	rateUC := NewRateCommentUseCase(commentRepo)

	_, err := rateUC.Execute(context.Background(), RateCommentRequest{CommentID: 1, Rater: "lisi", Tier: "great"})
	assert.ErrorIs(t, err, comment.ErrInvalidTier)
}

// TestRateComment_NotFound 测试给不存在的评论打分
func TestRateComment_NotFound(t *testing.T) {
	commentRepo, _, _ := testDeps()
	rateUC := NewRateCommentUseCase(commentRepo)

	_, err := rateUC.Execute(context.Background(), RateCommentRequest{CommentID: 999, Rater: "lisi", Tier: "useful"})
	assert.ErrorIs(t, err, comment.ErrCommentNotFound)
}

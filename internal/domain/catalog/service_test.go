package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================================
// 内存桩:用合著邻接表模拟作者图
// ========================================

type fakeRepo struct {
	searched []SearchParams
}

func (f *fakeRepo) Create(ctx context.Context, book *Book, authors []AuthorName) error { return nil }

func (f *fakeRepo) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	return nil, ErrBookNotFound
}

func (f *fakeRepo) AuthorsByISBN(ctx context.Context, isbn string) ([]*Author, error) {
	return nil, nil
}

func (f *fakeRepo) Search(ctx context.Context, params SearchParams) ([]*SearchResult, error) {
	f.searched = append(f.searched, params)
	return []*SearchResult{}, nil
}

func (f *fakeRepo) LockByISBN(ctx context.Context, isbn string) (*Book, error) {
	return nil, ErrBookNotFound
}

func (f *fakeRepo) DecrStock(ctx context.Context, isbn string, count int) error { return nil }

func (f *fakeRepo) MostPurchased(ctx context.Context, n int) ([]*RankedBook, error) {
	return nil, nil
}

func (f *fakeRepo) RecommendedFor(ctx context.Context, username string, n int) ([]*RankedBook, error) {
	return nil, nil
}

// fakeAuthorRepo 邻接表形式的合著图
type fakeAuthorRepo struct {
	coAuthors map[AuthorName][]AuthorName
}

func (f *fakeAuthorRepo) Exists(ctx context.Context, name AuthorName) (bool, error) {
	_, ok := f.coAuthors[name]
	return ok, nil
}

func (f *fakeAuthorRepo) CoAuthors(ctx context.Context, name AuthorName) ([]AuthorName, error) {
	return f.coAuthors[name], nil
}

func (f *fakeAuthorRepo) CoAuthorsOfSet(ctx context.Context, names []AuthorName) ([]AuthorName, error) {
	var result []AuthorName
	for _, name := range names {
		result = append(result, f.coAuthors[name]...)
	}
	return result, nil
}

func (f *fakeAuthorRepo) BooksByAuthor(ctx context.Context, name AuthorName) ([]*Book, error) {
	return nil, nil
}

// ========================================
// 测试用例
// ========================================

// TestSearch_EmptyRejected 测试空搜索在进入仓储前被拒绝
func TestSearch_EmptyRejected(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeAuthorRepo{})

	_, err := svc.Search(context.Background(), SearchParams{})
	assert.ErrorIs(t, err, ErrEmptySearch)
	assert.Empty(t, repo.searched, "空搜索不应触发目录查询")
}

// TestSearch_TrustedSortRequiresLogin 测试未登录按信任评分排序被拒绝
func TestSearch_TrustedSortRequiresLogin(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeAuthorRepo{})

	_, err := svc.Search(context.Background(), SearchParams{
		Title:  "Go语言",
		SortBy: SortTrustedScore,
	})
	assert.ErrorIs(t, err, ErrTrustSortRequiresLogin)

	// 登录后同样的搜索放行
	_, err = svc.Search(context.Background(), SearchParams{
		Title:     "Go语言",
		SortBy:    SortTrustedScore,
		TrustedBy: "zhangsan",
	})
	assert.NoError(t, err)
}

// TestDegreeOfSeparation 测试度分离搜索
//
// 合著图:
//
//	seed -- a -- c
//	seed -- b
//	a -- b (1度作者之间也有合著)
func TestDegreeOfSeparation(t *testing.T) {
	seed := AuthorName{FirstName: "John", LastName: "Smith"}
	a := AuthorName{FirstName: "Alice", LastName: "Wong"}
	b := AuthorName{FirstName: "Bob", LastName: "Lee"}
	c := AuthorName{FirstName: "Carol", LastName: "Chen"}

	authorRepo := &fakeAuthorRepo{coAuthors: map[AuthorName][]AuthorName{
		seed: {a, b},
		a:    {seed, b, c},
		b:    {seed, a},
		c:    {a},
	}}
	svc := NewService(&fakeRepo{}, authorRepo)
	ctx := context.Background()

	t.Run("1度", func(t *testing.T) {
		result, err := svc.DegreeOfSeparation(ctx, seed, 1)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.True(t, result[0].AuthorName.Equal(a))
		assert.True(t, result[1].AuthorName.Equal(b))
	})

	t.Run("2度剔除种子和1度作者", func(t *testing.T) {
		// a的邻居{seed,b,c}和b的邻居{seed,a}展开后,
		// 剔除seed/a/b,只剩恰好两跳可达的c
		result, err := svc.DegreeOfSeparation(ctx, seed, 2)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.True(t, result[0].AuthorName.Equal(c))
	})

	t.Run("度数非法", func(t *testing.T) {
		_, err := svc.DegreeOfSeparation(ctx, seed, 3)
		assert.ErrorIs(t, err, ErrInvalidDegree)
	})

	t.Run("种子作者不存在", func(t *testing.T) {
		_, err := svc.DegreeOfSeparation(ctx, AuthorName{FirstName: "No", LastName: "Body"}, 1)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})
}

// TestParseAuthorToken 测试"名_姓"搜索项解析
func TestParseAuthorToken(t *testing.T) {
	name, err := ParseAuthorToken("John_Smith")
	require.NoError(t, err)
	assert.Equal(t, AuthorName{FirstName: "John", LastName: "Smith"}, name)

	// 第一个下划线之后全部算姓
	name, err = ParseAuthorToken("Ursula_Le Guin")
	require.NoError(t, err)
	assert.Equal(t, "Le Guin", name.LastName)

	for _, invalid := range []string{"", "John", "_Smith", "John_"} {
		if _, err := ParseAuthorToken(invalid); err == nil {
			t.Errorf("非法作者项%q应解析失败", invalid)
		}
	}
}

package catalog

import (
	"context"
	"strings"
)

// Service 目录领域服务接口
// 设计说明:
// 1. 封装跨实体的查询逻辑:搜索条件清洗、度分离图搜索
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// Search 图书搜索
	// 业务规则:
	// - 空字符串字段从过滤集中剔除
	// - 全部为空的搜索直接拒绝,不触发目录查询
	// - SortTrustedScore要求TrustedBy非空(查看者已登录)
	Search(ctx context.Context, params SearchParams) ([]*SearchResult, error)

	// DegreeOfSeparation 度分离搜索
	// degree=1: 与种子作者共同署名过ISBN的其他作者
	// degree=2: 与1度作者合著过、但自身与种子无直接合著关系的作者
	//           (恰好两跳,剔除一跳可达者,去重)
	DegreeOfSeparation(ctx context.Context, seed AuthorName, degree int) ([]*SeparatedAuthor, error)
}

type service struct {
	repo       Repository
	authorRepo AuthorRepository
}

// NewService 创建目录领域服务
func NewService(repo Repository, authorRepo AuthorRepository) Service {
	return &service{repo: repo, authorRepo: authorRepo}
}

// Search 图书搜索
func (s *service) Search(ctx context.Context, params SearchParams) ([]*SearchResult, error) {
	// 1. 空搜索校验:必须至少有一个过滤条件
	if !params.HasFilter() {
		return nil, ErrEmptySearch
	}

	// 2. 按信任评分排序必须有查看者
	if params.SortBy == SortTrustedScore && params.TrustedBy == "" {
		return nil, ErrTrustSortRequiresLogin
	}

	// 3. 交给仓储执行过滤+排序
	return s.repo.Search(ctx, params)
}

// DegreeOfSeparation 度分离搜索
// 实现说明:共同署名ISBN构成隐式合著图,这里是深度上限为2的宽度优先可达查询
// 原始的逐候选排除查询被替换为一次邻接展开+内存集合差(见repository.CoAuthorsOfSet)
func (s *service) DegreeOfSeparation(ctx context.Context, seed AuthorName, degree int) ([]*SeparatedAuthor, error) {
	if degree != 1 && degree != 2 {
		return nil, ErrInvalidDegree
	}

	// 1. 确认种子作者存在
	exists, err := s.authorRepo.Exists(ctx, seed)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	// 2. 1度集合:种子的直接合著者
	degree1, err := s.authorRepo.CoAuthors(ctx, seed)
	if err != nil {
		return nil, err
	}

	result := degree1
	if degree == 2 {
		// 3. 2度集合 = 1度集合的邻居 - 1度集合 - 种子
		if len(degree1) == 0 {
			result = nil
		} else {
			neighbors, err := s.authorRepo.CoAuthorsOfSet(ctx, degree1)
			if err != nil {
				return nil, err
			}

			excluded := make(map[AuthorName]bool, len(degree1)+1)
			excluded[seed] = true
			for _, name := range degree1 {
				excluded[name] = true
			}

			// 集合差+去重:同一作者经多个1度中介可达也只出现一次
			seen := make(map[AuthorName]bool, len(neighbors))
			result = result[:0]
			for _, name := range neighbors {
				if excluded[name] || seen[name] {
					continue
				}
				seen[name] = true
				result = append(result, name)
			}
		}
	}

	// 4. 为每位结果作者附上作品列表(按书名排序)
	authors := make([]*SeparatedAuthor, 0, len(result))
	for _, name := range result {
		books, err := s.authorRepo.BooksByAuthor(ctx, name)
		if err != nil {
			return nil, err
		}
		authors = append(authors, &SeparatedAuthor{AuthorName: name, Books: books})
	}

	return authors, nil
}

// ParseAuthorToken 拆分"名_姓"形式的作者搜索项
// 下划线分隔,两段都不能为空
func ParseAuthorToken(token string) (AuthorName, error) {
	parts := strings.SplitN(token, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return AuthorName{}, ErrInvalidAuthorToken
	}
	return AuthorName{FirstName: parts[0], LastName: parts[1]}, nil
}

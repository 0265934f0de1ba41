package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/bookmall/internal/application/catalog"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	"github.com/xiebiao/bookmall/pkg/response"
)

// BookHandler 图书HTTP处理器
// 首页/搜索/详情对匿名顾客开放,登录后附加个性化内容,
// 路由上挂OptionalAuth,Handler里用GetUsername区分
type BookHandler struct {
	indexUseCase        *appcatalog.IndexUseCase
	searchBooksUseCase  *appcatalog.SearchBooksUseCase
	degreeSearchUseCase *appcatalog.DegreeSearchUseCase
	bookDetailUseCase   *appcatalog.BookDetailUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	indexUseCase *appcatalog.IndexUseCase,
	searchBooksUseCase *appcatalog.SearchBooksUseCase,
	degreeSearchUseCase *appcatalog.DegreeSearchUseCase,
	bookDetailUseCase *appcatalog.BookDetailUseCase,
) *BookHandler {
	return &BookHandler{
		indexUseCase:        indexUseCase,
		searchBooksUseCase:  searchBooksUseCase,
		degreeSearchUseCase: degreeSearchUseCase,
		bookDetailUseCase:   bookDetailUseCase,
	}
}

// Index 首页
// @Summary      首页
// @Description  热销榜;登录顾客附加个性化推荐
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/index [get]
func (h *BookHandler) Index(c *gin.Context) {
	result, err := h.indexUseCase.Execute(c.Request.Context(), appcatalog.IndexRequest{
		Viewer: middleware.GetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Search 图书搜索
// @Summary      图书搜索
// @Description  按书名/出版社/主题/关键词/语言/作者过滤,可按出版日期或评分排序
// @Tags         图书
// @Produce      json
// @Param        title query string false "书名"
// @Param        publisher query string false "出版社"
// @Param        subject query string false "主题分类"
// @Param        keywords query string false "关键词"
// @Param        language query string false "语言"
// @Param        author query string false "作者(名_姓)"
// @Param        sort_by query string false "排序方式" Enums(publication_date, score, trusted_score)
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "搜索条件全部为空"
// @Router       /api/v1/book_search [get]
func (h *BookHandler) Search(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), appcatalog.SearchBooksRequest{
		Title:     req.Title,
		Publisher: req.Publisher,
		Subject:   req.Subject,
		Keywords:  req.Keywords,
		Language:  req.Language,
		Author:    req.Author,
		SortBy:    req.SortBy,
		Viewer:    middleware.GetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DegreeSearch 度分离搜索
// @Summary      度分离搜索
// @Description  沿合著关系找与种子作者1度或2度可达的作者及其作品
// @Tags         图书
// @Produce      json
// @Param        author query string true "种子作者(名_姓)"
// @Param        degree query int true "度数" Enums(1, 2)
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/degree_of_separation_search [get]
func (h *BookHandler) DegreeSearch(c *gin.Context) {
	var req dto.DegreeSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.degreeSearchUseCase.Execute(c.Request.Context(), appcatalog.DegreeSearchRequest{
		Author: req.Author,
		Degree: req.Degree,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Detail 图书详情
// @Summary      图书详情
// @Description  图书信息、作者列表和评论区,评论相对查看者标注信任关系
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN号"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [get]
func (h *BookHandler) Detail(c *gin.Context) {
	result, err := h.bookDetailUseCase.Execute(c.Request.Context(), appcatalog.BookDetailRequest{
		ISBN:   c.Param("isbn"),
		Viewer: middleware.GetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

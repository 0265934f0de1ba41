package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	appcomment "github.com/xiebiao/bookmall/internal/application/comment"
	"github.com/xiebiao/bookmall/internal/domain/comment"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// CommentHandler 评论HTTP处理器
type CommentHandler struct {
	postCommentUseCase *appcomment.PostCommentUseCase
	rateCommentUseCase *appcomment.RateCommentUseCase
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(
	postCommentUseCase *appcomment.PostCommentUseCase,
	rateCommentUseCase *appcomment.RateCommentUseCase,
) *CommentHandler {
	return &CommentHandler{
		postCommentUseCase: postCommentUseCase,
		rateCommentUseCase: rateCommentUseCase,
	}
}

// PostComment 发表评论
// @Summary      发表评论
// @Description  对一本书发表评论,每位顾客一本书至多一条
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN号"
// @Param        request body dto.PostCommentRequest true "评论内容"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "重复评论或被封禁"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn}/comments [post]
func (h *CommentHandler) PostComment(c *gin.Context) {
	var req dto.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.postCommentUseCase.Execute(c.Request.Context(), appcomment.PostCommentRequest{
		Username: middleware.MustGetUsername(c),
		ISBN:     c.Param("isbn"),
		Score:    req.Score,
		Text:     req.Text,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "评论发表成功", result)
}

// RateComment 评论打分
// @Summary      评论打分
// @Description  给别人的评论打useless/useful/very_useful档
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Param        request body dto.RateCommentRequest true "打分档位"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "给自己的评论打分"
// @Router       /api/v1/comments/{id}/rating [post]
func (h *CommentHandler) RateComment(c *gin.Context) {
	var req dto.RateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	result, err := h.rateCommentUseCase.Execute(c.Request.Context(), appcomment.RateCommentRequest{
		CommentID: uint(commentID),
		Rater:     middleware.MustGetUsername(c),
		Tier:      req.Tier,
	})
	if err != nil {
		// 打分目标不存在不暴露细节,降级为通用的未知错误提示
		if errors.Is(err, comment.ErrCommentNotFound) {
			response.Error(c, apperrors.ErrUnknown)
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/xiebiao/bookmall/internal/application/customer"
	appqa "github.com/xiebiao/bookmall/internal/application/qa"
	appreport "github.com/xiebiao/bookmall/internal/application/report"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// AdminHandler 管理端HTTP处理器,所有路由要求staff身份
type AdminHandler struct {
	userReportUseCase     *appreport.UserReportUseCase
	bookReportUseCase     *appreport.BookReportUseCase
	answerQuestionUseCase *appqa.AnswerQuestionUseCase
	banCustomerUseCase    *appcustomer.BanCustomerUseCase
	recordOffenseUseCase  *appcustomer.RecordOffenseUseCase
}

// NewAdminHandler 创建管理端处理器
func NewAdminHandler(
	userReportUseCase *appreport.UserReportUseCase,
	bookReportUseCase *appreport.BookReportUseCase,
	answerQuestionUseCase *appqa.AnswerQuestionUseCase,
	banCustomerUseCase *appcustomer.BanCustomerUseCase,
	recordOffenseUseCase *appcustomer.RecordOffenseUseCase,
) *AdminHandler {
	return &AdminHandler{
		userReportUseCase:     userReportUseCase,
		bookReportUseCase:     bookReportUseCase,
		answerQuestionUseCase: answerQuestionUseCase,
		banCustomerUseCase:    banCustomerUseCase,
		recordOffenseUseCase:  recordOffenseUseCase,
	}
}

// UserReport 用户榜单报表
// @Summary      用户报表
// @Description  被信任最多的前N名顾客与评论最有用的前N名顾客
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Param        n query int true "榜单长度"
// @Success      200 {object} response.Response
// @Router       /api/v1/admin/user_report [get]
func (h *AdminHandler) UserReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.userReportUseCase.Execute(c.Request.Context(), appreport.UserReportRequest{
		N: req.N,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// BookReport 图书销量报表
// @Summary      图书报表
// @Description  近90天销量最高的前N本书、前N位作者与前N家出版社
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Param        n query int true "榜单长度"
// @Success      200 {object} response.Response
// @Router       /api/v1/admin/book_report [get]
func (h *AdminHandler) BookReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.bookReportUseCase.Execute(c.Request.Context(), appreport.BookReportRequest{
		N: req.N,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AnswerQuestion 回答顾客提问
// @Summary      答疑
// @Description  商城经理回答指定问题,覆盖待回答占位文案
// @Tags         管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "问题ID"
// @Param        request body dto.AnswerQuestionRequest true "答案内容"
// @Success      200 {object} response.Response
// @Router       /api/v1/admin/questions/{id}/answer [post]
func (h *AdminHandler) AnswerQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, 40900, "问题ID格式错误")
		return
	}

	var req dto.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.answerQuestionUseCase.Execute(c.Request.Context(), appqa.AnswerQuestionRequest{
		QuestionID: uint(questionID),
		Answer:     req.Answer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "回答成功", result)
}

// BanCustomer 切换顾客封禁状态
// @Summary      封禁切换
// @Description  已封禁则解封,未封禁则封禁
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "顾客用户名"
// @Success      200 {object} response.Response
// @Router       /api/v1/admin/customers/{username}/ban [post]
func (h *AdminHandler) BanCustomer(c *gin.Context) {
	target := c.Param("username")
	if target == "" {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	result, err := h.banCustomerUseCase.Execute(c.Request.Context(), appcustomer.BanCustomerRequest{
		Target:   target,
		Operator: middleware.MustGetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RecordOffense 登记顾客违规
// @Summary      违规登记
// @Description  为顾客累加一次违规记录
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "顾客用户名"
// @Success      200 {object} response.Response
// @Router       /api/v1/admin/customers/{username}/offense [post]
func (h *AdminHandler) RecordOffense(c *gin.Context) {
	target := c.Param("username")
	if target == "" {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	result, err := h.recordOffenseUseCase.Execute(c.Request.Context(), appcustomer.RecordOffenseRequest{
		Target: target,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "违规已登记", result)
}

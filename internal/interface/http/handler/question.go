package handler

import (
	"github.com/gin-gonic/gin"

	appqa "github.com/xiebiao/bookmall/internal/application/qa"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	"github.com/xiebiao/bookmall/pkg/response"
)

// QuestionHandler 问答HTTP处理器
type QuestionHandler struct {
	askQuestionUseCase *appqa.AskQuestionUseCase
	myQuestionsUseCase *appqa.MyQuestionsUseCase
}

// NewQuestionHandler 创建问答处理器
func NewQuestionHandler(
	askQuestionUseCase *appqa.AskQuestionUseCase,
	myQuestionsUseCase *appqa.MyQuestionsUseCase,
) *QuestionHandler {
	return &QuestionHandler{
		askQuestionUseCase: askQuestionUseCase,
		myQuestionsUseCase: myQuestionsUseCase,
	}
}

// AskQuestion 顾客提问
// @Summary      提问
// @Description  向商城经理提问,回答前显示待回答占位文案
// @Tags         问答
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AskQuestionRequest true "问题内容"
// @Success      200 {object} response.Response
// @Router       /api/v1/my_question [post]
func (h *QuestionHandler) AskQuestion(c *gin.Context) {
	var req dto.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.askQuestionUseCase.Execute(c.Request.Context(), appqa.AskQuestionRequest{
		Username: middleware.MustGetUsername(c),
		Question: req.Question,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "提问成功", result)
}

// MyQuestions 我的提问
// @Summary      我的提问
// @Description  本人全部提问,按提问时间倒序
// @Tags         问答
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/my_question [get]
func (h *QuestionHandler) MyQuestions(c *gin.Context) {
	result, err := h.myQuestionsUseCase.Execute(c.Request.Context(), appqa.MyQuestionsRequest{
		Username: middleware.MustGetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

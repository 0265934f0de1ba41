package handler

import (
	"github.com/gin-gonic/gin"

	appcustomer "github.com/xiebiao/bookmall/internal/application/customer"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	"github.com/xiebiao/bookmall/pkg/response"
)

// CustomerHandler 顾客HTTP处理器
type CustomerHandler struct {
	signUpUseCase    *appcustomer.SignUpUseCase
	loginUseCase     *appcustomer.LoginUseCase
	logoutUseCase    *appcustomer.LogoutUseCase
	setTrustUseCase  *appcustomer.SetTrustUseCase
	myAccountUseCase *appcustomer.MyAccountUseCase
}

// NewCustomerHandler 创建顾客处理器
func NewCustomerHandler(
	signUpUseCase *appcustomer.SignUpUseCase,
	loginUseCase *appcustomer.LoginUseCase,
	logoutUseCase *appcustomer.LogoutUseCase,
	setTrustUseCase *appcustomer.SetTrustUseCase,
	myAccountUseCase *appcustomer.MyAccountUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		signUpUseCase:    signUpUseCase,
		loginUseCase:     loginUseCase,
		logoutUseCase:    logoutUseCase,
		setTrustUseCase:  setTrustUseCase,
		myAccountUseCase: myAccountUseCase,
	}
}

// SignUp 顾客注册
// @Summary      顾客注册
// @Description  创建新顾客账号
// @Tags         顾客
// @Accept       json
// @Produce      json
// @Param        request body dto.SignUpRequest true "注册信息"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "用户名已存在"
// @Router       /api/v1/sign_up [post]
func (h *CustomerHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.signUpUseCase.Execute(c.Request.Context(), appcustomer.SignUpRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "注册成功，请登录", result)
}

// Login 顾客登录
// @Summary      顾客登录
// @Description  用户名密码登录,返回JWT Token对
// @Tags         顾客
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "密码错误"
// @Failure      404 {object} response.Response "顾客不存在"
// @Router       /api/v1/login [post]
func (h *CustomerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appcustomer.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Logout 顾客登出
// @Summary      顾客登出
// @Description  删除会话并拉黑当前Token
// @Tags         顾客
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/logout [post]
func (h *CustomerHandler) Logout(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	token := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "已退出登录", nil)
}

// SetTrust 信任/不信任切换
// @Summary      信任切换
// @Description  对另一位顾客表态信任或不信任,两种关系互斥
// @Tags         顾客
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "目标顾客用户名"
// @Param        request body dto.SetTrustRequest true "表态方向"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "不能对自己表态"
// @Failure      404 {object} response.Response "顾客不存在"
// @Router       /api/v1/customers/{username}/trust [post]
func (h *CustomerHandler) SetTrust(c *gin.Context) {
	var req dto.SetTrustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.setTrustUseCase.Execute(c.Request.Context(), appcustomer.SetTrustRequest{
		Username:  middleware.MustGetUsername(c),
		Target:    c.Param("username"),
		Direction: req.Direction,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, result.Message, result)
}

// MyAccount 个人中心
// @Summary      个人中心
// @Description  顾客档案、信任名单和本人发表的评论
// @Tags         顾客
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/my_account [get]
func (h *CustomerHandler) MyAccount(c *gin.Context) {
	result, err := h.myAccountUseCase.Execute(c.Request.Context(), appcustomer.MyAccountRequest{
		Username: middleware.MustGetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

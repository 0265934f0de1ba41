package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookmall/internal/application/cart"
	apporder "github.com/xiebiao/bookmall/internal/application/order"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	"github.com/xiebiao/bookmall/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	addToCartUseCase      *appcart.AddToCartUseCase
	viewCartUseCase       *appcart.ViewCartUseCase
	adjustQuantityUseCase *appcart.AdjustQuantityUseCase
	checkoutUseCase       *appcart.CheckoutUseCase
	listOrdersUseCase     *apporder.ListOrdersUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addToCartUseCase *appcart.AddToCartUseCase,
	viewCartUseCase *appcart.ViewCartUseCase,
	adjustQuantityUseCase *appcart.AdjustQuantityUseCase,
	checkoutUseCase *appcart.CheckoutUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
) *CartHandler {
	return &CartHandler{
		addToCartUseCase:      addToCartUseCase,
		viewCartUseCase:       viewCartUseCase,
		adjustQuantityUseCase: adjustQuantityUseCase,
		checkoutUseCase:       checkoutUseCase,
		listOrdersUseCase:     listOrdersUseCase,
	}
}

// AddToCart 加入购物车
// @Summary      加入购物车
// @Description  把一本书加入购物车,重复加入数量+1
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN号"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn}/cart [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	result, err := h.addToCartUseCase.Execute(c.Request.Context(), appcart.AddToCartRequest{
		Username: middleware.MustGetUsername(c),
		ISBN:     c.Param("isbn"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "已加入购物车", result)
}

// ViewCart 查看购物车
// @Summary      查看购物车
// @Description  购物车全部行,含小计和当前库存
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/shopping_cart [get]
func (h *CartHandler) ViewCart(c *gin.Context) {
	result, err := h.viewCartUseCase.Execute(c.Request.Context(), appcart.ViewCartRequest{
		Username: middleware.MustGetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AdjustQuantity 调整购物车数量
// @Summary      调整数量
// @Description  increase数量+1,decrease数量-1,减到0整行删除
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AdjustQuantityRequest true "调整动作"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "购物车条目不存在"
// @Router       /api/v1/shopping_cart/quantity [post]
func (h *CartHandler) AdjustQuantity(c *gin.Context) {
	var req dto.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.adjustQuantityUseCase.Execute(c.Request.Context(), appcart.AdjustQuantityRequest{
		Username: middleware.MustGetUsername(c),
		ISBN:     req.ISBN,
		Action:   req.Action,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Checkout 结算
// @Summary      结算
// @Description  购物车整车结算:建订单、扣库存、清空购物车,原子完成
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "购物车为空或库存不足"
// @Router       /api/v1/shopping_cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.checkoutUseCase.Execute(c.Request.Context(), appcart.CheckoutRequest{
		Username: middleware.MustGetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "下单成功", result)
}

// MyOrders 我的订单
// @Summary      我的订单
// @Description  历史订单列表(含明细),按下单时间倒序
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/my_order [get]
func (h *CartHandler) MyOrders(c *gin.Context) {
	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		Username: middleware.MustGetUsername(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

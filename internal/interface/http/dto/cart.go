package dto

// AdjustQuantityRequest HTTP购物车数量调整请求
type AdjustQuantityRequest struct {
	ISBN   string `json:"isbn" binding:"required,max=13" example:"9787115428028"`
	Action string `json:"action" binding:"required,oneof=increase decrease" example:"increase"`
}

package dto

// SignUpRequest HTTP注册请求
type SignUpRequest struct {
	Username  string `json:"username" binding:"required,min=2,max=30" example:"zhangsan"`
	Password  string `json:"password" binding:"required,min=8,max=30" example:"pass1234"`
	FirstName string `json:"first_name" binding:"required,max=30" example:"三"`
	LastName  string `json:"last_name" binding:"required,max=30" example:"张"`
	Address   string `json:"address" binding:"max=100" example:"北京市海淀区中关村大街1号"`
	Phone     string `json:"phone" binding:"required,max=10" example:"13800138"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"zhangsan"`
	Password string `json:"password" binding:"required" example:"pass1234"`
}

// SetTrustRequest HTTP信任切换请求
// direction只有trust/untrust两种取值,绑定层先拦一道,
// 应用层再解码成枚举做穷举分发
type SetTrustRequest struct {
	Direction string `json:"direction" binding:"required,oneof=trust untrust" example:"trust"`
}

package dto

// ReportRequest HTTP报表请求(query参数)
// n是榜单长度,必须为正整数
type ReportRequest struct {
	N int `form:"n" binding:"required,min=1" example:"10"`
}

package dto

// AskQuestionRequest HTTP提问请求
type AskQuestionRequest struct {
	Question string `json:"question" binding:"required,max=300" example:"有满减活动吗?"`
}

// AnswerQuestionRequest HTTP答疑请求(staff-only)
type AnswerQuestionRequest struct {
	Answer string `json:"answer" binding:"required,max=300" example:"每周五全场九折"`
}

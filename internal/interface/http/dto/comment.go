package dto

// PostCommentRequest HTTP发表评论请求
type PostCommentRequest struct {
	Score int    `json:"score" binding:"required,min=1,max=10" example:"8"`
	Text  string `json:"text" binding:"required,max=300" example:"内容扎实,示例丰富"`
}

// RateCommentRequest HTTP评论打分请求
type RateCommentRequest struct {
	Tier string `json:"tier" binding:"required,oneof=useless useful very_useful" example:"very_useful"`
}

package dto

// SearchBooksRequest HTTP图书搜索请求(query参数)
// 空字符串字段不参与过滤;author是"名_姓"形式
type SearchBooksRequest struct {
	Title     string `form:"title" binding:"max=100" example:"Go语言实战"`
	Publisher string `form:"publisher" binding:"max=100" example:"人民邮电出版社"`
	Subject   string `form:"subject" binding:"max=100" example:"计算机"`
	Keywords  string `form:"keywords" binding:"max=100" example:"并发"`
	Language  string `form:"language" binding:"max=30" example:"中文"`
	Author    string `form:"author" binding:"max=61" example:"威廉_肯尼迪"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=publication_date score trusted_score" example:"score"`
}

// DegreeSearchRequest HTTP度分离搜索请求(query参数)
type DegreeSearchRequest struct {
	Author string `form:"author" binding:"required,max=61" example:"威廉_肯尼迪"`
	Degree int    `form:"degree" binding:"required,oneof=1 2" example:"1"`
}

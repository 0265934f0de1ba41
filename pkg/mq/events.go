package mq

import (
	"time"
)

// 路由键
const (
	RoutingKeyOrderCreated     = "order.created"
	RoutingKeyCustomerBanned   = "customer.banned"
	RoutingKeyQuestionAnswered = "question.answered"
)

// OrderCreatedEvent 结算建单事件
// 下游：发货、购买回执通知
type OrderCreatedEvent struct {
	OrderNo   string    `json:"order_no"`
	Username  string    `json:"username"`
	Total     int64     `json:"total"` // 总金额(分)
	ItemCount int       `json:"item_count"`
	OrderTime time.Time `json:"order_time"`
}

// CustomerBannedEvent 封禁状态变更事件
// 下游：通知、在线会话回收
type CustomerBannedEvent struct {
	Username string    `json:"username"`
	Banned   bool      `json:"banned"`
	Operator string    `json:"operator"` // 操作的管理员用户名
	Time     time.Time `json:"time"`
}

// QuestionAnsweredEvent 提问被回答事件
// 下游：站内信通知提问顾客
type QuestionAnsweredEvent struct {
	QuestionID uint      `json:"question_id"`
	Username   string    `json:"username"` // 提问者
	Time       time.Time `json:"time"`
}

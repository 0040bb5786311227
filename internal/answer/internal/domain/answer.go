package domain

import "time"

// Feedback AI 点评的结果，只能由解析器构造，构造出来之后不可变
type Feedback struct {
	// 评分，[1,5]
	Rating int `json:"rating"`
	// 具体的点评，顺序即展示顺序
	Points []string `json:"feedback"`
}

// Answer 一次成功提交的回答，连同 AI 的点评一起落库，只追加不修改
type Answer struct {
	Id  int64
	Uid int64
	Qid int64
	// 用户的原始回答，去掉了首尾空白
	AnswerText string
	Feedback   Feedback
	Ctime      time.Time
}

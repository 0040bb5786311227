package web

import (
	"time"

	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
)

type SubmitReq struct {
	Qid        int64  `json:"qid"`
	AnswerText string `json:"answerText"`
}

type Feedback struct {
	Rating int      `json:"rating"`
	Points []string `json:"feedback"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Answer struct {
	Id         int64    `json:"id,omitempty"`
	Qid        int64    `json:"qid,omitempty"`
	AnswerText string   `json:"answerText,omitempty"`
	Feedback   Feedback `json:"feedback"`
	Ctime      string   `json:"ctime,omitempty"`
}

type AnswerListResp struct {
	Answers []Answer `json:"answers,omitempty"`
}

type QuotaResp struct {
	Remaining int `json:"remaining"`
}

func newFeedback(f domain.Feedback) Feedback {
	return Feedback{
		Rating: f.Rating,
		Points: f.Points,
	}
}

func newAnswer(a domain.Answer) Answer {
	return Answer{
		Id:         a.Id,
		Qid:        a.Qid,
		AnswerText: a.AnswerText,
		Feedback:   newFeedback(a.Feedback),
		Ctime:      a.Ctime.Format(time.DateTime),
	}
}

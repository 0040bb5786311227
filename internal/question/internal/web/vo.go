package web

import (
	"time"

	"github.com/ecodeclub/mentor/internal/question/internal/domain"
)

type JobTrack struct {
	Id          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Utime       string `json:"utime,omitempty"`
}

type Question struct {
	Id        int64  `json:"id,omitempty"`
	Tid       int64  `json:"tid,omitempty"`
	Text      string `json:"text,omitempty"`
	TrackName string `json:"trackName,omitempty"`
	Utime     string `json:"utime,omitempty"`
}

type TrackListResp struct {
	Tracks []JobTrack `json:"tracks,omitempty"`
}

type QuestionListReq struct {
	Tid    int64 `json:"tid"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type QuestionListResp struct {
	Questions []Question `json:"questions,omitempty"`
}

type Qid struct {
	Qid int64 `json:"qid"`
}

type SaveTrackReq struct {
	Track JobTrack `json:"track,omitempty"`
}

type SaveQuestionReq struct {
	Question Question `json:"question,omitempty"`
}

func (t JobTrack) toDomain() domain.JobTrack {
	return domain.JobTrack{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
	}
}

func (q Question) toDomain() domain.Question {
	return domain.Question{
		Id:   q.Id,
		Tid:  q.Tid,
		Text: q.Text,
	}
}

func newJobTrack(t domain.JobTrack) JobTrack {
	return JobTrack{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Utime:       t.Utime.Format(time.DateTime),
	}
}

func newQuestion(q domain.Question) Question {
	return Question{
		Id:        q.Id,
		Tid:       q.Tid,
		Text:      q.Text,
		TrackName: q.TrackName,
		Utime:     q.Utime.Format(time.DateTime),
	}
}

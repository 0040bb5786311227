package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository/dao"
)

//go:generate mockgen -source=./answer.go -destination=./mocks/answer.mock.go -package=repomocks AnswerRepository
type AnswerRepository interface {
	// GetQuota 查不到记录的时候返回零值 Quota，调用方不需要关心用户是不是第一次提交
	GetQuota(ctx context.Context, uid int64) (domain.Quota, error)
	// Submit 原子提交：扣减额度 + 写入回答
	Submit(ctx context.Context, answer domain.Answer, today string, limit int) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, error)
}

type answerRepo struct {
	dao dao.AnswerDAO
}

func NewAnswerRepo(answerDao dao.AnswerDAO) AnswerRepository {
	return &answerRepo{
		dao: answerDao,
	}
}

func (a *answerRepo) GetQuota(ctx context.Context, uid int64) (domain.Quota, error) {
	quota, err := a.dao.FindQuota(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Quota{Uid: uid}, nil
	}
	if err != nil {
		return domain.Quota{}, err
	}
	return domain.Quota{
		Uid:         quota.Uid,
		Used:        quota.Used,
		LastCallDay: quota.LastCallDay,
		Version:     quota.Version,
	}, nil
}

func (a *answerRepo) Submit(ctx context.Context, answer domain.Answer, today string, limit int) (int64, error) {
	return a.dao.Submit(ctx, a.toEntity(answer), today, limit)
}

func (a *answerRepo) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, error) {
	answers, err := a.dao.List(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(answers, func(idx int, src dao.Answer) domain.Answer {
		return a.toDomain(src)
	}), nil
}

func (a *answerRepo) toEntity(answer domain.Answer) dao.Answer {
	return dao.Answer{
		Id:         answer.Id,
		Uid:        answer.Uid,
		Qid:        answer.Qid,
		AnswerText: answer.AnswerText,
		Feedback: sqlx.JsonColumn[domain.Feedback]{
			Valid: true,
			Val:   answer.Feedback,
		},
	}
}

func (a *answerRepo) toDomain(answer dao.Answer) domain.Answer {
	return domain.Answer{
		Id:         answer.Id,
		Uid:        answer.Uid,
		Qid:        answer.Qid,
		AnswerText: answer.AnswerText,
		Feedback:   answer.Feedback.Val,
		Ctime:      time.UnixMilli(answer.Ctime),
	}
}

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mentor/internal/ai/internal/domain"
	"github.com/ecodeclub/mentor/internal/ai/internal/repository/dao"
)

type LLMRecordRepo interface {
	SaveRecord(ctx context.Context, record domain.LLMRecord) (int64, error)
}

type llmRecordRepo struct {
	dao dao.LLMRecordDAO
}

func NewLLMRecordRepo(recordDao dao.LLMRecordDAO) LLMRecordRepo {
	return &llmRecordRepo{
		dao: recordDao,
	}
}

func (l *llmRecordRepo) SaveRecord(ctx context.Context, record domain.LLMRecord) (int64, error) {
	return l.dao.Save(ctx, l.toEntity(record))
}

func (l *llmRecordRepo) toEntity(record domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:     record.Id,
		Tid:    record.Tid,
		Uid:    record.Uid,
		Biz:    record.Biz,
		Tokens: record.Tokens,
		Amount: record.Amount,
		Status: record.Status.ToUint8(),
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   record.Input,
		},
		Answer: sql.NullString{
			Valid:  record.Answer != "",
			String: record.Answer,
		},
	}
}

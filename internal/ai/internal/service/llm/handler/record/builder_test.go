package record

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mentor/internal/ai/internal/domain"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records []domain.LLMRecord
}

func (f *fakeRepo) SaveRecord(ctx context.Context, record domain.LLMRecord) (int64, error) {
	f.records = append(f.records, record)
	return int64(len(f.records)), nil
}

func TestHandlerBuilder_Next(t *testing.T) {
	t.Parallel()
	req := domain.LLMRequest{
		Uid:   123,
		Tid:   "tid-abc",
		Biz:   domain.BizAnswerFeedback,
		Input: []string{"后端工程师", "题目", "回答"},
	}
	testCases := []struct {
		name       string
		next       handler.Handler
		wantStatus domain.RecordStatus
		wantErr    bool
	}{
		{
			name: "调用成功记成功",
			next: handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{
					Tokens: 100,
					Amount: 10,
					Answer: "不错",
				}, nil
			}),
			wantStatus: domain.RecordStatusSuccess,
		},
		{
			name: "调用失败也要留下记录",
			next: handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{}, errors.New("mock error")
			}),
			wantStatus: domain.RecordStatusFailed,
			wantErr:    true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			h := NewHandler(repo).Next(tc.next)
			resp, err := h.Handle(context.Background(), req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "不错", resp.Answer)
			}
			require.Len(t, repo.records, 1)
			record := repo.records[0]
			assert.Equal(t, tc.wantStatus, record.Status)
			assert.Equal(t, req.Tid, record.Tid)
			assert.Equal(t, req.Uid, record.Uid)
			assert.Equal(t, req.Biz, record.Biz)
			assert.Equal(t, req.Input, record.Input)
			if !tc.wantErr {
				assert.Equal(t, int64(100), record.Tokens)
				assert.Equal(t, int64(10), record.Amount)
			}
		})
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/mentor/internal/ai"
	aimocks "github.com/ecodeclub/mentor/internal/ai/mocks"
	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository/dao"
	repomocks "github.com/ecodeclub/mentor/internal/answer/internal/repository/mocks"
	"github.com/ecodeclub/mentor/internal/question"
	quemocks "github.com/ecodeclub/mentor/internal/question/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDailyLimit = 20

func today() string {
	return time.Now().UTC().Format(time.DateOnly)
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	const (
		uid = int64(123)
		qid = int64(4)
	)
	que := question.Question{
		Id:        qid,
		Text:      "Tell me about yourself",
		TrackName: "软件工程师",
	}
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService)
		answerText string

		wantFeedback domain.Feedback
		wantErr      error
	}{
		{
			name: "提交成功",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).Return(que, nil)
				repo.EXPECT().GetQuota(gomock.Any(), uid).
					Return(domain.Quota{Uid: uid, Used: 3, LastCallDay: today()}, nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, uid, req.Uid)
						assert.Equal(t, ai.BizAnswerFeedback, req.Biz)
						assert.NotEmpty(t, req.Tid)
						assert.Equal(t, []string{que.TrackName, que.Text, "我的回答"}, req.Input)
						assert.Equal(t, fmt.Sprintf(promptTemplate, que.TrackName, que.Text, "我的回答"), req.Prompt)
						return ai.LLMResponse{
							Tokens: 100,
							Answer: `{"rating":4,"feedback":["a","b","c"]}`,
						}, nil
					})
				repo.EXPECT().Submit(gomock.Any(), domain.Answer{
					Uid:        uid,
					Qid:        qid,
					AnswerText: "我的回答",
					Feedback: domain.Feedback{
						Rating: 4,
						Points: []string{"a", "b", "c"},
					},
				}, today(), testDailyLimit).Return(int64(1), nil)
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantFeedback: domain.Feedback{
				Rating: 4,
				Points: []string{"a", "b", "c"},
			},
		},
		{
			name: "回答是空白",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				return repomocks.NewMockAnswerRepository(ctrl),
					quemocks.NewMockService(ctrl),
					aimocks.NewMockService(ctrl)
			},
			answerText: "   \n\t ",
			wantErr:    ErrInvalidInput,
		},
		{
			name: "题目不存在",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).
					Return(question.Question{}, question.ErrQuestionNotFound)
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantErr:    ErrQuestionNotFound,
		},
		{
			name: "预检查额度已用完，不会去调大模型",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).Return(que, nil)
				repo.EXPECT().GetQuota(gomock.Any(), uid).
					Return(domain.Quota{Uid: uid, Used: testDailyLimit, LastCallDay: today()}, nil)
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantErr:    ErrQuotaExceeded,
		},
		{
			name: "昨天用完了今天重新计数",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).Return(que, nil)
				yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly)
				repo.EXPECT().GetQuota(gomock.Any(), uid).
					Return(domain.Quota{Uid: uid, Used: testDailyLimit, LastCallDay: yesterday}, nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"rating":5,"feedback":["a"]}`}, nil)
				repo.EXPECT().Submit(gomock.Any(), gomock.Any(), today(), testDailyLimit).
					Return(int64(1), nil)
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantFeedback: domain.Feedback{
				Rating: 5,
				Points: []string{"a"},
			},
		},
		{
			name: "大模型挂了，不扣额度",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).Return(que, nil)
				repo.EXPECT().GetQuota(gomock.Any(), uid).
					Return(domain.Quota{Uid: uid}, nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.New("mock error"))
				// 没有任何 Submit 调用
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantErr:    ErrGenerationFailed,
		},
		{
			name: "响应解析失败，不扣额度",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).Return(que, nil)
				repo.EXPECT().GetQuota(gomock.Any(), uid).
					Return(domain.Quota{Uid: uid}, nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"rating":9,"feedback":["a"]}`}, nil)
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantErr:    ErrInvalidRating,
		},
		{
			name: "提交的时候发现额度被并发用完了",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).Return(que, nil)
				repo.EXPECT().GetQuota(gomock.Any(), uid).
					Return(domain.Quota{Uid: uid, Used: testDailyLimit - 1, LastCallDay: today()}, nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"rating":3,"feedback":["a"]}`}, nil)
				repo.EXPECT().Submit(gomock.Any(), gomock.Any(), today(), testDailyLimit).
					Return(int64(0), dao.ErrQuotaExceeded)
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantErr:    ErrQuotaExceeded,
		},
		{
			name: "提交输给了并发请求",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, question.Service, ai.LLMService) {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				queSvc := quemocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				queSvc.EXPECT().Detail(gomock.Any(), qid).Return(que, nil)
				repo.EXPECT().GetQuota(gomock.Any(), uid).
					Return(domain.Quota{Uid: uid}, nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"rating":3,"feedback":["a"]}`}, nil)
				repo.EXPECT().Submit(gomock.Any(), gomock.Any(), today(), testDailyLimit).
					Return(int64(0), dao.ErrRecordChangedConcurrently)
				return repo, queSvc, aiSvc
			},
			answerText: "我的回答",
			wantErr:    ErrCommitAborted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, queSvc, aiSvc := tc.mock(ctrl)
			svc := NewService(repo, queSvc, aiSvc, testDailyLimit)
			feedback, err := svc.Submit(context.Background(), uid, qid, tc.answerText)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantFeedback, feedback)
		})
	}
}

func TestService_Submit_CancelledContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAnswerRepository(ctrl)
	queSvc := quemocks.NewMockService(ctrl)
	aiSvc := aimocks.NewMockService(ctrl)
	queSvc.EXPECT().Detail(gomock.Any(), int64(4)).
		Return(question.Question{Id: 4, Text: "q", TrackName: "t"}, nil)
	repo.EXPECT().GetQuota(gomock.Any(), int64(123)).
		Return(domain.Quota{Uid: 123}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
			// 生成过程中客户端断开了
			cancel()
			return ai.LLMResponse{Answer: `{"rating":3,"feedback":["a"]}`}, nil
		})
	// 取消之后不能再提交
	svc := NewService(repo, queSvc, aiSvc, testDailyLimit)
	_, err := svc.Submit(ctx, 123, 4, "我的回答")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_RemainingQuota(t *testing.T) {
	t.Parallel()
	const uid = int64(123)
	testCases := []struct {
		name  string
		quota domain.Quota
		want  int
	}{
		{
			name: "从来没用过",
			quota: domain.Quota{
				Uid: uid,
			},
			want: testDailyLimit,
		},
		{
			name: "今天用了一部分",
			quota: domain.Quota{
				Uid:         uid,
				Used:        7,
				LastCallDay: today(),
			},
			want: testDailyLimit - 7,
		},
		{
			name: "昨天用完了",
			quota: domain.Quota{
				Uid:         uid,
				Used:        testDailyLimit,
				LastCallDay: time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly),
			},
			want: testDailyLimit,
		},
		{
			name: "上限调低之后不会出现负数",
			quota: domain.Quota{
				Uid:         uid,
				Used:        testDailyLimit + 5,
				LastCallDay: today(),
			},
			want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockAnswerRepository(ctrl)
			repo.EXPECT().GetQuota(gomock.Any(), uid).Return(tc.quota, nil)
			svc := NewService(repo, quemocks.NewMockService(ctrl), aimocks.NewMockService(ctrl), testDailyLimit)
			remaining, err := svc.RemainingQuota(context.Background(), uid)
			require.NoError(t, err)
			assert.Equal(t, tc.want, remaining)
		})
	}
}

// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/mentor/internal/ai"
	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository/dao"
	"github.com/ecodeclub/mentor/internal/question"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrInvalidInput = errors.New("输入不合法")
	// ErrQuestionNotFound 题目不存在
	ErrQuestionNotFound = question.ErrQuestionNotFound
	// ErrQuotaExceeded 今天的 AI 点评次数已经用完，明天再来
	ErrQuotaExceeded = errors.New("今日AI点评次数已用完")
	// ErrGenerationFailed 大模型那边挂了，额度没有扣，可以直接重试
	ErrGenerationFailed = errors.New("AI 生成失败")
	// ErrInvalidRating 大模型返回的评分不是 [1,5] 的整数
	ErrInvalidRating = errors.New("评分不合法")
	// ErrInvalidFeedbackBody 大模型返回的点评内容不可用
	ErrInvalidFeedbackBody = errors.New("点评内容不合法")
	// ErrCommitAborted 提交事务没成功，比如输给了并发请求，可以重试
	ErrCommitAborted = errors.New("提交冲突")
)

// promptTemplate 依次填入：岗位方向名字、题目、用户的回答。
// 模板本身是确定的，同样的输入一定得到同样的 prompt。
const promptTemplate = `You are an expert AI Interview Coach named 'Mentor'. You are role-playing as a senior hiring manager for a '%s' position. You are professional, constructive, and aim to help the candidate improve.

The interview question was:
"%s"

The user's answer is:
"%s"

Your Task:
Provide feedback on their answer. Format your response *only* as a JSON object with two keys: "rating" (a numerical score from 1 to 5) and "feedback" (an array of 3-4 strings).

Example JSON format:
{
  "rating": 3,
  "feedback": [
    "Good use of the STAR method to structure your answer.",
    "The 'Result' part of your answer was a bit vague. Try to include a specific metric or outcome.",
    "Your tone is professional and confident."
  ]
}

Analyze the answer for structure, clarity, and impact. Be specific. Always include at least one "what to improve" bullet point. Keep feedback concise.`

//go:generate mockgen -source=./answer.go -destination=../../mocks/answer.mock.go -package=answermocks Service
type Service interface {
	// Submit 提交一个回答，返回 AI 的点评。
	// 除了最后的提交事务，任何一步失败都不会扣额度，也不会留下任何数据。
	Submit(ctx context.Context, uid, qid int64, answerText string) (domain.Feedback, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, error)
	// RemainingQuota 今天还剩多少次
	RemainingQuota(ctx context.Context, uid int64) (int, error)
}

type service struct {
	repo   repository.AnswerRepository
	queSvc question.Service
	aiSvc  ai.LLMService
	// 每人每天的调用上限
	dailyLimit int
}

func NewService(repo repository.AnswerRepository,
	queSvc question.Service,
	aiSvc ai.LLMService,
	dailyLimit int) Service {
	return &service{
		repo:       repo,
		queSvc:     queSvc,
		aiSvc:      aiSvc,
		dailyLimit: dailyLimit,
	}
}

// Submit 的执行步骤：
// - 校验输入和题目
// - 预检查额度，快速拒绝明显超限的请求
// - 调大模型拿点评，解析校验
// - 在一个事务里重新校验额度、扣减并落库
// 预检查只是快路径，真正作数的是事务里的那一次校验。
func (s *service) Submit(ctx context.Context, uid, qid int64, answerText string) (domain.Feedback, error) {
	answerText = strings.TrimSpace(answerText)
	if qid <= 0 || answerText == "" {
		return domain.Feedback{}, fmt.Errorf("%w: qid %d", ErrInvalidInput, qid)
	}
	que, err := s.queSvc.Detail(ctx, qid)
	if err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			return domain.Feedback{}, fmt.Errorf("%w: qid %d", ErrQuestionNotFound, qid)
		}
		return domain.Feedback{}, err
	}

	quota, err := s.repo.GetQuota(ctx, uid)
	if err != nil {
		return domain.Feedback{}, err
	}
	if quota.EffectiveCount(s.today()) >= s.dailyLimit {
		return domain.Feedback{}, fmt.Errorf("%w: uid %d", ErrQuotaExceeded, uid)
	}

	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Uid:    uid,
		Tid:    shortuuid.New(),
		Biz:    ai.BizAnswerFeedback,
		Input:  []string{que.TrackName, que.Text, answerText},
		Prompt: fmt.Sprintf(promptTemplate, que.TrackName, que.Text, answerText),
	})
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	feedback, err := parseFeedback(resp.Answer)
	if err != nil {
		return domain.Feedback{}, err
	}

	// 请求已经取消的就不要再提交了，生成的结果直接丢弃
	if err = ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	// 生成可能很慢，重新算一次 today，避免跨天的时候用旧日期提交
	_, err = s.repo.Submit(ctx, domain.Answer{
		Uid:        uid,
		Qid:        qid,
		AnswerText: answerText,
		Feedback:   feedback,
	}, s.today(), s.dailyLimit)
	switch {
	case err == nil:
		return feedback, nil
	case errors.Is(err, dao.ErrQuotaExceeded):
		return domain.Feedback{}, fmt.Errorf("%w: uid %d", ErrQuotaExceeded, uid)
	case errors.Is(err, dao.ErrRecordChangedConcurrently):
		return domain.Feedback{}, fmt.Errorf("%w: uid %d", ErrCommitAborted, uid)
	default:
		// 存储层的失败和逻辑上的额度竞争是两码事，
		// 统一作为可重试的提交失败返回
		return domain.Feedback{}, fmt.Errorf("%w: %v", ErrCommitAborted, err)
	}
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, error) {
	return s.repo.List(ctx, uid, offset, limit)
}

func (s *service) RemainingQuota(ctx context.Context, uid int64) (int, error) {
	quota, err := s.repo.GetQuota(ctx, uid)
	if err != nil {
		return 0, err
	}
	remaining := s.dailyLimit - quota.EffectiveCount(s.today())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// today 额度以 UTC 的自然日为单位
func (s *service) today() string {
	return time.Now().UTC().Format(time.DateOnly)
}

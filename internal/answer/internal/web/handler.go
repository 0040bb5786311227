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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
	"github.com/ecodeclub/mentor/internal/answer/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/answer/submit", ginx.BS[SubmitReq](h.Submit))
	server.POST("/answer/list", ginx.BS[Page](h.List))
	server.GET("/answer/quota", ginx.S(h.Quota))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	feedback, err := h.svc.Submit(ctx, uid, req.Qid, req.AnswerText)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newFeedback(feedback),
		}, nil
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, err
	case errors.Is(err, service.ErrQuestionNotFound):
		return questionNotFoundResult, err
	case errors.Is(err, service.ErrQuotaExceeded):
		return quotaExceededResult, err
	case errors.Is(err, service.ErrGenerationFailed),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidFeedbackBody):
		// 生成和解析的失败没扣额度，提示用户重试
		return generationFailedResult, err
	case errors.Is(err, service.ErrCommitAborted):
		return commitConflictResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	answers, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AnswerListResp{
			Answers: slice.Map(answers, func(idx int, src domain.Answer) Answer {
				return newAnswer(src)
			}),
		},
	}, nil
}

func (h *Handler) Quota(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	remaining, err := h.svc.RemainingQuota(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: QuotaResp{
			Remaining: remaining,
		},
	}, nil
}

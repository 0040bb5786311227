package answer

import (
	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
	"github.com/ecodeclub/mentor/internal/answer/internal/service"
	"github.com/ecodeclub/mentor/internal/answer/internal/web"
)

type Answer = domain.Answer
type Feedback = domain.Feedback
type Quota = domain.Quota
type Service = service.Service
type Handler = web.Handler

var (
	ErrInvalidInput        = service.ErrInvalidInput
	ErrQuestionNotFound    = service.ErrQuestionNotFound
	ErrQuotaExceeded       = service.ErrQuotaExceeded
	ErrGenerationFailed    = service.ErrGenerationFailed
	ErrInvalidRating       = service.ErrInvalidRating
	ErrInvalidFeedbackBody = service.ErrInvalidFeedbackBody
	ErrCommitAborted       = service.ErrCommitAborted
)

package question

import (
	"github.com/ecodeclub/mentor/internal/question/internal/domain"
	"github.com/ecodeclub/mentor/internal/question/internal/service"
	"github.com/ecodeclub/mentor/internal/question/internal/web"
)

type JobTrack = domain.JobTrack
type Question = domain.Question
type Service = service.Service
type Handler = web.Handler
type AdminHandler = web.AdminHandler

var ErrQuestionNotFound = service.ErrQuestionNotFound

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mentor/internal/question/internal/domain"
	"github.com/ecodeclub/mentor/internal/question/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 没登录也可以浏览题库
	server.GET("/track/list", ginx.W(h.TrackList))
	server.POST("/question/list", ginx.B[QuestionListReq](h.List))
	server.POST("/question/detail", ginx.B[Qid](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) TrackList(ctx *ginx.Context) (ginx.Result, error) {
	tracks, err := h.svc.TrackList(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TrackListResp{
			Tracks: slice.Map(tracks, func(idx int, src domain.JobTrack) JobTrack {
				return newJobTrack(src)
			}),
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req QuestionListReq) (ginx.Result, error) {
	questions, err := h.svc.List(ctx, req.Tid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: QuestionListResp{
			Questions: slice.Map(questions, func(idx int, src domain.Question) Question {
				return newQuestion(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req Qid) (ginx.Result, error) {
	que, err := h.svc.Detail(ctx, req.Qid)
	if errors.Is(err, service.ErrQuestionNotFound) {
		return questionNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newQuestion(que),
	}, nil
}

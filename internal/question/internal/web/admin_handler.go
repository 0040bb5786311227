package web

import (
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mentor/internal/question/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端，维护岗位方向和面试题
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/track/save", ginx.S(h.Permission), ginx.B[SaveTrackReq](h.SaveTrack))
	server.POST("/question/save", ginx.S(h.Permission), ginx.B[SaveQuestionReq](h.Save))
	server.POST("/question/delete", ginx.S(h.Permission), ginx.B[Qid](h.Delete))
}

func (h *AdminHandler) SaveTrack(ctx *ginx.Context, req SaveTrackReq) (ginx.Result, error) {
	id, err := h.svc.SaveTrack(ctx, req.Track.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveQuestionReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Question.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req Qid) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Qid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("creator").StringOrDefault("") != "true" {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, fmt.Errorf("非法访问管理端 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

package test

import (
	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

func init() {
	// 集成测试里 session 由测试中间件塞进 _session，这里只负责取出来
	session.SetDefaultProvider(&fakeSessionProvider{})
}

type fakeSessionProvider struct {
}

func (f *fakeSessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (f *fakeSessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, _ := ctx.Get("_session")
	return val.(session.Session), nil
}

func (f *fakeSessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (f *fakeSessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (f *fakeSessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mentor/internal/ai"
	"github.com/ecodeclub/mentor/internal/answer"
	"github.com/ecodeclub/mentor/internal/question"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		ai.InitModule,
		question.InitModule,
		answer.InitModule,
		wire.FieldsOf(new(*question.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*answer.Module), "Hdl"),
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}

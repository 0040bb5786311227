//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mentor/internal/ai"
	"github.com/ecodeclub/mentor/internal/answer"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository/dao"
	"github.com/ecodeclub/mentor/internal/answer/internal/service"
	"github.com/ecodeclub/mentor/internal/answer/internal/web"
	"github.com/ecodeclub/mentor/internal/question"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

// InitModule aiSvc 由测试传入，方便换成 mock
func InitModule(db *egorm.Component,
	queModule *question.Module,
	aiSvc ai.LLMService,
	dailyLimit int) *answer.Module {
	wire.Build(
		initAnswerDao,
		repository.NewAnswerRepo,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(answer.Module), "*"),
		wire.FieldsOf(new(*question.Module), "Svc"),
	)
	return new(answer.Module)
}

func initAnswerDao(db *egorm.Component) dao.AnswerDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMAnswerDAO(db)
}

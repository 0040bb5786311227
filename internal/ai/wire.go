//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/mentor/internal/ai/internal/repository"
	"github.com/ecodeclub/mentor/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		llm.NewLLMService,
		repository.NewLLMRecordRepo,
		InitLLMRecordDAO,

		log.NewHandler,
		record.NewHandler,

		InitCommonHandlers,
		InitPlatformHandler,
		InitRootHandler,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitRootHandler(common []handler.Builder, platform handler.Handler) handler.Handler {
	return handler.NewCompositionHandler(common, platform)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}

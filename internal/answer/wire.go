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

//go:build wireinject

package answer

import (
	"sync"

	"github.com/ecodeclub/mentor/internal/ai"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository"
	"github.com/ecodeclub/mentor/internal/answer/internal/repository/dao"
	"github.com/ecodeclub/mentor/internal/answer/internal/service"
	"github.com/ecodeclub/mentor/internal/answer/internal/web"
	"github.com/ecodeclub/mentor/internal/question"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component,
	queModule *question.Module,
	aiModule *ai.Module) (*Module, error) {
	wire.Build(
		InitAnswerDAO,
		repository.NewAnswerRepo,
		InitService,
		web.NewHandler,
		wire.FieldsOf(new(*question.Module), "Svc"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// InitService 每日上限从配置里读，没配就用 20
func InitService(repo repository.AnswerRepository,
	queSvc question.Service,
	aiSvc ai.LLMService) service.Service {
	type Config struct {
		DailyLimit int `yaml:"dailyLimit"`
	}
	var cfg Config
	err := econf.UnmarshalKey("quota", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.DailyLimit <= 0 {
		cfg.DailyLimit = 20
	}
	return service.NewService(repo, queSvc, aiSvc, cfg.DailyLimit)
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

func InitAnswerDAO(db *egorm.Component) dao.AnswerDAO {
	InitTableOnce(db)
	return dao.NewGORMAnswerDAO(db)
}

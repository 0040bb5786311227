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

package ai

import (
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/mentor/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

// InitPlatformHandler platform 就是真正的出口
func InitPlatformHandler() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
	}
	var cfg Config
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Platform {
	case "zhipu":
		return InitZhipu()
	default:
		return InitGemini()
	}
}

func InitGemini() *gemini.Handler {
	type Config struct {
		APIKey string  `yaml:"apikey"`
		Model  string  `yaml:"model"`
		Price  float64 `yaml:"price"`
	}
	var cfg Config
	err := econf.UnmarshalKey("gemini", &cfg)
	if err != nil {
		panic(err)
	}
	return gemini.NewHandler(cfg.APIKey, cfg.Model, cfg.Price)
}

func InitZhipu() *zhipu.Handler {
	type Config struct {
		APIKey string  `yaml:"apikey"`
		Model  string  `yaml:"model"`
		Price  float64 `yaml:"price"`
	}
	var cfg Config
	err := econf.UnmarshalKey("zhipu", &cfg)
	if err != nil {
		panic(err)
	}
	h, err := zhipu.NewHandler(cfg.APIKey, cfg.Model, cfg.Price)
	if err != nil {
		panic(err)
	}
	return h
}

func InitCommonHandlers(log *log.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	// log -> record -> platform
	return []handler.Builder{log, record}
}

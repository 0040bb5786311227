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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/mentor/internal/question/internal/domain"
	"github.com/ecodeclub/mentor/internal/question/internal/repository"
	"github.com/ecodeclub/mentor/internal/question/internal/repository/dao"
)

var ErrQuestionNotFound = errors.New("问题不存在")

//go:generate mockgen -source=./question.go -destination=../../mocks/question.mock.go -package=quemocks Service
type Service interface {
	TrackList(ctx context.Context) ([]domain.JobTrack, error)
	SaveTrack(ctx context.Context, t domain.JobTrack) (int64, error)
	List(ctx context.Context, tid int64, offset, limit int) ([]domain.Question, error)
	// Detail 返回的 Question 带上岗位方向的名字
	Detail(ctx context.Context, id int64) (domain.Question, error)
	Save(ctx context.Context, q domain.Question) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) TrackList(ctx context.Context) ([]domain.JobTrack, error) {
	return s.repo.TrackList(ctx)
}

func (s *service) SaveTrack(ctx context.Context, t domain.JobTrack) (int64, error) {
	return s.repo.SaveTrack(ctx, t)
}

func (s *service) List(ctx context.Context, tid int64, offset, limit int) ([]domain.Question, error) {
	return s.repo.List(ctx, tid, offset, limit)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Question, error) {
	que, err := s.repo.Detail(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Question{}, ErrQuestionNotFound
	}
	return que, err
}

func (s *service) Save(ctx context.Context, q domain.Question) (int64, error) {
	return s.repo.Save(ctx, q)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

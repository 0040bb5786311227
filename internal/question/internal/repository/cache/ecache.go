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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mentor/internal/question/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrTrackListNotFound = errors.New("岗位方向列表没找到")
)

const (
	// 题库很少更新，可以缓存得久一点
	expiration = 30 * time.Minute
)

type TrackECache struct {
	ec ecache.Cache
}

func NewTrackECache(ec ecache.Cache) TrackCache {
	return &TrackECache{
		ec: &ecache.NamespaceCache{
			Namespace: "track:",
			C:         ec,
		},
	}
}

func (t *TrackECache) GetTracks(ctx context.Context) ([]domain.JobTrack, error) {
	val := t.ec.Get(ctx, t.listKey())
	if val.KeyNotFound() {
		return nil, ErrTrackListNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	var tracks []domain.JobTrack
	err := json.Unmarshal([]byte(val.Val.(string)), &tracks)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化岗位方向列表失败")
	}
	return tracks, nil
}

func (t *TrackECache) SetTracks(ctx context.Context, tracks []domain.JobTrack) error {
	data, err := json.Marshal(tracks)
	if err != nil {
		return errors.Wrap(err, "序列化岗位方向列表失败")
	}
	return t.ec.Set(ctx, t.listKey(), string(data), expiration)
}

func (t *TrackECache) DelTracks(ctx context.Context) error {
	_, err := t.ec.Delete(ctx, t.listKey())
	return err
}

// 注意 Namespace 设置
func (t *TrackECache) listKey() string {
	return "list"
}

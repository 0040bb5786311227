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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type QuestionDAO interface {
	TrackList(ctx context.Context) ([]JobTrack, error)
	SaveTrack(ctx context.Context, t JobTrack) (int64, error)
	FindTrack(ctx context.Context, id int64) (JobTrack, error)
	List(ctx context.Context, tid int64, offset, limit int) ([]Question, error)
	Find(ctx context.Context, id int64) (Question, error)
	Save(ctx context.Context, q Question) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) TrackList(ctx context.Context) ([]JobTrack, error) {
	var res []JobTrack
	err := g.db.WithContext(ctx).Order("id asc").Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) SaveTrack(ctx context.Context, t JobTrack) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "utime"}),
	}).Create(&t).Error
	return t.Id, err
}

func (g *GORMQuestionDAO) FindTrack(ctx context.Context, id int64) (JobTrack, error) {
	var res JobTrack
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) List(ctx context.Context, tid int64, offset, limit int) ([]Question, error) {
	var res []Question
	err := g.db.WithContext(ctx).
		Where("tid = ?", tid).
		Order("id asc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) Find(ctx context.Context, id int64) (Question, error) {
	var res Question
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) Save(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tid", "text", "utime"}),
	}).Create(&q).Error
	return q.Id, err
}

func (g *GORMQuestionDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Question{}).Error
}

type JobTrack struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:岗位方向自增ID"`
	Name        string `gorm:"type:varchar(256);not null;uniqueIndex:unq_name;comment:岗位方向名字"`
	Description string `gorm:"type:text;comment:岗位方向的简介"`
	Ctime       int64
	Utime       int64
}

func (JobTrack) TableName() string {
	return "job_tracks"
}

type Question struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:面试题自增ID"`
	Tid   int64  `gorm:"not null;index:idx_track_id;comment:所属岗位方向ID"`
	Text  string `gorm:"type:text;not null;comment:题目内容"`
	Ctime int64
	Utime int64
}

func (Question) TableName() string {
	return "questions"
}

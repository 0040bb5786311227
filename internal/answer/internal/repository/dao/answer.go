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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrQuotaExceeded 事务里重新校验的时候发现额度已经用完
	ErrQuotaExceeded = errors.New("今日调用次数已用完")
	// ErrRecordChangedConcurrently 额度记录已被并发修改，整个事务回滚
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
)

type AnswerDAO interface {
	FindQuota(ctx context.Context, uid int64) (AnswerQuota, error)
	// Submit 在一个事务里重新校验额度、扣减额度并且写入回答。
	// 三件事要么全部发生，要么全部不发生。
	Submit(ctx context.Context, a Answer, today string, limit int) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]Answer, error)
}

type GORMAnswerDAO struct {
	db *egorm.Component
}

func NewGORMAnswerDAO(db *egorm.Component) AnswerDAO {
	return &GORMAnswerDAO{db: db}
}

func (g *GORMAnswerDAO) FindQuota(ctx context.Context, uid int64) (AnswerQuota, error) {
	var res AnswerQuota
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (g *GORMAnswerDAO) Submit(ctx context.Context, a Answer, today string, limit int) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var quota AnswerQuota
		// 没有额度记录的用户在这里惰性创建一条
		res := tx.Where(AnswerQuota{Uid: a.Uid}).
			Attrs(AnswerQuota{LastCallDay: today, Ctime: now, Utime: now}).
			FirstOrCreate(&quota)
		if res.Error != nil {
			var me *mysql.MySQLError
			if errors.As(res.Error, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					// 两个请求同时在给同一个用户创建额度记录
					return ErrRecordChangedConcurrently
				}
			}
			return res.Error
		}
		// 基于事务里读到的最新记录重新校验一遍额度，
		// 预检查的结果在这里不可信：并发的提交可能已经抢先扣减了
		newQuota, ok := domain.Quota{
			Uid:         quota.Uid,
			Used:        quota.Used,
			LastCallDay: quota.LastCallDay,
		}.TryConsume(today, limit)
		if !ok {
			return ErrQuotaExceeded
		}
		version := quota.Version
		updateRes := tx.Model(&AnswerQuota{}).
			Where("uid = ? AND version = ?", a.Uid, version).
			Updates(map[string]any{
				"used":          newQuota.Used,
				"last_call_day": newQuota.LastCallDay,
				"version":       version + 1,
				"utime":         now,
			})
		if updateRes.Error != nil {
			return updateRes.Error
		}
		if updateRes.RowsAffected == 0 {
			// 输给了并发的兄弟请求
			return ErrRecordChangedConcurrently
		}
		a.Ctime = now
		a.Utime = now
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		return nil
	})
	return a.Id, err
}

func (g *GORMAnswerDAO) List(ctx context.Context, uid int64, offset, limit int) ([]Answer, error) {
	var res []Answer
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

type Answer struct {
	Id         int64                            `gorm:"primaryKey;autoIncrement;comment:回答自增ID"`
	Uid        int64                            `gorm:"not null;index:idx_user_id;comment:用户ID"`
	Qid        int64                            `gorm:"not null;index:idx_question_id;comment:面试题ID"`
	AnswerText string                           `gorm:"type:text;not null;comment:用户的回答原文"`
	Feedback   sqlx.JsonColumn[domain.Feedback] `gorm:"type:text;not null;comment:AI点评，JSON"`
	Ctime      int64
	Utime      int64
}

func (Answer) TableName() string {
	return "answers"
}

type AnswerQuota struct {
	Id  int64 `gorm:"primaryKey;autoIncrement;comment:额度表自增ID"`
	Uid int64 `gorm:"not null;uniqueIndex:unq_uid;comment:用户ID"`
	// 当天已用次数，跨天的清零是惰性的
	Used        int    `gorm:"not null;default:0;comment:当天已用次数"`
	LastCallDay string `gorm:"type:varchar(16);not null;default:'';comment:最近一次扣减的日期，UTC"`
	Version     int64  `gorm:"not null;default:0;comment:版本号"`
	Ctime       int64
	Utime       int64
}

func (AnswerQuota) TableName() string {
	return "answer_quotas"
}

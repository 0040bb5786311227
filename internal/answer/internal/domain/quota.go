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

package domain

// Quota 单个用户的每日调用额度。
// 零值就代表从来没提交过的用户，不需要特殊处理。
type Quota struct {
	Uid int64
	// 当天已经消耗的次数
	Used int
	// 最近一次扣减发生的日期，UTC，格式 time.DateOnly
	LastCallDay string
	// 乐观锁版本号
	Version int64
}

// EffectiveCount 当天实际已消耗的次数。
// 跨天之后自动清零，清零是惰性计算出来的，不依赖任何定时任务。
// DateOnly 格式的字符串比较就是日期比较。
func (q Quota) EffectiveCount(today string) int {
	if today > q.LastCallDay {
		return 0
	}
	return q.Used
}

// TryConsume 在 today 消耗一次额度。
// 额度不足的时候返回 false，并且不会有任何修改。
// 提交的时候必须在事务里基于最新的 Quota 调用它，不能用预检查的结果。
func (q Quota) TryConsume(today string, limit int) (Quota, bool) {
	cnt := q.EffectiveCount(today)
	if cnt >= limit {
		return q, false
	}
	q.Used = cnt + 1
	q.LastCallDay = today
	return q, true
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotaEffectiveCount(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		quota Quota
		today string
		want  int
	}{
		{
			name:  "从来没提交过",
			quota: Quota{},
			today: "2024-06-02",
			want:  0,
		},
		{
			name: "同一天",
			quota: Quota{
				Used:        3,
				LastCallDay: "2024-06-02",
			},
			today: "2024-06-02",
			want:  3,
		},
		{
			name: "跨天清零",
			quota: Quota{
				Used:        20,
				LastCallDay: "2024-06-01",
			},
			today: "2024-06-02",
			want:  0,
		},
		{
			name: "跨月",
			quota: Quota{
				Used:        5,
				LastCallDay: "2024-05-31",
			},
			today: "2024-06-01",
			want:  0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.quota.EffectiveCount(tc.today))
		})
	}
}

func TestQuotaTryConsume(t *testing.T) {
	t.Parallel()
	const limit = 20
	testCases := []struct {
		name      string
		quota     Quota
		today     string
		wantQuota Quota
		wantOk    bool
	}{
		{
			name:  "第一次提交",
			quota: Quota{},
			today: "2024-06-02",
			wantQuota: Quota{
				Used:        1,
				LastCallDay: "2024-06-02",
			},
			wantOk: true,
		},
		{
			name: "没到上限",
			quota: Quota{
				Used:        19,
				LastCallDay: "2024-06-02",
			},
			today: "2024-06-02",
			wantQuota: Quota{
				Used:        20,
				LastCallDay: "2024-06-02",
			},
			wantOk: true,
		},
		{
			name: "到了上限",
			quota: Quota{
				Used:        20,
				LastCallDay: "2024-06-02",
			},
			today: "2024-06-02",
			wantQuota: Quota{
				Used:        20,
				LastCallDay: "2024-06-02",
			},
			wantOk: false,
		},
		{
			name: "昨天用完了，今天再来一次",
			quota: Quota{
				Used:        20,
				LastCallDay: "2024-06-01",
			},
			today: "2024-06-02",
			wantQuota: Quota{
				Used:        1,
				LastCallDay: "2024-06-02",
			},
			wantOk: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := tc.quota.TryConsume(tc.today, limit)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.wantQuota, res)
		})
	}
}

func TestQuotaTryConsumeNeverExceedsLimit(t *testing.T) {
	t.Parallel()
	const limit = 5
	q := Quota{}
	today := "2024-06-02"
	succeeded := 0
	for i := 0; i < 3*limit; i++ {
		res, ok := q.TryConsume(today, limit)
		if ok {
			succeeded++
			q = res
		}
	}
	assert.Equal(t, limit, succeeded)
	assert.Equal(t, limit, q.EffectiveCount(today))
}

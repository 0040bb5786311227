//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mentor/internal/question"
	"github.com/ecodeclub/mentor/internal/question/internal/domain"
	"github.com/ecodeclub/mentor/internal/question/internal/repository/cache"
	"github.com/ecodeclub/mentor/internal/question/internal/repository/dao"
	"github.com/ecodeclub/mentor/internal/question/internal/service"
	testioc "github.com/ecodeclub/mentor/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ModuleTestSuite struct {
	suite.Suite
	db    *egorm.Component
	svc   service.Service
	cache cache.TrackCache
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ec := testioc.InitCache()
	module, err := question.InitModule(s.db, ec)
	require.NoError(s.T(), err)
	s.svc = module.Svc
	s.cache = cache.NewTrackECache(ec)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `job_tracks`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `questions`").Error
	s.NoError(err)
	s.NoError(s.cache.DelTracks(context.Background()))
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `job_tracks`").Error
	s.NoError(err)
	err = s.db.Exec("DROP TABLE `questions`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) TestTrackListCached() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	_, err := s.svc.SaveTrack(ctx, domain.JobTrack{
		Name:        "后端工程师",
		Description: "服务端方向",
	})
	require.NoError(t, err)

	tracks, err := s.svc.TrackList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"后端工程师"}, slice.Map(tracks, func(idx int, src domain.JobTrack) string {
		return src.Name
	}))

	// 绕开 service 直接写库，缓存没被清理，列表还是旧的
	now := time.Now().UnixMilli()
	err = s.db.WithContext(ctx).Create(&dao.JobTrack{
		Name:  "偷偷插进来的方向",
		Ctime: now,
		Utime: now,
	}).Error
	require.NoError(t, err)
	tracks, err = s.svc.TrackList(ctx)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)

	// 走 service 保存会清理缓存
	_, err = s.svc.SaveTrack(ctx, domain.JobTrack{Name: "前端工程师"})
	require.NoError(t, err)
	tracks, err = s.svc.TrackList(ctx)
	require.NoError(t, err)
	assert.Len(t, tracks, 3)
}

func (s *ModuleTestSuite) TestSaveAndDetail() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	tid, err := s.svc.SaveTrack(ctx, domain.JobTrack{Name: "产品经理"})
	require.NoError(t, err)
	qid, err := s.svc.Save(ctx, domain.Question{
		Tid:  tid,
		Text: "介绍一个你主导的产品",
	})
	require.NoError(t, err)

	que, err := s.svc.Detail(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, "介绍一个你主导的产品", que.Text)
	assert.Equal(t, "产品经理", que.TrackName)

	// 带 Id 再保存就是更新
	_, err = s.svc.Save(ctx, domain.Question{
		Id:   qid,
		Tid:  tid,
		Text: "介绍一个你主导的产品，以及它失败的原因",
	})
	require.NoError(t, err)
	que, err = s.svc.Detail(ctx, qid)
	require.NoError(t, err)
	assert.Equal(t, "介绍一个你主导的产品，以及它失败的原因", que.Text)
}

func (s *ModuleTestSuite) TestDetailNotFound() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	_, err := s.svc.Detail(ctx, 99999)
	assert.ErrorIs(t, err, service.ErrQuestionNotFound)
}

func (s *ModuleTestSuite) TestListAndDelete() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	tid, err := s.svc.SaveTrack(ctx, domain.JobTrack{Name: "测试工程师"})
	require.NoError(t, err)
	var qids []int64
	for _, text := range []string{"题目一", "题目二", "题目三"} {
		qid, err := s.svc.Save(ctx, domain.Question{Tid: tid, Text: text})
		require.NoError(t, err)
		qids = append(qids, qid)
	}

	questions, err := s.svc.List(ctx, tid, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"题目一", "题目二"}, slice.Map(questions, func(idx int, src domain.Question) string {
		return src.Text
	}))
	questions, err = s.svc.List(ctx, tid, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"题目三"}, slice.Map(questions, func(idx int, src domain.Question) string {
		return src.Text
	}))

	err = s.svc.Delete(ctx, qids[0])
	require.NoError(t, err)
	_, err = s.svc.Detail(ctx, qids[0])
	assert.ErrorIs(t, err, service.ErrQuestionNotFound)
}

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mentor/internal/question/internal/domain"
	"github.com/ecodeclub/mentor/internal/question/internal/repository/cache"
	"github.com/ecodeclub/mentor/internal/question/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type Repository interface {
	TrackList(ctx context.Context) ([]domain.JobTrack, error)
	SaveTrack(ctx context.Context, t domain.JobTrack) (int64, error)
	List(ctx context.Context, tid int64, offset, limit int) ([]domain.Question, error)
	// Detail 会带上岗位方向的名字
	Detail(ctx context.Context, id int64) (domain.Question, error)
	Save(ctx context.Context, q domain.Question) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type questionRepo struct {
	dao    dao.QuestionDAO
	cache  cache.TrackCache
	logger *elog.Component
}

func NewQuestionRepo(questionDao dao.QuestionDAO, trackCache cache.TrackCache) Repository {
	return &questionRepo{
		dao:    questionDao,
		cache:  trackCache,
		logger: elog.DefaultLogger,
	}
}

func (q *questionRepo) TrackList(ctx context.Context) ([]domain.JobTrack, error) {
	tracks, err := q.cache.GetTracks(ctx)
	if err == nil {
		return tracks, nil
	}
	trackList, err := q.dao.TrackList(ctx)
	if err != nil {
		return nil, err
	}
	res := slice.Map(trackList, func(idx int, src dao.JobTrack) domain.JobTrack {
		return q.trackToDomain(src)
	})
	// 缓存失败不影响主流程
	if err1 := q.cache.SetTracks(ctx, res); err1 != nil {
		q.logger.Error("缓存岗位方向列表失败", elog.FieldErr(err1))
	}
	return res, nil
}

func (q *questionRepo) SaveTrack(ctx context.Context, t domain.JobTrack) (int64, error) {
	id, err := q.dao.SaveTrack(ctx, dao.JobTrack{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
	})
	if err != nil {
		return 0, err
	}
	if err1 := q.cache.DelTracks(ctx); err1 != nil {
		q.logger.Error("清理岗位方向列表缓存失败", elog.FieldErr(err1))
	}
	return id, nil
}

func (q *questionRepo) List(ctx context.Context, tid int64, offset, limit int) ([]domain.Question, error) {
	questions, err := q.dao.List(ctx, tid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(questions, func(idx int, src dao.Question) domain.Question {
		return q.toDomain(src)
	}), nil
}

func (q *questionRepo) Detail(ctx context.Context, id int64) (domain.Question, error) {
	que, err := q.dao.Find(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	track, err := q.dao.FindTrack(ctx, que.Tid)
	if err != nil {
		return domain.Question{}, err
	}
	res := q.toDomain(que)
	res.TrackName = track.Name
	return res, nil
}

func (q *questionRepo) Save(ctx context.Context, que domain.Question) (int64, error) {
	return q.dao.Save(ctx, dao.Question{
		Id:   que.Id,
		Tid:  que.Tid,
		Text: que.Text,
	})
}

func (q *questionRepo) Delete(ctx context.Context, id int64) error {
	return q.dao.Delete(ctx, id)
}

func (q *questionRepo) toDomain(que dao.Question) domain.Question {
	return domain.Question{
		Id:    que.Id,
		Tid:   que.Tid,
		Text:  que.Text,
		Utime: time.UnixMilli(que.Utime),
	}
}

func (q *questionRepo) trackToDomain(t dao.JobTrack) domain.JobTrack {
	return domain.JobTrack{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Utime:       time.UnixMilli(t.Utime),
	}
}

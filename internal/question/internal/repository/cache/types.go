package cache

import (
	"context"

	"github.com/ecodeclub/mentor/internal/question/internal/domain"
)

type TrackCache interface {
	GetTracks(ctx context.Context) ([]domain.JobTrack, error)
	SetTracks(ctx context.Context, tracks []domain.JobTrack) error
	DelTracks(ctx context.Context) error
}

package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mentor/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixBuilder struct {
	prefix string
}

func (b *prefixBuilder) Next(next Handler) Handler {
	return HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		resp, err := next.Handle(ctx, req)
		if err != nil {
			return resp, err
		}
		resp.Answer = b.prefix + resp.Answer
		return resp, nil
	})
}

func TestCompositionHandler(t *testing.T) {
	t.Parallel()
	root := HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{Answer: "root"}, nil
	})
	// common 里靠前的 Builder 在链上也更靠外
	hdl := NewCompositionHandler([]Builder{
		&prefixBuilder{prefix: "a-"},
		&prefixBuilder{prefix: "b-"},
	}, root)
	resp, err := hdl.Handle(context.Background(), domain.LLMRequest{})
	require.NoError(t, err)
	assert.Equal(t, "a-b-root", resp.Answer)
}

func TestCompositionHandlerError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("模拟平台失败")
	root := HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{}, wantErr
	})
	hdl := NewCompositionHandler([]Builder{&prefixBuilder{prefix: "a-"}}, root)
	_, err := hdl.Handle(context.Background(), domain.LLMRequest{})
	assert.ErrorIs(t, err, wantErr)
}

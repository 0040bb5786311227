package gemini

import (
	"context"
	"math"

	"github.com/ecodeclub/mentor/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Google 提供 OpenAI 兼容的接入点，直接用 openai 的 SDK 调
const baseUrl = "https://generativelanguage.googleapis.com/v1beta/openai/"

type Handler struct {
	client *openai.Client
	model  string
	// 报价，分/1000 token
	price float64
}

func NewHandler(apikey string, model string, price float64) *Handler {
	client := openai.NewClient(
		option.WithBaseURL(baseUrl),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
		model:  model,
		price:  price,
	}
}

func (h *Handler) Name() string {
	return "gemini"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	// 这边它不会调用 next，因为它是最终的出口
	completion, err := h.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		}),
		Model: openai.F(openai.ChatModel(h.model)),
	})
	if err != nil {
		return domain.LLMResponse{}, err
	}
	tokens := completion.Usage.TotalTokens
	// 现在的报价都是 N/1k token，而后向上取整
	amt := math.Ceil(float64(tokens) * h.price / float64(1000))
	resp := domain.LLMResponse{
		Tokens: tokens,
		Amount: int64(amt),
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ecodeclub/mentor/internal/answer/internal/domain"
)

// 大模型并不保证只返回 JSON，经常在前后带一段客套话，
// 或者裹上 ```json 这样的代码块标记。
// 贪婪匹配从第一个 { 到最后一个 }，中间的内容整体当作 JSON 解析。
var jsonExpr = regexp.MustCompile(`(?s)\{.*\}`)

type feedbackPayload struct {
	Rating   *json.Number `json:"rating"`
	Feedback []string     `json:"feedback"`
}

// parseFeedback 把大模型返回的原始文本解析成 Feedback。
// 要么解析出一个完全合法的 Feedback，要么返回一个带类型的错误，
// 不存在部分成功。上游对解析失败和生成失败一视同仁：不扣额度。
func parseFeedback(raw string) (domain.Feedback, error) {
	val := jsonExpr.FindString(raw)
	if val == "" {
		return domain.Feedback{}, fmt.Errorf("%w: 响应里没有 JSON", ErrInvalidFeedbackBody)
	}
	var payload feedbackPayload
	decoder := json.NewDecoder(strings.NewReader(val))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return domain.Feedback{}, fmt.Errorf("%w: %v", ErrInvalidFeedbackBody, err)
	}
	if payload.Rating == nil {
		return domain.Feedback{}, fmt.Errorf("%w: 缺少 rating", ErrInvalidRating)
	}
	// 评分必须是 [1,5] 的整数。
	// 超出范围的不做截断，直接报错：悄悄截断出来的分数比报错更坑
	rating, err := payload.Rating.Int64()
	if err != nil || rating < 1 || rating > 5 {
		return domain.Feedback{}, fmt.Errorf("%w: %s", ErrInvalidRating, payload.Rating.String())
	}
	if len(payload.Feedback) == 0 {
		return domain.Feedback{}, fmt.Errorf("%w: feedback 是空的", ErrInvalidFeedbackBody)
	}
	for _, point := range payload.Feedback {
		if strings.TrimSpace(point) == "" {
			return domain.Feedback{}, fmt.Errorf("%w: 存在空白的点评", ErrInvalidFeedbackBody)
		}
	}
	return domain.Feedback{
		Rating: int(rating),
		Points: payload.Feedback,
	}, nil
}

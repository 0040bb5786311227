package domain

const BizAnswerFeedback = "answer_feedback"

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id
	Tid string
	// 用户的输入，按业务约定的顺序排列
	Input []string
	// 由业务方拼接好的完整 Prompt
	Prompt string
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额
	Amount int64
	// llm 的回答
	Answer string
}

type LLMRecord struct {
	Id     int64
	Tid    string
	Uid    int64
	Biz    string
	Tokens int64
	Amount int64
	Input  []string
	Status RecordStatus
	Answer string
	Ctime  int64
	Utime  int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)

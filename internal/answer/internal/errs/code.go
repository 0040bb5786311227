package errs

var (
	SystemError      = ErrorCode{Code: 515001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 515002, Msg: "输入不合法"}
	QuestionNotFound = ErrorCode{Code: 515003, Msg: "问题不存在"}
	QuotaExceeded    = ErrorCode{Code: 515004, Msg: "今日AI点评次数已用完"}
	// GenerationFailed 也涵盖了 AI 响应解析失败的情况，
	// 对用户来说都是"这次点评没拿到，额度没扣，可以重试"
	GenerationFailed = ErrorCode{Code: 515005, Msg: "AI点评生成失败，请重试"}
	CommitConflict   = ErrorCode{Code: 515006, Msg: "提交冲突，请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

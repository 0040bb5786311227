package errs

var (
	SystemError      = ErrorCode{Code: 514001, Msg: "系统错误"}
	QuestionNotFound = ErrorCode{Code: 514002, Msg: "问题不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

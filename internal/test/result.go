package test

// Result 是 ginx.Result 的泛型版，方便测试里断言 data 部分
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

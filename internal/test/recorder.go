package test

import (
	"encoding/json"
	"net/http/httptest"
)

type ResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *ResponseRecorder[T] {
	return &ResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r *ResponseRecorder[T]) Scan() (Result[T], error) {
	var res Result[T]
	err := json.NewDecoder(r.Body).Decode(&res)
	return res, err
}

// MustScan 测试里不想处理解码错误就用这个
func (r *ResponseRecorder[T]) MustScan() Result[T] {
	res, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return res
}

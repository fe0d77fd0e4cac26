package util

import (
	"encoding/json"

	"school-api/biz/application/dto/basic"
	"school-api/biz/infrastructure/util/log"
)

// JSONF 将传入的结构体转化为json字符串
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("JSONF fail, v=%v, err=%v", v, err)
	}
	return string(data)
}

func Succeed(msg string) (*basic.Response, error) {
	return &basic.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}

package basic

type Response struct {
	Code int64  `form:"code" json:"code" query:"code"`
	Msg  string `form:"msg" json:"msg" query:"msg"`
}

type PaginationOptions struct {
	Page  *int64 `form:"page" json:"page,omitempty" query:"page"`
	Limit *int64 `form:"limit" json:"limit,omitempty" query:"limit"`
}

// UserMeta 会话中的用户信息, 由网关中间件从token解析得到
type UserMeta struct {
	UserId string `mapstructure:"userId" json:"userId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

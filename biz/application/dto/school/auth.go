package school

type LoginReq struct {
	// Identifier matches either the account name or the email.
	Identifier string `form:"identifier" json:"identifier,required"`
	Password   string `form:"password" json:"password,required"`
}

type LoginResp struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
}

type RegisterReq struct {
	Name         string  `form:"name" json:"name,required"`
	Email        string  `form:"email" json:"email,required"`
	Password     string  `form:"password" json:"password,required"`
	Role         string  `form:"role" json:"role,required"`
	Registration *string `form:"registration" json:"registration,omitempty"`
}

type RegisterResp struct {
	User *UserInfo `json:"user"`
}

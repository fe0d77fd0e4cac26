package school

import "school-api/biz/application/dto/basic"

type UserInfo struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Registration string `json:"registration,omitempty"`
	Role         string `json:"role"`
	CreateTime   int64  `json:"createTime"`
}

type ListUsersReq struct {
	basic.PaginationOptions
}

type ListUsersResp struct {
	Users []*UserInfo `json:"users"`
	Total int64       `json:"total"`
}

type ListUsersByRoleReq struct {
	basic.PaginationOptions
	Role string `path:"role"`
}

type GetUserReq struct {
	Id string `path:"id"`
}

type GetUserResp struct {
	User *UserInfo `json:"user"`
}

type UpdateUserReq struct {
	Id           string  `path:"id"`
	Name         *string `form:"name" json:"name,omitempty"`
	Email        *string `form:"email" json:"email,omitempty"`
	Registration *string `form:"registration" json:"registration,omitempty"`
	// Role is bound so that an attempted change can be rejected
	// explicitly instead of being silently applied.
	Role *string `form:"role" json:"role,omitempty"`
}

type UpdateUserResp struct {
	User *UserInfo `json:"user"`
}

type DeleteUserReq struct {
	Id string `path:"id"`
}

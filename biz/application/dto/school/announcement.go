package school

import "school-api/biz/application/dto/basic"

type AnnouncementInfo struct {
	Id         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	AuthorId   string `json:"authorId"`
	CreateTime int64  `json:"createTime"`
}

type CreateAnnouncementReq struct {
	Title   string `form:"title" json:"title,required"`
	Message string `form:"message" json:"message,required"`
}

type CreateAnnouncementResp struct {
	Announcement *AnnouncementInfo `json:"announcement"`
}

type ListAnnouncementsReq struct {
	basic.PaginationOptions
}

type ListAnnouncementsResp struct {
	Announcements []*AnnouncementInfo `json:"announcements"`
	Total         int64               `json:"total"`
}

type GetAnnouncementReq struct {
	Id string `path:"id"`
}

type GetAnnouncementResp struct {
	Announcement *AnnouncementInfo `json:"announcement"`
}

type UpdateAnnouncementReq struct {
	Id      string  `path:"id"`
	Title   *string `form:"title" json:"title,omitempty"`
	Message *string `form:"message" json:"message,omitempty"`
}

type UpdateAnnouncementResp struct {
	Announcement *AnnouncementInfo `json:"announcement"`
}

type DeleteAnnouncementReq struct {
	Id string `path:"id"`
}

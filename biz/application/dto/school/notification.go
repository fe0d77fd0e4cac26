package school

import "school-api/biz/application/dto/basic"

type NotificationInfo struct {
	Id         string `json:"id"`
	Message    string `json:"message"`
	AuthorId   string `json:"authorId"`
	CreateTime int64  `json:"createTime"`
}

type CreateNotificationReq struct {
	Message string `form:"message" json:"message,required"`
}

type CreateNotificationResp struct {
	Notification *NotificationInfo `json:"notification"`
}

type ListNotificationsReq struct {
	basic.PaginationOptions
}

type ListNotificationsResp struct {
	Notifications []*NotificationInfo `json:"notifications"`
	Total         int64               `json:"total"`
}

type GetNotificationReq struct {
	Id string `path:"id"`
}

type GetNotificationResp struct {
	Notification *NotificationInfo `json:"notification"`
}

type UpdateNotificationReq struct {
	Id      string  `path:"id"`
	Message *string `form:"message" json:"message,omitempty"`
}

type UpdateNotificationResp struct {
	Notification *NotificationInfo `json:"notification"`
}

type DeleteNotificationReq struct {
	Id string `path:"id"`
}

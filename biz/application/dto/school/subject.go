package school

import "school-api/biz/application/dto/basic"

type SubjectInfo struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TeacherId   string `json:"teacherId,omitempty"`
	ClassId     string `json:"classId,omitempty"`
	CreateTime  int64  `json:"createTime"`
}

type CreateSubjectReq struct {
	Name        string  `form:"name" json:"name,required"`
	Description string  `form:"description" json:"description,required"`
	TeacherId   *string `form:"teacherId" json:"teacherId,omitempty"`
	ClassId     *string `form:"classId" json:"classId,omitempty"`
}

type CreateSubjectResp struct {
	Subject *SubjectInfo `json:"subject"`
}

type ListSubjectsReq struct {
	basic.PaginationOptions
}

type ListSubjectsResp struct {
	Subjects []*SubjectInfo `json:"subjects"`
	Total    int64          `json:"total"`
}

type GetSubjectReq struct {
	Id string `path:"id"`
}

type GetSubjectResp struct {
	Subject *SubjectInfo `json:"subject"`
}

type UpdateSubjectReq struct {
	Id          string  `path:"id"`
	Name        *string `form:"name" json:"name,omitempty"`
	Description *string `form:"description" json:"description,omitempty"`
	TeacherId   *string `form:"teacherId" json:"teacherId,omitempty"`
	ClassId     *string `form:"classId" json:"classId,omitempty"`
}

type UpdateSubjectResp struct {
	Subject *SubjectInfo `json:"subject"`
}

type DeleteSubjectReq struct {
	Id string `path:"id"`
}

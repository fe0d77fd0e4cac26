package school

import "school-api/biz/application/dto/basic"

type AbsenceInfo struct {
	Id         string `json:"id"`
	StudentId  string `json:"studentId"`
	SubjectId  string `json:"subjectId"`
	Date       int64  `json:"date"`
	CreateTime int64  `json:"createTime"`
}

type CreateAbsenceReq struct {
	StudentId string `form:"studentId" json:"studentId,required"`
	SubjectId string `form:"subjectId" json:"subjectId,required"`
	// Date is a unix timestamp; zero means "now".
	Date int64 `form:"date" json:"date,omitempty"`
}

type CreateAbsenceResp struct {
	Absence *AbsenceInfo `json:"absence"`
}

type ListAbsencesReq struct {
	basic.PaginationOptions
	StudentId *string `form:"studentId" query:"studentId" json:"studentId,omitempty"`
}

type ListAbsencesResp struct {
	Absences []*AbsenceInfo `json:"absences"`
	Total    int64          `json:"total"`
}

type GetAbsenceReq struct {
	Id string `path:"id"`
}

type GetAbsenceResp struct {
	Absence *AbsenceInfo `json:"absence"`
}

type UpdateAbsenceReq struct {
	Id   string `path:"id"`
	Date *int64 `form:"date" json:"date,omitempty"`
}

type UpdateAbsenceResp struct {
	Absence *AbsenceInfo `json:"absence"`
}

type DeleteAbsenceReq struct {
	Id string `path:"id"`
}

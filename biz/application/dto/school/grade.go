package school

import "school-api/biz/application/dto/basic"

type UnitInfo struct {
	Number int    `form:"number" json:"number,required"`
	AV1    string `form:"av1" json:"av1,required"`
	AV2    string `form:"av2" json:"av2,required"`
	NOA    string `form:"noa" json:"noa,omitempty"`
}

type GradeInfo struct {
	Id         string   `json:"id"`
	StudentId  string   `json:"studentId"`
	SubjectId  string   `json:"subjectId"`
	Unit       UnitInfo `json:"unit"`
	CreateTime int64    `json:"createTime"`
}

type CreateGradeReq struct {
	StudentId string   `form:"studentId" json:"studentId,required"`
	SubjectId string   `form:"subjectId" json:"subjectId,required"`
	Unit      UnitInfo `json:"unit,required"`
}

type CreateGradeResp struct {
	Grade *GradeInfo `json:"grade"`
}

type ListGradesReq struct {
	basic.PaginationOptions
	StudentId *string `form:"studentId" query:"studentId" json:"studentId,omitempty"`
}

type ListGradesResp struct {
	Grades []*GradeInfo `json:"grades"`
	Total  int64        `json:"total"`
}

type GetGradeReq struct {
	Id string `path:"id"`
}

type GetGradeResp struct {
	Grade *GradeInfo `json:"grade"`
}

type UpdateGradeReq struct {
	Id   string    `path:"id"`
	Unit *UnitInfo `json:"unit,omitempty"`
}

type UpdateGradeResp struct {
	Grade *GradeInfo `json:"grade"`
}

type DeleteGradeReq struct {
	Id string `path:"id"`
}

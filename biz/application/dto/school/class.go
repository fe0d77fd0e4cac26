package school

import "school-api/biz/application/dto/basic"

// MemberInfo is the roster view of a user: enough to render a listing
// without another lookup.
type MemberInfo struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Registration string `json:"registration,omitempty"`
}

// ClassInfo is the populated detail view: subject resolved by name and
// both rosters expanded into member summaries.
type ClassInfo struct {
	Id          string        `json:"id"`
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	SubjectId   string        `json:"subjectId,omitempty"`
	SubjectName string        `json:"subjectName,omitempty"`
	Shift       string        `json:"shift"`
	Room        string        `json:"room"`
	Teachers    []*MemberInfo `json:"teachers"`
	Students    []*MemberInfo `json:"students"`
	CreateTime  int64         `json:"createTime"`
}

type ClassSummary struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	SubjectId    string `json:"subjectId,omitempty"`
	Shift        string `json:"shift"`
	Room         string `json:"room"`
	TeacherCount int    `json:"teacherCount"`
	StudentCount int    `json:"studentCount"`
	CreateTime   int64  `json:"createTime"`
}

type CreateClassReq struct {
	Name      string  `form:"name" json:"name,required"`
	Code      *string `form:"code" json:"code,omitempty"`
	SubjectId *string `form:"subjectId" json:"subjectId,omitempty"`
	Shift     string  `form:"shift" json:"shift,required"`
	Room      string  `form:"room" json:"room,required"`
}

type CreateClassResp struct {
	Class *ClassInfo `json:"class"`
}

type ListClassesReq struct {
	basic.PaginationOptions
}

type ListClassesResp struct {
	Classes []*ClassSummary `json:"classes"`
	Total   int64           `json:"total"`
}

type GetClassReq struct {
	Id string `path:"id"`
}

type GetClassResp struct {
	Class *ClassInfo `json:"class"`
}

type UpdateClassReq struct {
	Id        string  `path:"id"`
	Name      *string `form:"name" json:"name,omitempty"`
	Code      *string `form:"code" json:"code,omitempty"`
	SubjectId *string `form:"subjectId" json:"subjectId,omitempty"`
	Shift     *string `form:"shift" json:"shift,omitempty"`
	Room      *string `form:"room" json:"room,omitempty"`
}

type UpdateClassResp struct {
	Class *ClassInfo `json:"class"`
}

type DeleteClassReq struct {
	Id string `path:"id"`
}

type GetClassStudentsReq struct {
	Id string `path:"id"`
}

type GetClassStudentsResp struct {
	Students []*MemberInfo `json:"students"`
	Total    int64         `json:"total"`
}

type AddStudentReq struct {
	Id    string `path:"id"`
	Email string `form:"email" json:"email,required"`
}

type RemoveStudentReq struct {
	Id        string `path:"id"`
	StudentId string `path:"studentId"`
}

type AddTeacherReq struct {
	Id    string `path:"id"`
	Email string `form:"email" json:"email,required"`
}

type RemoveTeacherReq struct {
	Id        string `path:"id"`
	TeacherId string `path:"teacherId"`
}

type RosterResp struct {
	Class *ClassInfo `json:"class"`
}

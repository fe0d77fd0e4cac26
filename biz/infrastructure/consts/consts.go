package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID         = "_id"
	Email      = "email"
	Name       = "name"
	Code       = "code"
	Role       = "role"
	Students   = "students"
	Teachers   = "teachers"
	CreateTime = "create_time"
	UpdateTime = "update_time"
	NotEqual   = "$ne"
	AddToSet   = "$addToSet"
	Pull       = "$pull"
	Set        = "$set"
)

// 用户角色
const (
	RoleStudent     = "student"
	RoleTeacher     = "teacher"
	RoleCoordinator = "coordinator"
)

// class shifts
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
)

// concept grades: achieved / partially achieved / not achieved
const (
	ConceptAchieved          = "A"
	ConceptPartiallyAchieved = "PA"
	ConceptNotAchieved       = "NA"
)

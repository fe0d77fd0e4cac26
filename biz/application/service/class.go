package service

import (
	"context"
	"errors"
	"strings"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/cache"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/class"
	"school-api/biz/infrastructure/repository/subject"
	"school-api/biz/infrastructure/repository/user"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/log"
	"school-api/biz/infrastructure/util/page"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/samber/lo"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *school.CreateClassReq) (*school.CreateClassResp, error)
	ListClasses(ctx context.Context, req *school.ListClassesReq) (*school.ListClassesResp, error)
	GetClass(ctx context.Context, req *school.GetClassReq) (*school.GetClassResp, error)
	UpdateClass(ctx context.Context, req *school.UpdateClassReq) (*school.UpdateClassResp, error)
	DeleteClass(ctx context.Context, req *school.DeleteClassReq) (*basic.Response, error)
	GetClassStudents(ctx context.Context, req *school.GetClassStudentsReq) (*school.GetClassStudentsResp, error)
	AddStudent(ctx context.Context, req *school.AddStudentReq) (*school.RosterResp, error)
	RemoveStudent(ctx context.Context, req *school.RemoveStudentReq) (*school.RosterResp, error)
	AddTeacher(ctx context.Context, req *school.AddTeacherReq) (*school.RosterResp, error)
	RemoveTeacher(ctx context.Context, req *school.RemoveTeacherReq) (*school.RosterResp, error)
}

type ClassService struct {
	ClassMapper   class.Mapper
	UserMapper    user.Mapper
	SubjectMapper subject.Mapper
	ViewCache     cache.IClassViewCacheMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 创建班级, 仅协调员可操作
func (s *ClassService) CreateClass(ctx context.Context, req *school.CreateClassReq) (*school.CreateClassResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	requester, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotAuthentication
	}
	if requester.Role != consts.RoleCoordinator {
		return nil, consts.ErrForbidden
	}

	if !validShift(req.Shift) {
		return nil, consts.ErrInvalidParams
	}

	code := generateClassCode()
	if req.Code != nil && *req.Code != "" {
		code = *req.Code
	}
	_, err = s.ClassMapper.FindOneByCode(ctx, code)
	switch {
	case err == nil:
		return nil, consts.ErrCodeRegistered
	case errors.Is(err, consts.ErrNotFound):
	default:
		return nil, err
	}

	c := &class.Class{
		Name:  req.Name,
		Code:  code,
		Shift: req.Shift,
		Room:  req.Room,
	}
	if req.SubjectId != nil {
		c.SubjectID = *req.SubjectId
	}
	if err := s.ClassMapper.Insert(ctx, c); err != nil {
		return nil, err
	}

	info, err := s.populateClass(ctx, c)
	if err != nil {
		return nil, err
	}
	return &school.CreateClassResp{Class: info}, nil
}

func (s *ClassService) ListClasses(ctx context.Context, req *school.ListClassesReq) (*school.ListClassesResp, error) {
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)
	classes, total, err := s.ClassMapper.FindMany(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	summaries := lo.Map(classes, func(c *class.Class, _ int) *school.ClassSummary {
		return &school.ClassSummary{
			Id:           c.ID.Hex(),
			Name:         c.Name,
			Code:         c.Code,
			SubjectId:    c.SubjectID,
			Shift:        c.Shift,
			Room:         c.Room,
			TeacherCount: len(c.TeacherIDs),
			StudentCount: len(c.StudentIDs),
			CreateTime:   c.CreateTime.Unix(),
		}
	})
	return &school.ListClassesResp{Classes: summaries, Total: total}, nil
}

func (s *ClassService) GetClass(ctx context.Context, req *school.GetClassReq) (*school.GetClassResp, error) {
	if info, err := s.ViewCache.Get(ctx, req.Id); err == nil {
		return &school.GetClassResp{Class: info}, nil
	}

	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	info, err := s.populateClass(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := s.ViewCache.Set(ctx, req.Id, info); err != nil {
		log.CtxError(ctx, "cache class view fail, id=%s, err=%v", req.Id, err)
	}
	return &school.GetClassResp{Class: info}, nil
}

func (s *ClassService) UpdateClass(ctx context.Context, req *school.UpdateClassReq) (*school.UpdateClassResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != c.Code {
		_, err := s.ClassMapper.FindOneByCode(ctx, *req.Code)
		switch {
		case err == nil:
			return nil, consts.ErrCodeRegistered
		case errors.Is(err, consts.ErrNotFound):
		default:
			return nil, err
		}
		c.Code = *req.Code
	}
	if req.Shift != nil {
		if !validShift(*req.Shift) {
			return nil, consts.ErrInvalidParams
		}
		c.Shift = *req.Shift
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.SubjectId != nil {
		c.SubjectID = *req.SubjectId
	}
	if req.Room != nil {
		c.Room = *req.Room
	}

	if err := s.ClassMapper.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateView(ctx, req.Id)

	info, err := s.populateClass(ctx, c)
	if err != nil {
		return nil, err
	}
	return &school.UpdateClassResp{Class: info}, nil
}

func (s *ClassService) DeleteClass(ctx context.Context, req *school.DeleteClassReq) (*basic.Response, error) {
	if err := s.ClassMapper.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	s.invalidateView(ctx, req.Id)
	return util.Succeed("class deleted")
}

func (s *ClassService) GetClassStudents(ctx context.Context, req *school.GetClassStudentsReq) (*school.GetClassStudentsResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	students := s.resolveMembers(ctx, c.StudentIDs)
	return &school.GetClassStudentsResp{
		Students: students,
		Total:    int64(len(students)),
	}, nil
}

// AddStudent moves a user into the student roster. Checks run in a
// fixed order so failures are deterministic: class existence, user
// existence, role, duplicate membership. The membership write itself is
// a single guarded set-insert, so concurrent adds cannot lose updates.
func (s *ClassService) AddStudent(ctx context.Context, req *school.AddStudentReq) (*school.RosterResp, error) {
	return s.addMember(ctx, req.Id, req.Email, consts.RoleStudent)
}

func (s *ClassService) RemoveStudent(ctx context.Context, req *school.RemoveStudentReq) (*school.RosterResp, error) {
	return s.removeMember(ctx, req.Id, req.StudentId, consts.RoleStudent)
}

// AddTeacher is AddStudent with the teacher role and roster.
func (s *ClassService) AddTeacher(ctx context.Context, req *school.AddTeacherReq) (*school.RosterResp, error) {
	return s.addMember(ctx, req.Id, req.Email, consts.RoleTeacher)
}

func (s *ClassService) RemoveTeacher(ctx context.Context, req *school.RemoveTeacherReq) (*school.RosterResp, error) {
	return s.removeMember(ctx, req.Id, req.TeacherId, consts.RoleTeacher)
}

func (s *ClassService) addMember(ctx context.Context, classID, email, role string) (*school.RosterResp, error) {
	if _, err := s.ClassMapper.FindOne(ctx, classID); err != nil {
		return nil, err
	}
	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, consts.ErrRoleMismatch
	}

	if role == consts.RoleTeacher {
		err = s.ClassMapper.AddTeacher(ctx, classID, u.ID.Hex())
	} else {
		err = s.ClassMapper.AddStudent(ctx, classID, u.ID.Hex())
	}
	if err != nil {
		return nil, err
	}
	s.invalidateView(ctx, classID)

	return s.rosterResp(ctx, classID)
}

func (s *ClassService) removeMember(ctx context.Context, classID, userID, role string) (*school.RosterResp, error) {
	if _, err := s.ClassMapper.FindOne(ctx, classID); err != nil {
		return nil, err
	}

	var err error
	if role == consts.RoleTeacher {
		err = s.ClassMapper.RemoveTeacher(ctx, classID, userID)
	} else {
		err = s.ClassMapper.RemoveStudent(ctx, classID, userID)
	}
	if err != nil {
		return nil, err
	}
	s.invalidateView(ctx, classID)

	return s.rosterResp(ctx, classID)
}

func (s *ClassService) rosterResp(ctx context.Context, classID string) (*school.RosterResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, classID)
	if err != nil {
		return nil, err
	}
	info, err := s.populateClass(ctx, c)
	if err != nil {
		return nil, err
	}
	return &school.RosterResp{Class: info}, nil
}

// populateClass resolves the referenced subject and roster members into
// a detail view. Dangling references are skipped, not fatal.
func (s *ClassService) populateClass(ctx context.Context, c *class.Class) (*school.ClassInfo, error) {
	info := &school.ClassInfo{
		Id:         c.ID.Hex(),
		Name:       c.Name,
		Code:       c.Code,
		SubjectId:  c.SubjectID,
		Shift:      c.Shift,
		Room:       c.Room,
		Teachers:   s.resolveMembers(ctx, c.TeacherIDs),
		Students:   s.resolveMembers(ctx, c.StudentIDs),
		CreateTime: c.CreateTime.Unix(),
	}
	if c.SubjectID != "" {
		sub, err := s.SubjectMapper.FindOne(ctx, c.SubjectID)
		if err == nil {
			info.SubjectName = sub.Name
		} else if !errors.Is(err, consts.ErrNotFound) {
			return nil, err
		}
	}
	return info, nil
}

func (s *ClassService) resolveMembers(ctx context.Context, ids []string) []*school.MemberInfo {
	return lo.FilterMap(ids, func(id string, _ int) (*school.MemberInfo, bool) {
		u, err := s.UserMapper.FindOne(ctx, id)
		if err != nil {
			log.CtxError(ctx, "resolve roster member fail, id=%s, err=%v", id, err)
			return nil, false
		}
		return &school.MemberInfo{
			Id:           u.ID.Hex(),
			Name:         u.Name,
			Email:        u.Email,
			Registration: u.Registration,
		}, true
	})
}

func (s *ClassService) invalidateView(ctx context.Context, classID string) {
	if err := s.ViewCache.Delete(ctx, classID); err != nil {
		log.CtxError(ctx, "invalidate class view fail, id=%s, err=%v", classID, err)
	}
}

func validShift(shift string) bool {
	return shift == consts.ShiftMorning || shift == consts.ShiftAfternoon
}

// generateClassCode derives a short unique code for operators who did
// not pick one themselves.
func generateClassCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

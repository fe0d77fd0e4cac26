package service

import (
	"context"

	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/repository/subject"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type ISubjectService interface {
	CreateSubject(ctx context.Context, req *school.CreateSubjectReq) (*school.CreateSubjectResp, error)
	ListSubjects(ctx context.Context, req *school.ListSubjectsReq) (*school.ListSubjectsResp, error)
	GetSubject(ctx context.Context, req *school.GetSubjectReq) (*school.GetSubjectResp, error)
	UpdateSubject(ctx context.Context, req *school.UpdateSubjectReq) (*school.UpdateSubjectResp, error)
	DeleteSubject(ctx context.Context, req *school.DeleteSubjectReq) (*basic.Response, error)
}

type SubjectService struct {
	SubjectMapper subject.Mapper
}

var SubjectServiceSet = wire.NewSet(
	wire.Struct(new(SubjectService), "*"),
	wire.Bind(new(ISubjectService), new(*SubjectService)),
)

func (s *SubjectService) CreateSubject(ctx context.Context, req *school.CreateSubjectReq) (*school.CreateSubjectResp, error) {
	sub := &subject.Subject{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.TeacherId != nil {
		sub.TeacherID = *req.TeacherId
	}
	if req.ClassId != nil {
		sub.ClassID = *req.ClassId
	}
	if err := s.SubjectMapper.Insert(ctx, sub); err != nil {
		return nil, err
	}
	return &school.CreateSubjectResp{Subject: newSubjectInfo(sub)}, nil
}

func (s *SubjectService) ListSubjects(ctx context.Context, req *school.ListSubjectsReq) (*school.ListSubjectsResp, error) {
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)
	subjects, total, err := s.SubjectMapper.FindMany(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &school.ListSubjectsResp{
		Subjects: lo.Map(subjects, func(sub *subject.Subject, _ int) *school.SubjectInfo { return newSubjectInfo(sub) }),
		Total:    total,
	}, nil
}

func (s *SubjectService) GetSubject(ctx context.Context, req *school.GetSubjectReq) (*school.GetSubjectResp, error) {
	sub, err := s.SubjectMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &school.GetSubjectResp{Subject: newSubjectInfo(sub)}, nil
}

func (s *SubjectService) UpdateSubject(ctx context.Context, req *school.UpdateSubjectReq) (*school.UpdateSubjectResp, error) {
	sub, err := s.SubjectMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.TeacherId != nil {
		sub.TeacherID = *req.TeacherId
	}
	if req.ClassId != nil {
		sub.ClassID = *req.ClassId
	}
	if err := s.SubjectMapper.Update(ctx, sub); err != nil {
		return nil, err
	}
	return &school.UpdateSubjectResp{Subject: newSubjectInfo(sub)}, nil
}

func (s *SubjectService) DeleteSubject(ctx context.Context, req *school.DeleteSubjectReq) (*basic.Response, error) {
	if err := s.SubjectMapper.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return util.Succeed("subject deleted")
}

func newSubjectInfo(sub *subject.Subject) *school.SubjectInfo {
	info := new(school.SubjectInfo)
	_ = copier.Copy(info, sub)
	info.Id = sub.ID.Hex()
	info.TeacherId = sub.TeacherID
	info.ClassId = sub.ClassID
	info.CreateTime = sub.CreateTime.Unix()
	return info
}

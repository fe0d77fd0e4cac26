package service

import (
	"context"
	"time"

	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/repository/absence"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAbsenceService interface {
	CreateAbsence(ctx context.Context, req *school.CreateAbsenceReq) (*school.CreateAbsenceResp, error)
	ListAbsences(ctx context.Context, req *school.ListAbsencesReq) (*school.ListAbsencesResp, error)
	GetAbsence(ctx context.Context, req *school.GetAbsenceReq) (*school.GetAbsenceResp, error)
	UpdateAbsence(ctx context.Context, req *school.UpdateAbsenceReq) (*school.UpdateAbsenceResp, error)
	DeleteAbsence(ctx context.Context, req *school.DeleteAbsenceReq) (*basic.Response, error)
}

type AbsenceService struct {
	AbsenceMapper absence.Mapper
}

var AbsenceServiceSet = wire.NewSet(
	wire.Struct(new(AbsenceService), "*"),
	wire.Bind(new(IAbsenceService), new(*AbsenceService)),
)

func (s *AbsenceService) CreateAbsence(ctx context.Context, req *school.CreateAbsenceReq) (*school.CreateAbsenceResp, error) {
	a := &absence.Absence{
		StudentID: req.StudentId,
		SubjectID: req.SubjectId,
	}
	if req.Date > 0 {
		a.Date = time.Unix(req.Date, 0)
	}
	if err := s.AbsenceMapper.Insert(ctx, a); err != nil {
		return nil, err
	}
	return &school.CreateAbsenceResp{Absence: newAbsenceInfo(a)}, nil
}

func (s *AbsenceService) ListAbsences(ctx context.Context, req *school.ListAbsencesReq) (*school.ListAbsencesResp, error) {
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)

	var absences []*absence.Absence
	var total int64
	var err error
	if req.StudentId != nil && *req.StudentId != "" {
		absences, total, err = s.AbsenceMapper.FindManyByStudent(ctx, *req.StudentId, skip, limit)
	} else {
		absences, total, err = s.AbsenceMapper.FindMany(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	return &school.ListAbsencesResp{
		Absences: lo.Map(absences, func(a *absence.Absence, _ int) *school.AbsenceInfo { return newAbsenceInfo(a) }),
		Total:    total,
	}, nil
}

func (s *AbsenceService) GetAbsence(ctx context.Context, req *school.GetAbsenceReq) (*school.GetAbsenceResp, error) {
	a, err := s.AbsenceMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &school.GetAbsenceResp{Absence: newAbsenceInfo(a)}, nil
}

func (s *AbsenceService) UpdateAbsence(ctx context.Context, req *school.UpdateAbsenceReq) (*school.UpdateAbsenceResp, error) {
	a, err := s.AbsenceMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil && *req.Date > 0 {
		a.Date = time.Unix(*req.Date, 0)
	}
	if err := s.AbsenceMapper.Update(ctx, a); err != nil {
		return nil, err
	}
	return &school.UpdateAbsenceResp{Absence: newAbsenceInfo(a)}, nil
}

func (s *AbsenceService) DeleteAbsence(ctx context.Context, req *school.DeleteAbsenceReq) (*basic.Response, error) {
	if err := s.AbsenceMapper.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return util.Succeed("absence deleted")
}

func newAbsenceInfo(a *absence.Absence) *school.AbsenceInfo {
	return &school.AbsenceInfo{
		Id:         a.ID.Hex(),
		StudentId:  a.StudentID,
		SubjectId:  a.SubjectID,
		Date:       a.Date.Unix(),
		CreateTime: a.CreateTime.Unix(),
	}
}

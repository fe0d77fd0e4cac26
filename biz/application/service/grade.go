package service

import (
	"context"

	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/grade"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IGradeService interface {
	CreateGrade(ctx context.Context, req *school.CreateGradeReq) (*school.CreateGradeResp, error)
	ListGrades(ctx context.Context, req *school.ListGradesReq) (*school.ListGradesResp, error)
	GetGrade(ctx context.Context, req *school.GetGradeReq) (*school.GetGradeResp, error)
	UpdateGrade(ctx context.Context, req *school.UpdateGradeReq) (*school.UpdateGradeResp, error)
	DeleteGrade(ctx context.Context, req *school.DeleteGradeReq) (*basic.Response, error)
}

type GradeService struct {
	GradeMapper grade.Mapper
}

var GradeServiceSet = wire.NewSet(
	wire.Struct(new(GradeService), "*"),
	wire.Bind(new(IGradeService), new(*GradeService)),
)

func (s *GradeService) CreateGrade(ctx context.Context, req *school.CreateGradeReq) (*school.CreateGradeResp, error) {
	if !validUnit(&req.Unit) {
		return nil, consts.ErrInvalidParams
	}
	g := &grade.Grade{
		StudentID: req.StudentId,
		SubjectID: req.SubjectId,
		Unit: grade.Unit{
			Number: req.Unit.Number,
			AV1:    req.Unit.AV1,
			AV2:    req.Unit.AV2,
			NOA:    req.Unit.NOA,
		},
	}
	if err := s.GradeMapper.Insert(ctx, g); err != nil {
		return nil, err
	}
	return &school.CreateGradeResp{Grade: newGradeInfo(g)}, nil
}

func (s *GradeService) ListGrades(ctx context.Context, req *school.ListGradesReq) (*school.ListGradesResp, error) {
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)

	var grades []*grade.Grade
	var total int64
	var err error
	if req.StudentId != nil && *req.StudentId != "" {
		grades, total, err = s.GradeMapper.FindManyByStudent(ctx, *req.StudentId, skip, limit)
	} else {
		grades, total, err = s.GradeMapper.FindMany(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	return &school.ListGradesResp{
		Grades: lo.Map(grades, func(g *grade.Grade, _ int) *school.GradeInfo { return newGradeInfo(g) }),
		Total:  total,
	}, nil
}

func (s *GradeService) GetGrade(ctx context.Context, req *school.GetGradeReq) (*school.GetGradeResp, error) {
	g, err := s.GradeMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &school.GetGradeResp{Grade: newGradeInfo(g)}, nil
}

func (s *GradeService) UpdateGrade(ctx context.Context, req *school.UpdateGradeReq) (*school.UpdateGradeResp, error) {
	g, err := s.GradeMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Unit != nil {
		if !validUnit(req.Unit) {
			return nil, consts.ErrInvalidParams
		}
		g.Unit = grade.Unit{
			Number: req.Unit.Number,
			AV1:    req.Unit.AV1,
			AV2:    req.Unit.AV2,
			NOA:    req.Unit.NOA,
		}
	}
	if err := s.GradeMapper.Update(ctx, g); err != nil {
		return nil, err
	}
	return &school.UpdateGradeResp{Grade: newGradeInfo(g)}, nil
}

func (s *GradeService) DeleteGrade(ctx context.Context, req *school.DeleteGradeReq) (*basic.Response, error) {
	if err := s.GradeMapper.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return util.Succeed("grade deleted")
}

func validUnit(u *school.UnitInfo) bool {
	if u.Number <= 0 {
		return false
	}
	if !validConcept(u.AV1) || !validConcept(u.AV2) {
		return false
	}
	// NOA is the optional recovery assessment
	if u.NOA != "" && !validConcept(u.NOA) {
		return false
	}
	return true
}

func validConcept(c string) bool {
	switch c {
	case consts.ConceptAchieved, consts.ConceptPartiallyAchieved, consts.ConceptNotAchieved:
		return true
	}
	return false
}

func newGradeInfo(g *grade.Grade) *school.GradeInfo {
	return &school.GradeInfo{
		Id:        g.ID.Hex(),
		StudentId: g.StudentID,
		SubjectId: g.SubjectID,
		Unit: school.UnitInfo{
			Number: g.Unit.Number,
			AV1:    g.Unit.AV1,
			AV2:    g.Unit.AV2,
			NOA:    g.Unit.NOA,
		},
		CreateTime: g.CreateTime.Unix(),
	}
}

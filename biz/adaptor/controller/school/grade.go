package school

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/school"
	"school-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func CreateGrade(ctx context.Context, c *app.RequestContext) {
	var req school.CreateGradeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.GradeService.CreateGrade(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

func ListGrades(ctx context.Context, c *app.RequestContext) {
	var req school.ListGradesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.GradeService.ListGrades(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetGrade(ctx context.Context, c *app.RequestContext) {
	var req school.GetGradeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.GradeService.GetGrade(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateGrade(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateGradeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.GradeService.UpdateGrade(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteGrade(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteGradeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.GradeService.DeleteGrade(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

package school

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/school"
	"school-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func CreateAbsence(ctx context.Context, c *app.RequestContext) {
	var req school.CreateAbsenceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AbsenceService.CreateAbsence(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

func ListAbsences(ctx context.Context, c *app.RequestContext) {
	var req school.ListAbsencesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AbsenceService.ListAbsences(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetAbsence(ctx context.Context, c *app.RequestContext) {
	var req school.GetAbsenceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AbsenceService.GetAbsence(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateAbsence(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateAbsenceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AbsenceService.UpdateAbsence(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteAbsence(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteAbsenceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AbsenceService.DeleteAbsence(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

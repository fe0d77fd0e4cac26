package school

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/school"
	"school-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func CreateAnnouncement(ctx context.Context, c *app.RequestContext) {
	var req school.CreateAnnouncementReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AnnouncementService.CreateAnnouncement(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

func ListAnnouncements(ctx context.Context, c *app.RequestContext) {
	var req school.ListAnnouncementsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AnnouncementService.ListAnnouncements(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetAnnouncement(ctx context.Context, c *app.RequestContext) {
	var req school.GetAnnouncementReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AnnouncementService.GetAnnouncement(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateAnnouncement(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateAnnouncementReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AnnouncementService.UpdateAnnouncement(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteAnnouncement(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteAnnouncementReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AnnouncementService.DeleteAnnouncement(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

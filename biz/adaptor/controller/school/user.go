package school

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/school"
	infraconsts "school-api/biz/infrastructure/consts"
	"school-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func ListUsers(ctx context.Context, c *app.RequestContext) {
	var req school.ListUsersReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.ListUsers(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListStudents(ctx context.Context, c *app.RequestContext) {
	listUsersByRole(ctx, c, infraconsts.RoleStudent)
}

func ListTeachers(ctx context.Context, c *app.RequestContext) {
	listUsersByRole(ctx, c, infraconsts.RoleTeacher)
}

func ListCoordinators(ctx context.Context, c *app.RequestContext) {
	listUsersByRole(ctx, c, infraconsts.RoleCoordinator)
}

func listUsersByRole(ctx context.Context, c *app.RequestContext, role string) {
	var req school.ListUsersByRoleReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req.Role = role
	p := provider.Get()
	resp, err := p.UserService.ListUsersByRole(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetUser(ctx context.Context, c *app.RequestContext) {
	var req school.GetUserReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.GetUser(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.UpdateUser(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteUserReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.DeleteUser(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

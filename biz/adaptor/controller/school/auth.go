package school

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/school"
	"school-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Login 登录
func Login(ctx context.Context, c *app.RequestContext) {
	var req school.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.Login(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// Register 注册新用户, 仅登录用户可调用
func Register(ctx context.Context, c *app.RequestContext) {
	var req school.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.Register(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

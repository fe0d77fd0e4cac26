package school

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/school"
	"school-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateClass 创建班级, 仅协调员可调用
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req school.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.CreateClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req school.ListClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.ListClasses(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetClass(ctx context.Context, c *app.RequestContext) {
	var req school.GetClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.GetClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateClass(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.UpdateClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteClass(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.DeleteClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetClassStudents(ctx context.Context, c *app.RequestContext) {
	var req school.GetClassStudentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.GetClassStudents(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AddStudent 按邮箱加入学生, 成功返回201
func AddStudent(ctx context.Context, c *app.RequestContext) {
	var req school.AddStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.AddStudent(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

func RemoveStudent(ctx context.Context, c *app.RequestContext) {
	var req school.RemoveStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.RemoveStudent(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func AddTeacher(ctx context.Context, c *app.RequestContext) {
	var req school.AddTeacherReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.AddTeacher(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

func RemoveTeacher(ctx context.Context, c *app.RequestContext) {
	var req school.RemoveTeacherReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.RemoveTeacher(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

package service

import (
	"context"
	"testing"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/user"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classFixture struct {
	svc   *ClassService
	users *fakeUserMapper
	cache *fakeViewCache
}

func newClassFixture(t *testing.T) *classFixture {
	t.Helper()
	setupTestConfig(t)
	users := newFakeUserMapper()
	cache := newFakeViewCache()
	svc := &ClassService{
		ClassMapper:   newFakeClassMapper(),
		UserMapper:    users,
		SubjectMapper: newFakeSubjectMapper(),
		ViewCache:     cache,
	}
	return &classFixture{svc: svc, users: users, cache: cache}
}

func (f *classFixture) addUser(t *testing.T, name, email, role string) *user.User {
	t.Helper()
	u := &user.User{Name: name, Email: email, Role: role}
	require.NoError(t, f.users.Insert(context.Background(), u))
	return u
}

// coordinatorCtx returns a ctx carrying the identity of a coordinator.
func (f *classFixture) coordinatorCtx(t *testing.T) context.Context {
	t.Helper()
	u := f.addUser(t, "Coord", "coord@school.local", consts.RoleCoordinator)
	return adaptor.WithUserMeta(context.Background(), &basic.UserMeta{UserId: u.ID.Hex()})
}

func (f *classFixture) createClass(t *testing.T, ctx context.Context) *school.ClassInfo {
	t.Helper()
	resp, err := f.svc.CreateClass(ctx, &school.CreateClassReq{
		Name:  "Math 101",
		Shift: consts.ShiftMorning,
		Room:  "B12",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Class)
	return resp.Class
}

func TestCreateClassRequiresCoordinator(t *testing.T) {
	f := newClassFixture(t)

	_, err := f.svc.CreateClass(context.Background(), &school.CreateClassReq{
		Name: "Math 101", Shift: consts.ShiftMorning, Room: "B12",
	})
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)

	student := f.addUser(t, "Alice", "alice@school.local", consts.RoleStudent)
	ctx := adaptor.WithUserMeta(context.Background(), &basic.UserMeta{UserId: student.ID.Hex()})
	_, err = f.svc.CreateClass(ctx, &school.CreateClassReq{
		Name: "Math 101", Shift: consts.ShiftMorning, Room: "B12",
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)
}

func TestCreateClass(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)

	info := f.createClass(t, ctx)
	assert.NotEmpty(t, info.Id)
	assert.Len(t, info.Code, 8)
	assert.Empty(t, info.Students)
	assert.Empty(t, info.Teachers)

	// An explicit code must be unique.
	_, err := f.svc.CreateClass(ctx, &school.CreateClassReq{
		Name: "Math 102", Code: lo.ToPtr(info.Code), Shift: consts.ShiftMorning, Room: "B13",
	})
	assert.ErrorIs(t, err, consts.ErrCodeRegistered)

	_, err = f.svc.CreateClass(ctx, &school.CreateClassReq{
		Name: "Math 103", Shift: "evening", Room: "B14",
	})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

func TestAddStudentRoundTrip(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)
	student := f.addUser(t, "Alice", "alice@school.local", consts.RoleStudent)

	resp, err := f.svc.AddStudent(ctx, &school.AddStudentReq{Id: info.Id, Email: "alice@school.local"})
	require.NoError(t, err)
	require.Len(t, resp.Class.Students, 1)
	assert.Equal(t, student.ID.Hex(), resp.Class.Students[0].Id)

	listed, err := f.svc.GetClassStudents(ctx, &school.GetClassStudentsReq{Id: info.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 1, listed.Total)

	removed, err := f.svc.RemoveStudent(ctx, &school.RemoveStudentReq{Id: info.Id, StudentId: student.ID.Hex()})
	require.NoError(t, err)
	assert.Empty(t, removed.Class.Students)
}

func TestAddStudentDuplicate(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)
	f.addUser(t, "Alice", "alice@school.local", consts.RoleStudent)

	_, err := f.svc.AddStudent(ctx, &school.AddStudentReq{Id: info.Id, Email: "alice@school.local"})
	require.NoError(t, err)

	_, err = f.svc.AddStudent(ctx, &school.AddStudentReq{Id: info.Id, Email: "alice@school.local"})
	assert.ErrorIs(t, err, consts.ErrAlreadyMember)
}

func TestAddStudentChecksRole(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)
	f.addUser(t, "Carol", "carol@school.local", consts.RoleTeacher)

	_, err := f.svc.AddStudent(ctx, &school.AddStudentReq{Id: info.Id, Email: "carol@school.local"})
	assert.ErrorIs(t, err, consts.ErrRoleMismatch)

	// The same user is welcome on the teacher roster.
	resp, err := f.svc.AddTeacher(ctx, &school.AddTeacherReq{Id: info.Id, Email: "carol@school.local"})
	require.NoError(t, err)
	assert.Len(t, resp.Class.Teachers, 1)
}

// Failures surface in a fixed order: unknown class first, then unknown
// user, then role, then membership.
func TestAddStudentErrorOrder(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)

	_, err := f.svc.AddStudent(ctx, &school.AddStudentReq{Id: "missing-class", Email: "nobody@school.local"})
	assert.ErrorIs(t, err, consts.ErrNotFound)

	_, err = f.svc.AddStudent(ctx, &school.AddStudentReq{Id: info.Id, Email: "nobody@school.local"})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}

func TestRemoveStudentNotAMember(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)
	student := f.addUser(t, "Alice", "alice@school.local", consts.RoleStudent)

	_, err := f.svc.RemoveStudent(ctx, &school.RemoveStudentReq{Id: info.Id, StudentId: student.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrNotAMember)

	_, err = f.svc.RemoveStudent(ctx, &school.RemoveStudentReq{Id: "missing-class", StudentId: student.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}

func TestGetClassUsesViewCache(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)

	_, err := f.svc.GetClass(ctx, &school.GetClassReq{Id: info.Id})
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.sets)

	// Second read is served from cache.
	_, err = f.svc.GetClass(ctx, &school.GetClassReq{Id: info.Id})
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.sets)

	// A roster change invalidates the view.
	f.addUser(t, "Alice", "alice@school.local", consts.RoleStudent)
	_, err = f.svc.AddStudent(ctx, &school.AddStudentReq{Id: info.Id, Email: "alice@school.local"})
	require.NoError(t, err)
	assert.Greater(t, f.cache.deletes, 0)

	resp, err := f.svc.GetClass(ctx, &school.GetClassReq{Id: info.Id})
	require.NoError(t, err)
	assert.Len(t, resp.Class.Students, 1)
}

func TestUpdateClass(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)

	resp, err := f.svc.UpdateClass(ctx, &school.UpdateClassReq{
		Id:    info.Id,
		Name:  lo.ToPtr("Math 201"),
		Shift: lo.ToPtr(consts.ShiftAfternoon),
	})
	require.NoError(t, err)
	assert.Equal(t, "Math 201", resp.Class.Name)
	assert.Equal(t, consts.ShiftAfternoon, resp.Class.Shift)

	_, err = f.svc.UpdateClass(ctx, &school.UpdateClassReq{
		Id:    info.Id,
		Shift: lo.ToPtr("evening"),
	})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

func TestDeleteClass(t *testing.T) {
	f := newClassFixture(t)
	ctx := f.coordinatorCtx(t)
	info := f.createClass(t, ctx)

	_, err := f.svc.DeleteClass(ctx, &school.DeleteClassReq{Id: info.Id})
	require.NoError(t, err)

	_, err = f.svc.GetClass(ctx, &school.GetClassReq{Id: info.Id})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}

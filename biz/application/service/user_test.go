package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/util"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `Name: school-api-test
ListenOn: 127.0.0.1:0
Auth:
  SecretKey: "unit-test-secret"
  AccessExpire: 3600
Bootstrap:
  Name: Admin
  Email: admin@school.local
  Password: admin123
Mongo:
  URL: mongodb://localhost:27017
  DB: school_test
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)
	c, err := config.NewConfig()
	require.NoError(t, err)
	return c
}

func newTestUserService(t *testing.T) (*UserService, *fakeUserMapper) {
	t.Helper()
	users := newFakeUserMapper()
	return &UserService{
		Config:     setupTestConfig(t),
		UserMapper: users,
	}, users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &school.RegisterReq{
		Name:         "Alice",
		Email:        "alice@school.local",
		Password:     "s3cret",
		Role:         consts.RoleStudent,
		Registration: lo.ToPtr("2024001"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.User.Id)
	assert.Equal(t, consts.RoleStudent, resp.User.Role)

	byEmail, err := svc.Login(ctx, &school.LoginReq{Identifier: "alice@school.local", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.Id, byEmail.Id)
	assert.NotEmpty(t, byEmail.AccessToken)

	byName, err := svc.Login(ctx, &school.LoginReq{Identifier: "Alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.Id, byName.Id)
}

// A missing account and a wrong password must yield the same error.
func TestLoginUniformFailure(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &school.RegisterReq{
		Name: "Alice", Email: "alice@school.local", Password: "s3cret", Role: consts.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &school.LoginReq{Identifier: "alice@school.local", Password: "wrong"})
	assert.ErrorIs(t, err, consts.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &school.LoginReq{Identifier: "nobody@school.local", Password: "s3cret"})
	assert.ErrorIs(t, err, consts.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &school.RegisterReq{
		Name: "Alice", Email: "alice@school.local", Password: "s3cret", Role: consts.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &school.RegisterReq{
		Name: "Other", Email: "alice@school.local", Password: "pw", Role: consts.RoleTeacher,
	})
	assert.ErrorIs(t, err, consts.ErrEmailRegistered)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register(context.Background(), &school.RegisterReq{
		Name: "Alice", Email: "alice@school.local", Password: "pw", Role: "principal",
	})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &school.RegisterReq{
		Name: "Alice", Email: "alice@school.local", Password: "s3cret", Role: consts.RoleStudent,
	})
	require.NoError(t, err)

	stored, err := users.FindOne(ctx, resp.User.Id)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, util.CheckPassword(stored.PasswordHash, "s3cret"))
}

func TestUpdateUserRoleImmutable(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &school.RegisterReq{
		Name: "Alice", Email: "alice@school.local", Password: "pw", Role: consts.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, &school.UpdateUserReq{
		Id:   resp.User.Id,
		Role: lo.ToPtr(consts.RoleCoordinator),
	})
	assert.ErrorIs(t, err, consts.ErrRoleImmutable)

	// Sending the unchanged role is not a change.
	updated, err := svc.UpdateUser(ctx, &school.UpdateUserReq{
		Id:   resp.User.Id,
		Name: lo.ToPtr("Alice Smith"),
		Role: lo.ToPtr(consts.RoleStudent),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.User.Name)
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &school.RegisterReq{
		Name: "Alice", Email: "alice@school.local", Password: "pw", Role: consts.RoleStudent,
	})
	require.NoError(t, err)
	bob, err := svc.Register(ctx, &school.RegisterReq{
		Name: "Bob", Email: "bob@school.local", Password: "pw", Role: consts.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, &school.UpdateUserReq{
		Id:    bob.User.Id,
		Email: lo.ToPtr("alice@school.local"),
	})
	assert.ErrorIs(t, err, consts.ErrEmailRegistered)
}

func TestListUsersByRole(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	for _, r := range []struct{ name, email, role string }{
		{"Alice", "alice@school.local", consts.RoleStudent},
		{"Bob", "bob@school.local", consts.RoleStudent},
		{"Carol", "carol@school.local", consts.RoleTeacher},
	} {
		_, err := svc.Register(ctx, &school.RegisterReq{Name: r.name, Email: r.email, Password: "pw", Role: r.role})
		require.NoError(t, err)
	}

	students, err := svc.ListUsersByRole(ctx, &school.ListUsersByRoleReq{Role: consts.RoleStudent})
	require.NoError(t, err)
	assert.EqualValues(t, 2, students.Total)

	_, err = svc.ListUsersByRole(ctx, &school.ListUsersByRoleReq{Role: "janitor"})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

func TestEnsureBootstrapCoordinator(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureBootstrapCoordinator(ctx))
	count, err := users.CountByRole(ctx, consts.RoleCoordinator)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Idempotent across restarts.
	require.NoError(t, svc.EnsureBootstrapCoordinator(ctx))
	count, err = users.CountByRole(ctx, consts.RoleCoordinator)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	login, err := svc.Login(ctx, &school.LoginReq{Identifier: "admin@school.local", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, consts.RoleCoordinator, login.Role)
}

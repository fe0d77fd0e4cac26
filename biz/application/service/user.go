package service

import (
	"context"
	"errors"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/user"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/log"
	"school-api/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IUserService interface {
	Login(ctx context.Context, req *school.LoginReq) (*school.LoginResp, error)
	Register(ctx context.Context, req *school.RegisterReq) (*school.RegisterResp, error)
	ListUsers(ctx context.Context, req *school.ListUsersReq) (*school.ListUsersResp, error)
	ListUsersByRole(ctx context.Context, req *school.ListUsersByRoleReq) (*school.ListUsersResp, error)
	GetUser(ctx context.Context, req *school.GetUserReq) (*school.GetUserResp, error)
	UpdateUser(ctx context.Context, req *school.UpdateUserReq) (*school.UpdateUserResp, error)
	DeleteUser(ctx context.Context, req *school.DeleteUserReq) (*basic.Response, error)
	EnsureBootstrapCoordinator(ctx context.Context) error
}

type UserService struct {
	Config     *config.Config
	UserMapper user.Mapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// Login verifies credentials and issues a session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *school.LoginReq) (*school.LoginResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Identifier)
	if errors.Is(err, consts.ErrNotFound) {
		u, err = s.UserMapper.FindOneByName(ctx, req.Identifier)
	}
	if errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !util.CheckPassword(u.PasswordHash, req.Password) {
		return nil, consts.ErrInvalidCredentials
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &school.LoginResp{
		Id:           u.ID.Hex(),
		Name:         u.Name,
		Role:         u.Role,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
	}, nil
}

// Register creates an account. The plaintext password only lives long
// enough to be hashed.
func (s *UserService) Register(ctx context.Context, req *school.RegisterReq) (*school.RegisterResp, error) {
	if !validRole(req.Role) {
		return nil, consts.ErrInvalidParams
	}

	_, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, consts.ErrEmailRegistered
	case errors.Is(err, consts.ErrNotFound):
	default:
		return nil, err
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if req.Registration != nil {
		u.Registration = *req.Registration
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		return nil, err
	}
	return &school.RegisterResp{User: newUserInfo(u)}, nil
}

func (s *UserService) ListUsers(ctx context.Context, req *school.ListUsersReq) (*school.ListUsersResp, error) {
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)
	users, total, err := s.UserMapper.FindMany(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &school.ListUsersResp{
		Users: lo.Map(users, func(u *user.User, _ int) *school.UserInfo { return newUserInfo(u) }),
		Total: total,
	}, nil
}

func (s *UserService) ListUsersByRole(ctx context.Context, req *school.ListUsersByRoleReq) (*school.ListUsersResp, error) {
	if !validRole(req.Role) {
		return nil, consts.ErrInvalidParams
	}
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)
	users, total, err := s.UserMapper.FindManyByRole(ctx, req.Role, skip, limit)
	if err != nil {
		return nil, err
	}
	return &school.ListUsersResp{
		Users: lo.Map(users, func(u *user.User, _ int) *school.UserInfo { return newUserInfo(u) }),
		Total: total,
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, req *school.GetUserReq) (*school.GetUserResp, error) {
	u, err := s.UserMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &school.GetUserResp{User: newUserInfo(u)}, nil
}

// UpdateUser applies self-service or coordinator edits. Role is fixed
// at creation: an attempted change is rejected instead of silently
// ignored, so the roster invariants can never be bypassed through the
// generic update path.
func (s *UserService) UpdateUser(ctx context.Context, req *school.UpdateUserReq) (*school.UpdateUserResp, error) {
	u, err := s.UserMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil && *req.Role != u.Role {
		return nil, consts.ErrRoleImmutable
	}
	if req.Email != nil && *req.Email != u.Email {
		_, err := s.UserMapper.FindOneByEmail(ctx, *req.Email)
		switch {
		case err == nil:
			return nil, consts.ErrEmailRegistered
		case errors.Is(err, consts.ErrNotFound):
		default:
			return nil, err
		}
		u.Email = *req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Registration != nil {
		u.Registration = *req.Registration
	}

	if err := s.UserMapper.Update(ctx, u); err != nil {
		return nil, err
	}
	return &school.UpdateUserResp{User: newUserInfo(u)}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, req *school.DeleteUserReq) (*basic.Response, error) {
	if err := s.UserMapper.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return util.Succeed("user deleted")
}

// EnsureBootstrapCoordinator runs once at startup: an empty deployment
// gets the configured coordinator so somebody can register everyone
// else. Reconciliation is idempotent, so restarts are safe.
func (s *UserService) EnsureBootstrapCoordinator(ctx context.Context) error {
	count, err := s.UserMapper.CountByRole(ctx, consts.RoleCoordinator)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	b := s.Config.Bootstrap
	if b.Email == "" || b.Password == "" {
		log.Info("no coordinator exists and no bootstrap account configured")
		return nil
	}
	hash, err := util.HashPassword(b.Password)
	if err != nil {
		return err
	}
	u := &user.User{
		Name:         b.Name,
		Email:        b.Email,
		PasswordHash: hash,
		Registration: b.Registration,
		Role:         consts.RoleCoordinator,
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		return err
	}
	log.Info("bootstrap coordinator created, email=%s", b.Email)
	return nil
}

func validRole(role string) bool {
	switch role {
	case consts.RoleStudent, consts.RoleTeacher, consts.RoleCoordinator:
		return true
	}
	return false
}

func newUserInfo(u *user.User) *school.UserInfo {
	info := new(school.UserInfo)
	_ = copier.Copy(info, u)
	info.Id = u.ID.Hex()
	info.CreateTime = u.CreateTime.Unix()
	return info
}

package service

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/notification"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type INotificationService interface {
	CreateNotification(ctx context.Context, req *school.CreateNotificationReq) (*school.CreateNotificationResp, error)
	ListNotifications(ctx context.Context, req *school.ListNotificationsReq) (*school.ListNotificationsResp, error)
	GetNotification(ctx context.Context, req *school.GetNotificationReq) (*school.GetNotificationResp, error)
	UpdateNotification(ctx context.Context, req *school.UpdateNotificationReq) (*school.UpdateNotificationResp, error)
	DeleteNotification(ctx context.Context, req *school.DeleteNotificationReq) (*basic.Response, error)
}

type NotificationService struct {
	NotificationMapper notification.Mapper
}

var NotificationServiceSet = wire.NewSet(
	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),
)

func (s *NotificationService) CreateNotification(ctx context.Context, req *school.CreateNotificationReq) (*school.CreateNotificationResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	n := &notification.Notification{
		Message:  req.Message,
		AuthorID: meta.GetUserId(),
	}
	if err := s.NotificationMapper.Insert(ctx, n); err != nil {
		return nil, err
	}
	return &school.CreateNotificationResp{Notification: newNotificationInfo(n)}, nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, req *school.ListNotificationsReq) (*school.ListNotificationsResp, error) {
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)
	notifications, total, err := s.NotificationMapper.FindMany(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &school.ListNotificationsResp{
		Notifications: lo.Map(notifications, func(n *notification.Notification, _ int) *school.NotificationInfo {
			return newNotificationInfo(n)
		}),
		Total: total,
	}, nil
}

func (s *NotificationService) GetNotification(ctx context.Context, req *school.GetNotificationReq) (*school.GetNotificationResp, error) {
	n, err := s.NotificationMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &school.GetNotificationResp{Notification: newNotificationInfo(n)}, nil
}

func (s *NotificationService) UpdateNotification(ctx context.Context, req *school.UpdateNotificationReq) (*school.UpdateNotificationResp, error) {
	n, err := s.NotificationMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Message != nil {
		n.Message = *req.Message
	}
	if err := s.NotificationMapper.Update(ctx, n); err != nil {
		return nil, err
	}
	return &school.UpdateNotificationResp{Notification: newNotificationInfo(n)}, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, req *school.DeleteNotificationReq) (*basic.Response, error) {
	if err := s.NotificationMapper.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return util.Succeed("notification deleted")
}

func newNotificationInfo(n *notification.Notification) *school.NotificationInfo {
	return &school.NotificationInfo{
		Id:         n.ID.Hex(),
		Message:    n.Message,
		AuthorId:   n.AuthorID,
		CreateTime: n.CreateTime.Unix(),
	}
}

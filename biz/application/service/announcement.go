package service

import (
	"context"

	"school-api/biz/adaptor"
	"school-api/biz/application/dto/basic"
	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/announcement"
	"school-api/biz/infrastructure/util"
	"school-api/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req *school.CreateAnnouncementReq) (*school.CreateAnnouncementResp, error)
	ListAnnouncements(ctx context.Context, req *school.ListAnnouncementsReq) (*school.ListAnnouncementsResp, error)
	GetAnnouncement(ctx context.Context, req *school.GetAnnouncementReq) (*school.GetAnnouncementResp, error)
	UpdateAnnouncement(ctx context.Context, req *school.UpdateAnnouncementReq) (*school.UpdateAnnouncementResp, error)
	DeleteAnnouncement(ctx context.Context, req *school.DeleteAnnouncementReq) (*basic.Response, error)
}

type AnnouncementService struct {
	AnnouncementMapper announcement.Mapper
}

var AnnouncementServiceSet = wire.NewSet(
	wire.Struct(new(AnnouncementService), "*"),
	wire.Bind(new(IAnnouncementService), new(*AnnouncementService)),
)

// CreateAnnouncement attributes authorship to the authenticated
// identity, never to a caller-supplied field.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, req *school.CreateAnnouncementReq) (*school.CreateAnnouncementResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	a := &announcement.Announcement{
		Title:    req.Title,
		Message:  req.Message,
		AuthorID: meta.GetUserId(),
	}
	if err := s.AnnouncementMapper.Insert(ctx, a); err != nil {
		return nil, err
	}
	return &school.CreateAnnouncementResp{Announcement: newAnnouncementInfo(a)}, nil
}

func (s *AnnouncementService) ListAnnouncements(ctx context.Context, req *school.ListAnnouncementsReq) (*school.ListAnnouncementsResp, error) {
	skip, limit := page.ParsePageOpt(&req.PaginationOptions)
	announcements, total, err := s.AnnouncementMapper.FindMany(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &school.ListAnnouncementsResp{
		Announcements: lo.Map(announcements, func(a *announcement.Announcement, _ int) *school.AnnouncementInfo {
			return newAnnouncementInfo(a)
		}),
		Total: total,
	}, nil
}

func (s *AnnouncementService) GetAnnouncement(ctx context.Context, req *school.GetAnnouncementReq) (*school.GetAnnouncementResp, error) {
	a, err := s.AnnouncementMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &school.GetAnnouncementResp{Announcement: newAnnouncementInfo(a)}, nil
}

func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, req *school.UpdateAnnouncementReq) (*school.UpdateAnnouncementResp, error) {
	a, err := s.AnnouncementMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Message != nil {
		a.Message = *req.Message
	}
	if err := s.AnnouncementMapper.Update(ctx, a); err != nil {
		return nil, err
	}
	return &school.UpdateAnnouncementResp{Announcement: newAnnouncementInfo(a)}, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, req *school.DeleteAnnouncementReq) (*basic.Response, error) {
	if err := s.AnnouncementMapper.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return util.Succeed("announcement deleted")
}

func newAnnouncementInfo(a *announcement.Announcement) *school.AnnouncementInfo {
	return &school.AnnouncementInfo{
		Id:         a.ID.Hex(),
		Title:      a.Title,
		Message:    a.Message,
		AuthorId:   a.AuthorID,
		CreateTime: a.CreateTime.Unix(),
	}
}

package provider

import (
	"school-api/biz/application/service"
	"school-api/biz/infrastructure/cache"
	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/repository/absence"
	"school-api/biz/infrastructure/repository/announcement"
	"school-api/biz/infrastructure/repository/class"
	"school-api/biz/infrastructure/repository/grade"
	"school-api/biz/infrastructure/repository/notification"
	"school-api/biz/infrastructure/repository/subject"
	"school-api/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	UserService         service.IUserService
	ClassService        service.IClassService
	SubjectService      service.ISubjectService
	GradeService        service.IGradeService
	AbsenceService      service.IAbsenceService
	AnnouncementService service.IAnnouncementService
	NotificationService service.INotificationService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.ClassServiceSet,
	service.SubjectServiceSet,
	service.GradeServiceSet,
	service.AbsenceServiceSet,
	service.AnnouncementServiceSet,
	service.NotificationServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	wire.Bind(new(user.Mapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.Mapper), new(*class.MongoMapper)),
	subject.NewMongoMapper,
	wire.Bind(new(subject.Mapper), new(*subject.MongoMapper)),
	grade.NewMongoMapper,
	wire.Bind(new(grade.Mapper), new(*grade.MongoMapper)),
	absence.NewMongoMapper,
	wire.Bind(new(absence.Mapper), new(*absence.MongoMapper)),
	announcement.NewMongoMapper,
	wire.Bind(new(announcement.Mapper), new(*announcement.MongoMapper)),
	notification.NewMongoMapper,
	wire.Bind(new(notification.Mapper), new(*notification.MongoMapper)),
	cache.NewClassViewCacheMapper,
	wire.Bind(new(cache.IClassViewCacheMapper), new(*cache.ClassViewCacheMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)

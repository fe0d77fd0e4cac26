package announcement

import (
	"context"
	"errors"
	"time"

	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixAnnouncementCacheKey = "cache:announcement"
	AnnouncementCollectionName = "announcement"
)

type Mapper interface {
	Insert(ctx context.Context, a *Announcement) error
	FindOne(ctx context.Context, id string) (*Announcement, error)
	FindMany(ctx context.Context, skip, limit int64) ([]*Announcement, int64, error)
	Update(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AnnouncementCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, a *Announcement) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
		a.CreateTime = time.Now()
		a.UpdateTime = a.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, a)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var a Announcement
	err = m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &a, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindMany(ctx context.Context, skip, limit int64) ([]*Announcement, int64, error) {
	filter := bson.M{}
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var announcements []*Announcement
	err = m.conn.Find(ctx, &announcements, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return announcements, total, nil
}

func (m *MongoMapper) Update(ctx context.Context, a *Announcement) error {
	a.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, a.ID, bson.M{consts.Set: a})
	return err
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	if err != nil {
		return err
	}
	if res == 0 {
		return consts.ErrNotFound
	}
	return nil
}

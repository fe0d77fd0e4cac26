package notification

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
	prefixNotificationCacheKey = "cache:notification"
	NotificationCollectionName = "notification"
)

type Mapper interface {
	Insert(ctx context.Context, n *Notification) error
	FindOne(ctx context.Context, id string) (*Notification, error)
	FindMany(ctx context.Context, skip, limit int64) ([]*Notification, int64, error)
	Update(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, NotificationCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, n *Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
		n.CreateTime = time.Now()
		n.UpdateTime = n.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, n)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var n Notification
	err = m.conn.FindOneNoCache(ctx, &n, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &n, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindMany(ctx context.Context, skip, limit int64) ([]*Notification, int64, error) {
	filter := bson.M{}
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var notifications []*Notification
	err = m.conn.Find(ctx, &notifications, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (m *MongoMapper) Update(ctx context.Context, n *Notification) error {
	n.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, n.ID, bson.M{consts.Set: n})
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

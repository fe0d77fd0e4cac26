package subject

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
	prefixSubjectCacheKey = "cache:subject"
	SubjectCollectionName = "subject"
)

type Mapper interface {
	Insert(ctx context.Context, s *Subject) error
	FindOne(ctx context.Context, id string) (*Subject, error)
	FindMany(ctx context.Context, skip, limit int64) ([]*Subject, int64, error)
	Update(ctx context.Context, s *Subject) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubjectCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Subject) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Subject, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Subject
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindMany(ctx context.Context, skip, limit int64) ([]*Subject, int64, error) {
	filter := bson.M{}
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var subjects []*Subject
	err = m.conn.Find(ctx, &subjects, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return subjects, total, nil
}

func (m *MongoMapper) Update(ctx context.Context, s *Subject) error {
	s.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, s.ID, bson.M{consts.Set: s})
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

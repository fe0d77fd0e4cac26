package grade

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
	prefixGradeCacheKey = "cache:grade"
	GradeCollectionName = "grade"
)

type Mapper interface {
	Insert(ctx context.Context, g *Grade) error
	FindOne(ctx context.Context, id string) (*Grade, error)
	FindMany(ctx context.Context, skip, limit int64) ([]*Grade, int64, error)
	FindManyByStudent(ctx context.Context, studentID string, skip, limit int64) ([]*Grade, int64, error)
	Update(ctx context.Context, g *Grade) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, GradeCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, g *Grade) error {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
		g.CreateTime = time.Now()
		g.UpdateTime = g.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, g)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Grade, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var g Grade
	err = m.conn.FindOneNoCache(ctx, &g, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &g, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindMany(ctx context.Context, skip, limit int64) ([]*Grade, int64, error) {
	return m.findMany(ctx, bson.M{}, skip, limit)
}

func (m *MongoMapper) FindManyByStudent(ctx context.Context, studentID string, skip, limit int64) ([]*Grade, int64, error) {
	return m.findMany(ctx, bson.M{"student_id": studentID}, skip, limit)
}

func (m *MongoMapper) findMany(ctx context.Context, filter bson.M, skip, limit int64) ([]*Grade, int64, error) {
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var grades []*Grade
	err = m.conn.Find(ctx, &grades, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return grades, total, nil
}

func (m *MongoMapper) Update(ctx context.Context, g *Grade) error {
	g.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, g.ID, bson.M{consts.Set: g})
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

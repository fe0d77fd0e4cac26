package class

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
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "class"
)

type Mapper interface {
	Insert(ctx context.Context, c *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindOneByCode(ctx context.Context, code string) (*Class, error)
	FindMany(ctx context.Context, skip, limit int64) ([]*Class, int64, error)
	Update(ctx context.Context, c *Class) error
	Delete(ctx context.Context, id string) error
	AddStudent(ctx context.Context, id, userID string) error
	RemoveStudent(ctx context.Context, id, userID string) error
	AddTeacher(ctx context.Context, id, userID string) error
	RemoveTeacher(ctx context.Context, id, userID string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, c *Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	if c.TeacherIDs == nil {
		c.TeacherIDs = []string{}
	}
	if c.StudentIDs == nil {
		c.StudentIDs = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, c)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindOneByCode(ctx context.Context, code string) (*Class, error) {
	var c Class
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.Code: code,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindMany(ctx context.Context, skip, limit int64) ([]*Class, int64, error) {
	filter := bson.M{}
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var classes []*Class
	err = m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (m *MongoMapper) Update(ctx context.Context, c *Class) error {
	c.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, c.ID, bson.M{consts.Set: c})
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

func (m *MongoMapper) AddStudent(ctx context.Context, id, userID string) error {
	return m.addToSet(ctx, id, consts.Students, userID)
}

func (m *MongoMapper) RemoveStudent(ctx context.Context, id, userID string) error {
	return m.pullFromSet(ctx, id, consts.Students, userID)
}

func (m *MongoMapper) AddTeacher(ctx context.Context, id, userID string) error {
	return m.addToSet(ctx, id, consts.Teachers, userID)
}

func (m *MongoMapper) RemoveTeacher(ctx context.Context, id, userID string) error {
	return m.pullFromSet(ctx, id, consts.Teachers, userID)
}

// addToSet inserts userID into the named roster field in one guarded
// update, so two concurrent adds can never lose each other's write.
// The caller has already resolved the class, so an unmatched filter
// means the user is already in the set.
func (m *MongoMapper) addToSet(ctx context.Context, id, field, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, field: bson.M{consts.NotEqual: userID}},
		bson.M{
			consts.AddToSet: bson.M{field: userID},
			consts.Set:      bson.M{consts.UpdateTime: time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrAlreadyMember
	}
	return nil
}

// pullFromSet removes userID from the named roster field; an unmatched
// filter means the user was not in the set.
func (m *MongoMapper) pullFromSet(ctx context.Context, id, field, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, field: userID},
		bson.M{
			consts.Pull: bson.M{field: userID},
			consts.Set:  bson.M{consts.UpdateTime: time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotAMember
	}
	return nil
}

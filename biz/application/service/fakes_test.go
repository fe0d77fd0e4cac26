package service

import (
	"context"
	"fmt"
	"time"

	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/class"
	"school-api/biz/infrastructure/repository/subject"
	"school-api/biz/infrastructure/repository/user"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory mappers backing the service tests. They mirror the mongo
// mappers' error contract, including the guarded roster updates.

type fakeUserMapper struct {
	users map[string]*user.User
}

func newFakeUserMapper() *fakeUserMapper {
	return &fakeUserMapper{users: make(map[string]*user.User)}
}

func (m *fakeUserMapper) Insert(ctx context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now()
	u.CreateTime = now
	u.UpdateTime = now
	m.users[u.ID.Hex()] = u
	return nil
}

func (m *fakeUserMapper) FindOne(ctx context.Context, id string) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return u, nil
}

func (m *fakeUserMapper) FindOneByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeUserMapper) FindOneByName(ctx context.Context, name string) (*user.User, error) {
	for _, u := range m.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeUserMapper) FindMany(ctx context.Context, skip, limit int64) ([]*user.User, int64, error) {
	all := lo.Values(m.users)
	return all, int64(len(all)), nil
}

func (m *fakeUserMapper) FindManyByRole(ctx context.Context, role string, skip, limit int64) ([]*user.User, int64, error) {
	matched := lo.Filter(lo.Values(m.users), func(u *user.User, _ int) bool { return u.Role == role })
	return matched, int64(len(matched)), nil
}

func (m *fakeUserMapper) CountByRole(ctx context.Context, role string) (int64, error) {
	_, total, _ := m.FindManyByRole(ctx, role, 0, 0)
	return total, nil
}

func (m *fakeUserMapper) Update(ctx context.Context, u *user.User) error {
	if _, ok := m.users[u.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	u.UpdateTime = time.Now()
	m.users[u.ID.Hex()] = u
	return nil
}

func (m *fakeUserMapper) Delete(ctx context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type fakeClassMapper struct {
	classes map[string]*class.Class
}

func newFakeClassMapper() *fakeClassMapper {
	return &fakeClassMapper{classes: make(map[string]*class.Class)}
}

func (m *fakeClassMapper) Insert(ctx context.Context, c *class.Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.TeacherIDs == nil {
		c.TeacherIDs = []string{}
	}
	if c.StudentIDs == nil {
		c.StudentIDs = []string{}
	}
	now := time.Now()
	c.CreateTime = now
	c.UpdateTime = now
	m.classes[c.ID.Hex()] = c
	return nil
}

func (m *fakeClassMapper) FindOne(ctx context.Context, id string) (*class.Class, error) {
	c, ok := m.classes[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

func (m *fakeClassMapper) FindOneByCode(ctx context.Context, code string) (*class.Class, error) {
	for _, c := range m.classes {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeClassMapper) FindMany(ctx context.Context, skip, limit int64) ([]*class.Class, int64, error) {
	all := lo.Values(m.classes)
	return all, int64(len(all)), nil
}

func (m *fakeClassMapper) Update(ctx context.Context, c *class.Class) error {
	if _, ok := m.classes[c.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	c.UpdateTime = time.Now()
	m.classes[c.ID.Hex()] = c
	return nil
}

func (m *fakeClassMapper) Delete(ctx context.Context, id string) error {
	if _, ok := m.classes[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.classes, id)
	return nil
}

func (m *fakeClassMapper) AddStudent(ctx context.Context, id, userID string) error {
	c, ok := m.classes[id]
	if !ok || lo.Contains(c.StudentIDs, userID) {
		return consts.ErrAlreadyMember
	}
	c.StudentIDs = append(c.StudentIDs, userID)
	return nil
}

func (m *fakeClassMapper) RemoveStudent(ctx context.Context, id, userID string) error {
	c, ok := m.classes[id]
	if !ok || !lo.Contains(c.StudentIDs, userID) {
		return consts.ErrNotAMember
	}
	c.StudentIDs = lo.Without(c.StudentIDs, userID)
	return nil
}

func (m *fakeClassMapper) AddTeacher(ctx context.Context, id, userID string) error {
	c, ok := m.classes[id]
	if !ok || lo.Contains(c.TeacherIDs, userID) {
		return consts.ErrAlreadyMember
	}
	c.TeacherIDs = append(c.TeacherIDs, userID)
	return nil
}

func (m *fakeClassMapper) RemoveTeacher(ctx context.Context, id, userID string) error {
	c, ok := m.classes[id]
	if !ok || !lo.Contains(c.TeacherIDs, userID) {
		return consts.ErrNotAMember
	}
	c.TeacherIDs = lo.Without(c.TeacherIDs, userID)
	return nil
}

type fakeSubjectMapper struct {
	subjects map[string]*subject.Subject
}

func newFakeSubjectMapper() *fakeSubjectMapper {
	return &fakeSubjectMapper{subjects: make(map[string]*subject.Subject)}
}

func (m *fakeSubjectMapper) Insert(ctx context.Context, s *subject.Subject) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	now := time.Now()
	s.CreateTime = now
	s.UpdateTime = now
	m.subjects[s.ID.Hex()] = s
	return nil
}

func (m *fakeSubjectMapper) FindOne(ctx context.Context, id string) (*subject.Subject, error) {
	s, ok := m.subjects[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return s, nil
}

func (m *fakeSubjectMapper) FindMany(ctx context.Context, skip, limit int64) ([]*subject.Subject, int64, error) {
	all := lo.Values(m.subjects)
	return all, int64(len(all)), nil
}

func (m *fakeSubjectMapper) Update(ctx context.Context, s *subject.Subject) error {
	if _, ok := m.subjects[s.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	m.subjects[s.ID.Hex()] = s
	return nil
}

func (m *fakeSubjectMapper) Delete(ctx context.Context, id string) error {
	if _, ok := m.subjects[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.subjects, id)
	return nil
}

// fakeViewCache counts hits so tests can assert invalidation.
type fakeViewCache struct {
	entries map[string]*school.ClassInfo
	sets    int
	deletes int
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{entries: make(map[string]*school.ClassInfo)}
}

func (c *fakeViewCache) Get(ctx context.Context, id string) (*school.ClassInfo, error) {
	info, ok := c.entries[id]
	if !ok {
		return nil, fmt.Errorf("cache miss")
	}
	return info, nil
}

func (c *fakeViewCache) Set(ctx context.Context, id string, data *school.ClassInfo) error {
	c.entries[id] = data
	c.sets++
	return nil
}

func (c *fakeViewCache) Delete(ctx context.Context, id string) error {
	delete(c.entries, id)
	c.deletes++
	return nil
}

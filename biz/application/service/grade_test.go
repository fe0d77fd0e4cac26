package service

import (
	"context"
	"testing"
	"time"

	"school-api/biz/application/dto/school"
	"school-api/biz/infrastructure/consts"
	"school-api/biz/infrastructure/repository/grade"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGradeMapper struct {
	grades map[string]*grade.Grade
}

func newFakeGradeMapper() *fakeGradeMapper {
	return &fakeGradeMapper{grades: make(map[string]*grade.Grade)}
}

func (m *fakeGradeMapper) Insert(ctx context.Context, g *grade.Grade) error {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	g.CreateTime = time.Now()
	g.UpdateTime = g.CreateTime
	m.grades[g.ID.Hex()] = g
	return nil
}

func (m *fakeGradeMapper) FindOne(ctx context.Context, id string) (*grade.Grade, error) {
	g, ok := m.grades[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return g, nil
}

func (m *fakeGradeMapper) FindMany(ctx context.Context, skip, limit int64) ([]*grade.Grade, int64, error) {
	all := lo.Values(m.grades)
	return all, int64(len(all)), nil
}

func (m *fakeGradeMapper) FindManyByStudent(ctx context.Context, studentID string, skip, limit int64) ([]*grade.Grade, int64, error) {
	matched := lo.Filter(lo.Values(m.grades), func(g *grade.Grade, _ int) bool { return g.StudentID == studentID })
	return matched, int64(len(matched)), nil
}

func (m *fakeGradeMapper) Update(ctx context.Context, g *grade.Grade) error {
	if _, ok := m.grades[g.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	m.grades[g.ID.Hex()] = g
	return nil
}

func (m *fakeGradeMapper) Delete(ctx context.Context, id string) error {
	if _, ok := m.grades[id]; !ok {
		return consts.ErrNotFound
	}
	delete(m.grades, id)
	return nil
}

func TestCreateGradeValidation(t *testing.T) {
	svc := &GradeService{GradeMapper: newFakeGradeMapper()}
	ctx := context.Background()

	tests := []struct {
		name    string
		unit    school.UnitInfo
		wantErr bool
	}{
		{"valid without recovery", school.UnitInfo{Number: 1, AV1: consts.ConceptAchieved, AV2: consts.ConceptPartiallyAchieved}, false},
		{"valid with recovery", school.UnitInfo{Number: 2, AV1: consts.ConceptNotAchieved, AV2: consts.ConceptNotAchieved, NOA: consts.ConceptAchieved}, false},
		{"zero unit number", school.UnitInfo{Number: 0, AV1: consts.ConceptAchieved, AV2: consts.ConceptAchieved}, true},
		{"numeric mark", school.UnitInfo{Number: 1, AV1: "7.5", AV2: consts.ConceptAchieved}, true},
		{"bad recovery mark", school.UnitInfo{Number: 1, AV1: consts.ConceptAchieved, AV2: consts.ConceptAchieved, NOA: "B"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGrade(ctx, &school.CreateGradeReq{
				StudentId: "student-1",
				SubjectId: "subject-1",
				Unit:      tt.unit,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, consts.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListGradesByStudent(t *testing.T) {
	svc := &GradeService{GradeMapper: newFakeGradeMapper()}
	ctx := context.Background()

	for _, studentID := range []string{"student-1", "student-1", "student-2"} {
		_, err := svc.CreateGrade(ctx, &school.CreateGradeReq{
			StudentId: studentID,
			SubjectId: "subject-1",
			Unit:      school.UnitInfo{Number: 1, AV1: consts.ConceptAchieved, AV2: consts.ConceptAchieved},
		})
		require.NoError(t, err)
	}

	all, err := svc.ListGrades(ctx, &school.ListGradesReq{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)

	one, err := svc.ListGrades(ctx, &school.ListGradesReq{StudentId: lo.ToPtr("student-1")})
	require.NoError(t, err)
	assert.EqualValues(t, 2, one.Total)
}

func TestUpdateGradeRejectsBadUnit(t *testing.T) {
	svc := &GradeService{GradeMapper: newFakeGradeMapper()}
	ctx := context.Background()

	created, err := svc.CreateGrade(ctx, &school.CreateGradeReq{
		StudentId: "student-1",
		SubjectId: "subject-1",
		Unit:      school.UnitInfo{Number: 1, AV1: consts.ConceptAchieved, AV2: consts.ConceptAchieved},
	})
	require.NoError(t, err)

	_, err = svc.UpdateGrade(ctx, &school.UpdateGradeReq{
		Id:   created.Grade.Id,
		Unit: &school.UnitInfo{Number: 1, AV1: "10", AV2: consts.ConceptAchieved},
	})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

package grade

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unit holds the concept marks of one grading unit. AV1/AV2 are the two
// regular assessments, NOA the optional recovery one; values are the
// concept grades A, PA and NA.
type Unit struct {
	Number int    `bson:"number" json:"number"`
	AV1    string `bson:"av1" json:"av1"`
	AV2    string `bson:"av2" json:"av2"`
	NOA    string `bson:"noa,omitempty" json:"noa,omitempty"`
}

type Grade struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  string             `bson:"student_id" json:"studentId"`
	SubjectID  string             `bson:"subject_id" json:"subjectId"`
	Unit       Unit               `bson:"unit" json:"unit"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

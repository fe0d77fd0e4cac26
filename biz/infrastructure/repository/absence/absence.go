package absence

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Absence struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  string             `bson:"student_id" json:"studentId"`
	SubjectID  string             `bson:"subject_id" json:"subjectId"`
	Date       time.Time          `bson:"date" json:"date"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

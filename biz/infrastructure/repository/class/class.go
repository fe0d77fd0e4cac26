package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Code       string             `bson:"code" json:"code"`
	SubjectID  string             `bson:"subject_id,omitempty" json:"subjectId,omitempty"`
	Shift      string             `bson:"shift" json:"shift"` // morning/afternoon
	Room       string             `bson:"room" json:"room"`
	TeacherIDs []string           `bson:"teachers" json:"teachers"`
	StudentIDs []string           `bson:"students" json:"students"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

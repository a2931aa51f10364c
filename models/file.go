package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File mirrors an uploaded asset on disk.
type File struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Filename   string             `bson:"filename" json:"filename"`
	URL        string             `bson:"url" json:"url"`
	Mimetype   string             `bson:"mimetype,omitempty" json:"mimetype,omitempty"`
	Size       int64              `bson:"size,omitempty" json:"size,omitempty"`
	UploadedAt time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}

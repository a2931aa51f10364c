package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddReview(t *testing.T) {
	p := Product{}

	p.AddReview(Review{User: primitive.NewObjectID(), Rating: 4})
	assert.Equal(t, Ratings{Average: 4, Count: 1}, p.Ratings)

	p.AddReview(Review{User: primitive.NewObjectID(), Rating: 5})
	assert.Equal(t, Ratings{Average: 4.5, Count: 2}, p.Ratings)

	p.AddReview(Review{User: primitive.NewObjectID(), Rating: 1})
	assert.Equal(t, Ratings{Average: 3.3, Count: 3}, p.Ratings)
	assert.Len(t, p.Reviews, 3)
}

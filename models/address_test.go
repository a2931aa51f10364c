package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFlagDefault(t *testing.T) {
	a1 := Address{Id: primitive.NewObjectID()}
	a2 := Address{Id: primitive.NewObjectID()}
	a3 := Address{Id: primitive.NewObjectID()}

	flagged := FlagDefault([]Address{a1, a2, a3}, a2.Id)

	assert.False(t, flagged[0].IsDefault)
	assert.True(t, flagged[1].IsDefault)
	assert.False(t, flagged[2].IsDefault)
}

func TestFlagDefaultExactlyOne(t *testing.T) {
	// Pointing the default at a new address implicitly clears the old
	// one: the flag is derived, never stored twice.
	a1 := Address{Id: primitive.NewObjectID()}
	a2 := Address{Id: primitive.NewObjectID()}

	flagged := FlagDefault([]Address{a1, a2}, a1.Id)
	flagged = FlagDefault(flagged, a2.Id)

	var defaults int
	for _, a := range flagged {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.True(t, flagged[1].IsDefault)
}

func TestFlagDefaultNoneSet(t *testing.T) {
	a1 := Address{Id: primitive.NewObjectID()}

	flagged := FlagDefault([]Address{a1}, primitive.NilObjectID)
	assert.False(t, flagged[0].IsDefault)
}

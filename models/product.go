package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxProductImages caps the image list on a catalog entry.
const MaxProductImages = 10

// Review is a customer review embedded in its product document.
type Review struct {
	User      primitive.ObjectID `bson:"user" json:"user"`
	Comment   string             `bson:"comment" json:"comment"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Ratings is the running aggregate over a product's reviews.
type Ratings struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// Product is a catalog entry. The slug is globally unique and derived
// from the name at creation time.
type Product struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name" validate:"required,max=120"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description" json:"description" validate:"required"`
	Price         float64            `bson:"price" json:"price" validate:"required,gte=0"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Discount      float64            `bson:"discount,omitempty" json:"discount,omitempty"`
	Category      string             `bson:"category" json:"category" validate:"required"`
	Subcategory   string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Images        []string           `bson:"images" json:"images" validate:"max=10"`
	Stock         int                `bson:"stock" json:"stock" validate:"gte=0"`
	Brand         string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Features      []string           `bson:"features,omitempty" json:"features,omitempty"`
	Colors        []string           `bson:"colors,omitempty" json:"colors,omitempty"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Ratings       Ratings            `bson:"ratings" json:"ratings"`
	Reviews       []Review           `bson:"reviews" json:"reviews"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	IsNew         bool               `bson:"isNew" json:"isNew"`
	IsTrending    bool               `bson:"isTrending" json:"isTrending"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AddReview appends a review and recomputes the rating aggregate from
// the full embedded list.
func (p *Product) AddReview(r Review) {
	p.Reviews = append(p.Reviews, r)

	var sum int
	for _, rv := range p.Reviews {
		sum += rv.Rating
	}
	avg := float64(sum) / float64(len(p.Reviews))

	p.Ratings = Ratings{
		Average: math.Round(avg*10) / 10,
		Count:   len(p.Reviews),
	}
}

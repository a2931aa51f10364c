package productsController

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tharshan2001/Ebee.lk/configs"
	filesController "github.com/tharshan2001/Ebee.lk/controllers/files"
	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

var validate = validator.New()

func productCol() *mongo.Collection { return configs.GetCollection("products") }

type CreateProductRequest struct {
	Name          string   `json:"name" form:"name" validate:"required,max=120"`
	Description   string   `json:"description" form:"description" validate:"required"`
	Price         float64  `json:"price" form:"price" validate:"required,gte=0"`
	OriginalPrice float64  `json:"originalPrice" form:"originalPrice" validate:"gte=0"`
	Discount      float64  `json:"discount" form:"discount" validate:"gte=0"`
	Category      string   `json:"category" form:"category" validate:"required"`
	Subcategory   string   `json:"subcategory" form:"subcategory"`
	Images        []string `json:"images" validate:"max=10"`
	Stock         int      `json:"stock" form:"stock" validate:"gte=0"`
	Brand         string   `json:"brand" form:"brand"`
	Features      []string `json:"features"`
	Colors        []string `json:"colors"`
	Tags          []string `json:"tags"`
	IsNew         bool     `json:"isNew" form:"isNew"`
	IsTrending    bool     `json:"isTrending" form:"isTrending"`
}

// Create adds a catalog entry. The body may be JSON with image URLs, or
// multipart form-data with up to ten files in the images field.
func Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "No data provided")
	}

	// Multipart uploads replace any images sent as plain fields.
	if form, err := c.MultipartForm(); err == nil && form != nil {
		uploads := form.File["images"]
		if len(uploads) > models.MaxProductImages {
			return responses.Error(c, fiber.StatusBadRequest, "Maximum 10 images allowed")
		}
		var images []string
		for _, fh := range uploads {
			name, err := filesController.SaveImage(c, fh)
			if err != nil {
				return responses.Error(c, fiber.StatusBadRequest, err.Error())
			}
			images = append(images, "/uploads/"+name)
		}
		if len(images) > 0 {
			req.Images = images
		}
	}

	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Name, description, price, and category are required")
	}

	s := uniqueSlug(req.Name, func(candidate string) bool {
		count, err := productCol().CountDocuments(ctx, bson.M{"slug": candidate})
		return err == nil && count > 0
	})

	now := time.Now()
	product := models.Product{
		Id:            primitive.NewObjectID(),
		Name:          req.Name,
		Slug:          s,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Images:        req.Images,
		Stock:         req.Stock,
		Brand:         req.Brand,
		Features:      req.Features,
		Colors:        req.Colors,
		Tags:          req.Tags,
		Ratings:       models.Ratings{},
		Reviews:       []models.Review{},
		IsActive:      true,
		IsNew:         req.IsNew,
		IsTrending:    req.IsTrending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := productCol().InsertOne(ctx, product); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error creating product")
	}

	return responses.Created(c, "Product created successfully", &fiber.Map{"product": product})
}

// List returns products newest first, optionally filtered by category
// and paginated with page/limit.
func List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if err != nil || limit < 1 {
		limit = 20
	}

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := productCol().Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching products")
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error decoding products")
	}

	total, err := productCol().CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting products")
	}

	return responses.OK(c, "Products fetched successfully", &fiber.Map{
		"products":    products,
		"currentPage": page,
		"totalPages":  (total + limit - 1) / limit,
		"total":       total,
	})
}

// Trending returns up to ten trending products.
func Trending(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := productCol().Find(ctx, bson.M{"isTrending": true}, options.Find().SetLimit(10))
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching trending products")
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error decoding products")
	}

	return responses.OK(c, "Trending products fetched successfully", &fiber.Map{"products": products})
}

// GetBySlug looks a product up by its unique slug.
func GetBySlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := productCol().FindOne(ctx, bson.M{"slug": c.Params("slug")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	return responses.OK(c, "Product fetched successfully", &fiber.Map{"product": product})
}

// GetByID looks a product up by object id.
func GetByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product models.Product
	err = productCol().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	return responses.OK(c, "Product fetched successfully", &fiber.Map{"product": product})
}

type UpdateProductRequest struct {
	Name          *string   `json:"name,omitempty" validate:"omitempty,max=120"`
	Description   *string   `json:"description,omitempty"`
	Price         *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Discount      *float64  `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Category      *string   `json:"category,omitempty"`
	Subcategory   *string   `json:"subcategory,omitempty"`
	Images        *[]string `json:"images,omitempty" validate:"omitempty,max=10"`
	Stock         *int      `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Brand         *string   `json:"brand,omitempty"`
	Features      *[]string `json:"features,omitempty"`
	Colors        *[]string `json:"colors,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	IsActive      *bool     `json:"isActive,omitempty"`
	IsNew         *bool     `json:"isNew,omitempty"`
	IsTrending    *bool     `json:"isTrending,omitempty"`
}

func (r UpdateProductRequest) setDoc() bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Price != nil {
		set["price"] = *r.Price
	}
	if r.OriginalPrice != nil {
		set["originalPrice"] = *r.OriginalPrice
	}
	if r.Discount != nil {
		set["discount"] = *r.Discount
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Subcategory != nil {
		set["subcategory"] = *r.Subcategory
	}
	if r.Images != nil {
		set["images"] = *r.Images
	}
	if r.Stock != nil {
		set["stock"] = *r.Stock
	}
	if r.Brand != nil {
		set["brand"] = *r.Brand
	}
	if r.Features != nil {
		set["features"] = *r.Features
	}
	if r.Colors != nil {
		set["colors"] = *r.Colors
	}
	if r.Tags != nil {
		set["tags"] = *r.Tags
	}
	if r.IsActive != nil {
		set["isActive"] = *r.IsActive
	}
	if r.IsNew != nil {
		set["isNew"] = *r.IsNew
	}
	if r.IsTrending != nil {
		set["isTrending"] = *r.IsTrending
	}
	return set
}

// Update applies a partial edit. The slug is never regenerated, so
// published URLs stay stable.
func Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err = productCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": req.setDoc()}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating product")
	}

	return responses.OK(c, "Product updated successfully", &fiber.Map{"product": updated})
}

// Delete removes a catalog entry.
func Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	res, err := productCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting product")
	}
	if res.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}

	return responses.OK(c, "Product deleted successfully", nil)
}

package filesController

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tharshan2001/Ebee.lk/configs"
	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

// MaxUploadSize caps a single uploaded image.
const MaxUploadSize = 20 * 1024 * 1024

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

func fileCol() *mongo.Collection { return configs.GetCollection("files") }

// StoredFilename builds the on-disk name for an upload: the slugged
// base name plus a timestamp for uniqueness, keeping the extension.
func StoredFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	return fmt.Sprintf("%s-%d%s", slug.Make(base), time.Now().UnixMilli(), ext)
}

// AllowedImage checks extension and declared content type.
func AllowedImage(fh *multipart.FileHeader) bool {
	if !allowedImageExts[strings.ToLower(filepath.Ext(fh.Filename))] {
		return false
	}
	return strings.HasPrefix(fh.Header.Get("Content-Type"), "image/")
}

// SaveImage validates and writes one uploaded image into the upload
// directory, returning the stored filename.
func SaveImage(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	if !AllowedImage(fh) {
		return "", fmt.Errorf("only image files are allowed")
	}
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("file exceeds the %dMB limit", MaxUploadSize/(1024*1024))
	}

	dir := configs.EnvUploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := StoredFilename(fh.Filename)
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// Upload stores a single image and records its metadata.
func Upload(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	fh, err := c.FormFile("file")
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "No file uploaded")
	}

	name, err := SaveImage(c, fh)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	file := models.File{
		Id:         primitive.NewObjectID(),
		Filename:   name,
		URL:        c.BaseURL() + "/uploads/" + name,
		Mimetype:   fh.Header.Get("Content-Type"),
		Size:       fh.Size,
		UploadedAt: time.Now(),
	}

	if _, err := fileCol().InsertOne(ctx, file); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error saving file info")
	}

	return responses.OK(c, "Image uploaded successfully", &fiber.Map{"file": file})
}

// Delete removes the disk file if it still exists, then the metadata
// document.
func Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid file ID")
	}

	var file models.File
	err = fileCol().FindOne(ctx, bson.M{"_id": id}).Decode(&file)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "File not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching file")
	}

	path := filepath.Join(configs.EnvUploadDir(), file.Filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting file")
	}

	if _, err := fileCol().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting file info")
	}

	return responses.OK(c, "File deleted successfully", nil)
}

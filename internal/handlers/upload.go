package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shafistore/internal/storage"
)

// UploadHandler exposes the asset storage backend over multipart HTTP.
type UploadHandler struct {
	store storage.AssetStore
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(store storage.AssetStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts a single image in the multipart field "image" and stores it
// in the category bucket. Size and type are checked before any backend write.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	category := c.Params("category")
	if !storage.ValidBucket(category) {
		return fiber.NewError(fiber.StatusBadRequest, storage.ErrBadBucket.Error())
	}

	header, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}
	if err := storage.CheckFile(header); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	src, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}
	defer src.Close()

	result, err := h.store.Put(c.UserContext(), category, header.Filename, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Upload failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Image uploaded successfully",
		"imagePath":    result.Path,
		"filename":     result.Filename,
		"isCloudinary": result.Remote,
	})
}

// Delete removes a previously uploaded image from its category bucket.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	category := c.Params("category")
	if !storage.ValidBucket(category) {
		return fiber.NewError(fiber.StatusBadRequest, storage.ErrBadBucket.Error())
	}

	err := h.store.Delete(c.UserContext(), category, c.Params("filename"))
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Delete failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Image deleted successfully"})
}

// Status reports the active storage strategy. Credentials are reported only
// as a configured/unconfigured boolean.
func (h *UploadHandler) Status(c *fiber.Ctx) error {
	status := h.store.Describe()
	if status.CloudName == "" {
		status.CloudName = "Not set"
	}
	return c.JSON(status)
}

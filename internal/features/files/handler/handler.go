package handler

import (
	"mime/multipart"
	"net/http"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/server"
	"shop-admin/internal/features/files/domain"
	"shop-admin/internal/features/files/ports"

	"github.com/gofiber/fiber/v2"
)

// FileHandler handles image uploads.
type FileHandler struct {
	service ports.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(service ports.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Register mounts the file routes on r.
func (h *FileHandler) Register(r fiber.Router) {
	g := r.Group("/files")
	g.Post("/", h.UploadFile)
	g.Post("/multiple", h.UploadFiles)
	g.Get("/:id", h.GetFileInfo)
	g.Get("/:id/exists", h.FileExists)
	g.Delete("/:id", h.DeleteFile)
}

// UploadFile handles POST /admin/files.
// @Summary Upload an image
// @Description Validates the image (type, size, extension) and streams it to the backend.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to upload"
// @Success 201 {object} domain.UploadResult
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/files [post]
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return server.BadRequest(c, "File is required")
	}

	upload, closeFile, err := open(fh)
	if err != nil {
		return server.Fail(c, err, "Could not upload file")
	}
	defer closeFile()

	res, err := h.service.Upload(server.Context(c), upload)
	if err != nil {
		return server.Fail(c, err, "Could not upload file")
	}
	return c.Status(http.StatusCreated).JSON(res)
}

// UploadFiles handles POST /admin/files/multiple.
// @Summary Upload several images
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images to upload"
// @Success 201 {array} domain.UploadResult
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/files/multiple [post]
func (h *FileHandler) UploadFiles(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return server.BadRequest(c, "Files are required")
	}

	headers := form.File["files"]
	uploads := make([]domain.Upload, 0, len(headers))
	for _, fh := range headers {
		upload, closeFile, err := open(fh)
		if err != nil {
			return server.Fail(c, err, "Could not upload files")
		}
		defer closeFile()
		uploads = append(uploads, upload)
	}

	res, err := h.service.UploadMultiple(server.Context(c), uploads)
	if err != nil {
		return server.Fail(c, err, "Could not upload files")
	}
	return c.Status(http.StatusCreated).JSON(res)
}

// open turns a multipart header into an Upload. The returned func closes the
// file and must be called on every path once open succeeds.
func open(fh *multipart.FileHeader) (domain.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return domain.Upload{}, nil, apperr.Invalid("file", "could not read "+fh.Filename)
	}
	return domain.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

// GetFileInfo handles GET /admin/files/:id.
// @Summary File metadata
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} domain.Info
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/files/{id} [get]
func (h *FileHandler) GetFileInfo(c *fiber.Ctx) error {
	info, err := h.service.Info(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not load file")
	}
	return c.Status(http.StatusOK).JSON(info)
}

// FileExists handles GET /admin/files/:id/exists.
// @Summary Check a file
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} map[string]bool
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/files/{id}/exists [get]
func (h *FileHandler) FileExists(c *fiber.Ctx) error {
	ok, err := h.service.Exists(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not check file")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"exists": ok})
}

// DeleteFile handles DELETE /admin/files/:id.
// @Summary Delete a file
// @Tags Files
// @Param id path string true "File ID"
// @Success 204
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/files/{id} [delete]
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	if err := h.service.Delete(server.Context(c), c.Params("id")); err != nil {
		return server.Fail(c, err, "Could not delete file")
	}
	return c.SendStatus(http.StatusNoContent)
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "portfolio_backend/internals/helpers"
	ossHelper "portfolio_backend/internals/helpers/oss"
)

// Folder tujuan dibatasi supaya object key tetap rapi dan bisa di-audit.
var allowedUploadFolders = map[string]bool{
	"profile":  true,
	"projects": true,
	"articles": true,
	"products": true,
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// =============================
// ➕ Admin: Upload File
// Gambar di-resize + re-encode webp; file lain diunggah apa adanya.
// =============================
func (ctrl *UploadController) UploadFile(c *fiber.Ctx) error {
	folder := c.Params("folder")
	if !allowedUploadFolders[folder] {
		return helper.JsonError(c, fiber.StatusBadRequest, "Folder tidak dikenal")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form field 'file'")
	}
	if fh.Size > ossHelper.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 5MB")
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("portfolio")
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Penyimpanan file belum dikonfigurasi")
	}

	ctx := c.UserContext()

	var url string
	if ossHelper.IsImageFilename(fh.Filename) {
		url, err = ossHelper.UploadImageToDir(ctx, svc, folder, fh)
	} else {
		url, _, err = svc.UploadFromFormFileToDir(ctx, folder, fh)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "File berhasil diunggah", fiber.Map{"url": url})
}

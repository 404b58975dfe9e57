package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

// uploads are capped before decoding; phones routinely produce 10MB+
// originals so the limit is generous.
const maxUploadBytes = 25 << 20

// UploadPhoto accepts a multipart form with the image under "photo"
// plus uploaded_by and an optional caption.
func UploadPhoto(p *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

		file, _, err := c.Request.FormFile("photo")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("photo file is required"))
			return
		}
		defer file.Close()

		uploadedBy := c.PostForm("uploaded_by")
		caption := c.PostForm("caption")

		photo, err := p.UploadPhoto(c.Request.Context(), file, uploadedBy, caption)
		if err != nil {
			if errors.Is(err, services.ErrUploaderNameRequired) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to upload photo"))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(photo, "Photo uploaded successfully"))
	}
}

// ListPhotos returns one gallery page. sort=oldest flips the default
// newest-first ordering.
func ListPhotos(p *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid page parameter"))
			return
		}
		sort := c.DefaultQuery("sort", "newest")

		photos, total, err := p.ListPhotos(c.Request.Context(), page, sort)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to fetch photos"))
			return
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(photos, page, services.PhotosPerPage, total))
	}
}

// DeletePhoto removes a photo by id, row first then storage object.
func DeletePhoto(p *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid photo id"))
			return
		}

		if err := p.DeletePhoto(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrPhotoNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("photo not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to delete photo"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Photo deleted successfully"))
	}
}

// DownloadPhoto streams the stored image with an attachment
// disposition so the browser saves rather than navigates.
func DownloadPhoto(p *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid photo id"))
			return
		}

		data, filename, err := p.DownloadPhoto(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrPhotoNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("photo not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to download photo"))
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "image/jpeg", data)
	}
}

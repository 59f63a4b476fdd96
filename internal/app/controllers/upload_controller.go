package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/middleware"
	"github.com/necfeedback/coursefeedback/internal/pkg/filestorage"
)

// BatchArchiveDir is the storage subdirectory for uploaded course batches
const BatchArchiveDir = "course-batches"

// UploadController handles course batch uploads
type UploadController struct {
	importService  services.CourseImportService
	storage        filestorage.FileStorage
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewUploadController creates a new UploadController. storage may be nil to skip archiving.
func NewUploadController(importService services.CourseImportService, storage filestorage.FileStorage, maxUploadBytes int64, logger zerolog.Logger) *UploadController {
	return &UploadController{
		importService:  importService,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// UploadCourseBatch imports courses from a CSV file
// @Summary Upload a course batch
// @Description Imports courses from a CSV with columns Program, Dept, Year, Sem, CourseCode, CourseName, CourseType, Faculty1..Faculty3. Rows are accepted or rejected individually.
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param csvFile formData file true "Course batch CSV"
// @Success 200 {object} dto.CourseBatchResponse
// @Failure 400 {object} dto.ErrorResponse "No file uploaded or unreadable file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Failed to upload course batch"
// @Router /upload-coursebatch [post]
func (c *UploadController) UploadCourseBatch(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("csvFile")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded").WithField("csvFile")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if c.maxUploadBytes > 0 && fileHeader.Size > c.maxUploadBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File too large").
			WithField("csvFile").
			WithDetails(fmt.Sprintf("maximum size is %d bytes", c.maxUploadBytes))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	archivePath := c.archive(fileHeader)

	file, err := fileHeader.Open()
	if err != nil {
		c.dropArchive(archivePath)
		middleware.HandleAPIError(ctx, fmt.Errorf("failed to open uploaded file: %w", err))
		return
	}
	defer file.Close()

	result, err := c.importService.ImportCSV(ctx.Request.Context(), file)
	if err != nil {
		c.dropArchive(archivePath)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// archive stores the uploaded batch and returns its relative path, or "" when it was not stored
func (c *UploadController) archive(fileHeader *multipart.FileHeader) string {
	if c.storage == nil {
		return ""
	}
	path, err := c.storage.SaveFileWithPath(fileHeader, BatchArchiveDir)
	if err != nil {
		c.logger.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to archive course batch")
		return ""
	}
	c.logger.Info().Str("archive", c.storage.GetFullPath(path)).Msg("Course batch archived")
	return path
}

// dropArchive removes the archived copy of a batch that did not import
func (c *UploadController) dropArchive(path string) {
	if path == "" {
		return
	}
	if err := c.storage.DeleteFile(path); err != nil {
		c.logger.Warn().Err(err).Str("archive", path).Msg("Failed to remove archived course batch")
	}
}

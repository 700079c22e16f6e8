package handler

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"floorplan-compliance-backend/internal/config"
	"floorplan-compliance-backend/internal/service"
	"floorplan-compliance-backend/internal/storage"
	"floorplan-compliance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
}

type UploadHandler struct {
	extractionService *service.ExtractionService
	uploadStore       *storage.UploadStore
	cfg               *config.Config
}

func NewUploadHandler(
	extractionService *service.ExtractionService,
	uploadStore *storage.UploadStore,
	cfg *config.Config,
) *UploadHandler {
	return &UploadHandler{
		extractionService: extractionService,
		uploadStore:       uploadStore,
		cfg:               cfg,
	}
}

// UploadFloorPlan accepts a floor plan image, validates it, stores it and
// runs the mock extraction into structured floor plan data
func (h *UploadHandler) UploadFloorPlan(c *gin.Context) {
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Floor plan image file is required")
		return
	}

	buildingType := c.DefaultPostForm("building_type", "residential")
	totalArea := 0.0
	if raw := c.PostForm("total_area"); raw != "" {
		totalArea, err = strconv.ParseFloat(raw, 64)
		if err != nil || totalArea <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "total_area must be a positive number")
			return
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		utils.ErrorResponse(c, http.StatusBadRequest,
			fmt.Sprintf("File type %s not allowed. Supported types: .jpg, .jpeg, .png, .gif, .bmp, .tiff", ext))
		return
	}
	if fileHeader.Size > h.cfg.Upload.MaxSizeBytes {
		utils.ErrorResponse(c, http.StatusBadRequest,
			fmt.Sprintf("File size (%d bytes) exceeds maximum allowed size (%d bytes)", fileHeader.Size, h.cfg.Upload.MaxSizeBytes))
		return
	}

	if err := os.MkdirAll(h.cfg.Upload.Dir, 0o755); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	fileID := uuid.NewString()
	storedFilename := fileID + ext
	path := filepath.Join(h.cfg.Upload.Dir, storedFilename)

	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to save uploaded file")
		return
	}

	if err := h.validateImageDimensions(path); err != nil {
		_ = os.Remove(path)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.extractionService.ProcessFloorPlanImage(path, buildingType, totalArea)
	if err != nil {
		_ = os.Remove(path)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Floor plan processing failed")
		return
	}

	record := storage.UploadRecord{
		FileID:           fileID,
		OriginalFilename: fileHeader.Filename,
		StoredFilename:   storedFilename,
		Path:             path,
		Size:             fileHeader.Size,
		Status:           "completed",
		UploadedAt:       time.Now(),
	}
	h.uploadStore.Save(record)

	utils.AnalysisResponse(c, "Floor plan uploaded and processed successfully", gin.H{
		"file_info":  record,
		"floor_plan": plan,
	}, elapsedSeconds(start))
}

// validateImageDimensions rejects images outside the supported pixel bounds
func (h *UploadHandler) validateImageDimensions(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("invalid image file or corrupted image data")
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("invalid image file or corrupted image data")
	}

	if cfg.Width < h.cfg.Upload.MinImagePixel || cfg.Height < h.cfg.Upload.MinImagePixel {
		return fmt.Errorf("image dimensions too small, minimum %dx%d pixels required",
			h.cfg.Upload.MinImagePixel, h.cfg.Upload.MinImagePixel)
	}
	if cfg.Width > h.cfg.Upload.MaxImagePixel || cfg.Height > h.cfg.Upload.MaxImagePixel {
		return fmt.Errorf("image dimensions too large, maximum %dx%d pixels allowed",
			h.cfg.Upload.MaxImagePixel, h.cfg.Upload.MaxImagePixel)
	}
	return nil
}

// GenerateSampleData returns a generated sample floor plan for demos
func (h *UploadHandler) GenerateSampleData(c *gin.Context) {
	buildingType := c.DefaultQuery("building_type", "residential")
	complexity := c.DefaultQuery("complexity", "medium")

	plan := h.extractionService.GenerateSamplePlan(buildingType, complexity)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Sample %s %s floor plan generated", complexity, buildingType),
		"data": gin.H{
			"floor_plan": plan,
		},
	})
}

// GetSampleTemplates lists the available sample floor plan templates
func (h *UploadHandler) GetSampleTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates": []gin.H{
			{
				"id":             "small_apartment",
				"name":           "Small Apartment",
				"description":    "2-bedroom apartment with basic amenities",
				"building_type":  "residential",
				"complexity":     "simple",
				"estimated_area": 800,
			},
			{
				"id":             "family_home",
				"name":           "Family Home",
				"description":    "3-bedroom house with living areas and kitchen",
				"building_type":  "residential",
				"complexity":     "medium",
				"estimated_area": 1200,
			},
			{
				"id":             "large_house",
				"name":           "Large House",
				"description":    "4-bedroom house with multiple living areas",
				"building_type":  "residential",
				"complexity":     "complex",
				"estimated_area": 2000,
			},
		},
	})
}

// GetUploadStatus reports processing status for an uploaded file
func (h *UploadHandler) GetUploadStatus(c *gin.Context) {
	fileID := c.Param("file_id")

	record, err := h.uploadStore.Get(fileID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Upload not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_id":   record.FileID,
		"status":    record.Status,
		"message":   "File processed successfully",
		"timestamp": record.UploadedAt.Format(time.RFC3339),
	})
}

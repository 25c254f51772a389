package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/slidesmith/ppt-generator-service/internal/config"
	"github.com/slidesmith/ppt-generator-service/internal/models"
	"github.com/slidesmith/ppt-generator-service/internal/services/excel"
	"github.com/slidesmith/ppt-generator-service/internal/services/presentation"
	"github.com/slidesmith/ppt-generator-service/internal/utils"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// GenerateHandler handles presentation generation requests.
type GenerateHandler struct {
	outlineService *excel.Service
	tempDir        string
}

// NewGenerateHandler creates a new GenerateHandler instance.
func NewGenerateHandler(cfg *config.Config) *GenerateHandler {
	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &GenerateHandler{
		outlineService: excel.NewOutlineService(),
		tempDir:        tempDir,
	}
}

// GeneratePPT handles POST /generate-ppt
// @Summary Generate a presentation
// @Description Duplicates the template's base slide for each outline entry, fills title/body placeholders and returns the assembled document.
// @Description The content part is a JSON object mapping section names to arrays of {title, content}, or an .xlsx outline with section | title | content columns.
// @Tags generate
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.presentationml.presentation
// @Param template formData file true "Presentation template (.pptx)"
// @Param content formData file true "Content outline (JSON or .xlsx)"
// @Success 200 {file} binary "Generated presentation"
// @Failure 400 {object} map[string]interface{} "error: error message"
// @Failure 500 {object} map[string]interface{} "error: error message"
// @Router /generate-ppt [post]
func (h *GenerateHandler) GeneratePPT(c *gin.Context) {
	template, terr := c.FormFile("template")
	content, cerr := c.FormFile("content")
	if terr != nil || cerr != nil {
		logrus.Warn("Generation request missing template or content part")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Both template and content files are required.",
		})
		return
	}

	// Per-request work directory, removed once the response is written.
	workDir := filepath.Join(h.tempDir, uuid.New().String())
	if err := os.MkdirAll(workDir, 0755); err != nil {
		h.serverError(c, fmt.Errorf("creating work directory: %w", err))
		return
	}
	defer os.RemoveAll(workDir)

	templatePath := filepath.Join(workDir, "template.pptx")
	contentPath := filepath.Join(workDir, "content"+strings.ToLower(filepath.Ext(content.Filename)))
	outputPath := filepath.Join(workDir, "output.pptx")

	if err := c.SaveUploadedFile(template, templatePath); err != nil {
		h.serverError(c, fmt.Errorf("saving template upload: %w", err))
		return
	}
	if err := c.SaveUploadedFile(content, contentPath); err != nil {
		h.serverError(c, fmt.Errorf("saving content upload: %w", err))
		return
	}

	outline, ok := h.parseOutline(c, contentPath)
	if !ok {
		return
	}

	builder, err := presentation.NewBuilder(templatePath)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if err := builder.BuildFromOutline(outline); err != nil {
		h.serverError(c, err)
		return
	}
	if err := builder.Save(outputPath); err != nil {
		h.serverError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename=Generated_Presentation.pptx`)
	c.Header("Content-Type", pptxContentType)
	c.File(outputPath)
}

// parseOutline reads the uploaded content file as JSON, or as an Excel
// workbook when it carries an .xlsx extension. Parse failures are client
// errors.
func (h *GenerateHandler) parseOutline(c *gin.Context, contentPath string) (*models.Outline, bool) {
	if strings.HasSuffix(contentPath, ".xlsx") {
		outline, err := h.outlineService.ParseOutline(contentPath)
		if err != nil {
			logrus.Warnf("Excel outline parse failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid Excel content file.",
			})
			return nil, false
		}
		return outline, true
	}

	data, err := os.ReadFile(contentPath)
	if err != nil {
		h.serverError(c, fmt.Errorf("reading content upload: %w", err))
		return nil, false
	}
	outline := &models.Outline{}
	if err := json.Unmarshal(data, outline); err != nil {
		logrus.Warnf("JSON outline parse failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON content file.",
		})
		return nil, false
	}
	return outline, true
}

func (h *GenerateHandler) serverError(c *gin.Context, err error) {
	logrus.Errorf("Presentation generation failed: %v", err)
	utils.CaptureError(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

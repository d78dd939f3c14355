package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"landing-builder-backend/internal/content"
	"landing-builder-backend/internal/export"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/service"
	"landing-builder-backend/internal/templates"
	"landing-builder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type EditorHandler struct {
	editor *service.EditorService
}

func NewEditorHandler(editor *service.EditorService) *EditorHandler {
	return &EditorHandler{
		editor: editor,
	}
}

// RegisterRoutes mounts the editor API on group.
func (h *EditorHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/document", h.GetDocument)
	group.GET("/config", h.GetConfig)
	group.GET("/history", h.GetHistory)

	sections := group.Group("/sections")
	{
		sections.POST("", h.AddSection)
		sections.DELETE("/:sectionId", h.RemoveSection)
		sections.POST("/:sectionId/duplicate", h.DuplicateSection)
		sections.POST("/:sectionId/move", h.MoveSection)
		sections.PATCH("/:sectionId/style", h.PatchSectionStyle)
		sections.PATCH("/:sectionId/content", h.PatchSectionContent)
		sections.POST("/:sectionId/items/:list", h.AddContentItem)
		sections.PATCH("/:sectionId/items/:list/:itemId", h.UpdateContentItem)
		sections.DELETE("/:sectionId/items/:list/:itemId", h.RemoveContentItem)
	}

	group.PATCH("/global-styles", h.PatchGlobalStyles)
	group.PATCH("/page", h.PatchPage)

	group.GET("/templates", h.ListTemplates)
	group.POST("/templates/:templateId", h.LoadTemplate)

	group.POST("/undo", h.Undo)
	group.POST("/redo", h.Redo)
	group.POST("/edits", h.ApplyEdit)

	group.POST("/import", h.Import)
	group.GET("/export/json", h.ExportJSON)
	group.GET("/export/html", h.ExportHTML)
	group.GET("/preview", h.Preview)
}

func (h *EditorHandler) respond(c *gin.Context, status int, state models.EditorState, extra gin.H) {
	body := gin.H{
		"document": state.Document,
		"history":  state.History,
	}
	for key, value := range extra {
		body[key] = value
	}
	c.JSON(status, body)
}

// GetDocument returns the current document.
// GET /api/v1/editor/document
func (h *EditorHandler) GetDocument(c *gin.Context) {
	h.respond(c, http.StatusOK, h.editor.State(), nil)
}

// GetConfig returns the section catalogue and style options.
// GET /api/v1/editor/config
func (h *EditorHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.editor.Config())
}

// GET /api/v1/editor/history
func (h *EditorHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.editor.History())
}

// AddSection appends a section of the requested kind.
// POST /api/v1/editor/sections
func (h *EditorHandler) AddSection(c *gin.Context) {
	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	state, id, err := h.editor.AddSection(models.SectionKind(req.Kind))
	if err != nil {
		if errors.Is(err, service.ErrUnknownKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "Failed to add section", map[string]interface{}{"kind": req.Kind})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add section"})
		return
	}

	h.respond(c, http.StatusCreated, state, gin.H{"sectionId": id})
}

// DELETE /api/v1/editor/sections/:sectionId
func (h *EditorHandler) RemoveSection(c *gin.Context) {
	h.respond(c, http.StatusOK, h.editor.RemoveSection(c.Param("sectionId")), nil)
}

// POST /api/v1/editor/sections/:sectionId/duplicate
func (h *EditorHandler) DuplicateSection(c *gin.Context) {
	state, id := h.editor.DuplicateSection(c.Param("sectionId"))
	h.respond(c, http.StatusOK, state, gin.H{"sectionId": id})
}

// POST /api/v1/editor/sections/:sectionId/move
func (h *EditorHandler) MoveSection(c *gin.Context) {
	var req models.MoveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be up or down"})
		return
	}
	h.respond(c, http.StatusOK, h.editor.MoveSection(c.Param("sectionId"), req.Direction), nil)
}

// PATCH /api/v1/editor/sections/:sectionId/style
func (h *EditorHandler) PatchSectionStyle(c *gin.Context) {
	var patch models.StylePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid style patch"})
		return
	}
	h.respond(c, http.StatusOK, h.editor.PatchSectionStyle(c.Param("sectionId"), patch), nil)
}

// PATCH /api/v1/editor/sections/:sectionId/content
func (h *EditorHandler) PatchSectionContent(c *gin.Context) {
	var partial map[string]interface{}
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content patch"})
		return
	}

	state, err := h.editor.PatchSectionContent(c.Param("sectionId"), partial)
	if err != nil {
		if errors.Is(err, content.ErrInvalidPatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "Failed to patch content", map[string]interface{}{"section_id": c.Param("sectionId")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to patch content"})
		return
	}
	h.respond(c, http.StatusOK, state, nil)
}

// POST /api/v1/editor/sections/:sectionId/items/:list
func (h *EditorHandler) AddContentItem(c *gin.Context) {
	var req models.AddItemRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}
	state, itemID := h.editor.AddContentItem(c.Param("sectionId"), c.Param("list"), req.Fields)
	h.respond(c, http.StatusOK, state, gin.H{"itemId": itemID})
}

// PATCH /api/v1/editor/sections/:sectionId/items/:list/:itemId
func (h *EditorHandler) UpdateContentItem(c *gin.Context) {
	var partial map[string]interface{}
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item patch"})
		return
	}
	state := h.editor.UpdateContentItem(c.Param("sectionId"), c.Param("list"), c.Param("itemId"), partial)
	h.respond(c, http.StatusOK, state, nil)
}

// DELETE /api/v1/editor/sections/:sectionId/items/:list/:itemId
func (h *EditorHandler) RemoveContentItem(c *gin.Context) {
	state := h.editor.RemoveContentItem(c.Param("sectionId"), c.Param("list"), c.Param("itemId"))
	h.respond(c, http.StatusOK, state, nil)
}

// PATCH /api/v1/editor/global-styles
func (h *EditorHandler) PatchGlobalStyles(c *gin.Context) {
	var patch models.GlobalStylesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid global styles patch"})
		return
	}
	h.respond(c, http.StatusOK, h.editor.PatchGlobalStyles(patch), nil)
}

// PatchPage updates the page title and head metadata.
// PATCH /api/v1/editor/page
func (h *EditorHandler) PatchPage(c *gin.Context) {
	var patch models.PageMetaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page patch"})
		return
	}
	h.respond(c, http.StatusOK, h.editor.PatchPageMeta(patch), nil)
}

// GET /api/v1/editor/templates
func (h *EditorHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.editor.Templates()})
}

// POST /api/v1/editor/templates/:templateId
func (h *EditorHandler) LoadTemplate(c *gin.Context) {
	state, err := h.editor.LoadTemplate(c.Param("templateId"))
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		logger.Error(err, "Failed to load template", map[string]interface{}{"template_id": c.Param("templateId")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
		return
	}
	h.respond(c, http.StatusOK, state, nil)
}

// POST /api/v1/editor/undo
func (h *EditorHandler) Undo(c *gin.Context) {
	state, changed := h.editor.Undo()
	h.respond(c, http.StatusOK, state, gin.H{"changed": changed})
}

// POST /api/v1/editor/redo
func (h *EditorHandler) Redo(c *gin.Context) {
	state, changed := h.editor.Redo()
	h.respond(c, http.StatusOK, state, gin.H{"changed": changed})
}

// ApplyEdit receives in-place edits from the live preview.
// POST /api/v1/editor/edits
func (h *EditorHandler) ApplyEdit(c *gin.Context) {
	var event models.EditEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid edit"})
		return
	}

	state, err := h.editor.ApplyEdit(event)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, http.StatusOK, state, nil)
}

// Import replaces the document with the JSON body.
// POST /api/v1/editor/import?regenerateIds=true
func (h *EditorHandler) Import(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	regenerate, _ := strconv.ParseBool(c.DefaultQuery("regenerateIds", "false"))

	state, err := h.editor.Import(data, export.ImportOptions{RegenerateIDs: regenerate})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, http.StatusOK, state, nil)
}

// GET /api/v1/editor/export/json
func (h *EditorHandler) ExportJSON(c *gin.Context) {
	data, err := h.editor.ExportJSON()
	if err != nil {
		logger.Error(err, "Failed to export document", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export document"})
		return
	}
	if download, _ := strconv.ParseBool(c.Query("download")); download {
		c.Header("Content-Disposition", `attachment; filename="page.json"`)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ExportHTML returns the standalone page. With ?download=true it is sent as
// an attachment named after the page title.
// GET /api/v1/editor/export/html
func (h *EditorHandler) ExportHTML(c *gin.Context) {
	filename, page, err := h.editor.ExportHTML()
	if err != nil {
		logger.Error(err, "Failed to export page", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export page"})
		return
	}
	if download, _ := strconv.ParseBool(c.Query("download")); download {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Preview renders the live editor page.
// GET /api/v1/editor/preview?breakpoint=mobile
func (h *EditorHandler) Preview(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.editor.Preview(c.Query("breakpoint"))))
}

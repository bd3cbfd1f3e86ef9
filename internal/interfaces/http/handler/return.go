package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appreturns "github.com/shoplite/backend/internal/application/returns"
	"github.com/shoplite/backend/internal/interfaces/http/dto"
)

// ReturnHandler handles return endpoints
type ReturnHandler struct {
	BaseHandler
	service *appreturns.Service
}

// NewReturnHandler creates a new ReturnHandler
func NewReturnHandler(service *appreturns.Service) *ReturnHandler {
	return &ReturnHandler{service: service}
}

// Create handles POST /api/v1/returns
func (h *ReturnHandler) Create(c *gin.Context) {
	var req appreturns.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// GetByID handles GET /api/v1/returns/:id
func (h *ReturnHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid return ID")
		return
	}
	id, _ := uuid.Parse(uri.ID)

	response, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List handles GET /api/v1/returns
func (h *ReturnHandler) List(c *gin.Context) {
	var filter appreturns.ReturnListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Summary handles GET /api/v1/returns/summary
func (h *ReturnHandler) Summary(c *gin.Context) {
	var filter appreturns.SummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	response, err := h.service.Summary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Returnable handles GET /api/v1/invoices/:id/returnable
func (h *ReturnHandler) Returnable(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	invoiceID, _ := uuid.Parse(uri.ID)

	lines, err := h.service.Returnable(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

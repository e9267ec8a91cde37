package handlers

import (
	"github.com/gin-gonic/gin"

	"colibri/internal/domain/audit"
	"colibri/internal/infrastructure/http/v1/dto"
)

// AuditHandler serves the mutation audit trail.
type AuditHandler struct {
	*BaseHandler
	reader audit.Reader
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, reader audit.Reader) *AuditHandler {
	return &AuditHandler{BaseHandler: base, reader: reader}
}

// List handles GET /auditoria/:tipo/:clave. Admin only.
func (h *AuditHandler) List(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limite", 50)

	rows, err := h.reader.ListByEntity(c.Request.Context(), c.Param("tipo"), c.Param("clave"), limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromAuditRows(rows)))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: s}
}

// GetSummary godoc
//
//	@Summary	Dashboard summary
//	@Description	Aggregated KPIs: active project count, global progress average, per-project progress, top-5 by performance and critical indicators.
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	service.Summary
//	@Router		/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	out, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type IndicatorHandler struct {
	svc service.IndicatorService
}

func NewIndicatorHandler(s service.IndicatorService) *IndicatorHandler {
	return &IndicatorHandler{svc: s}
}

type ListIndicatorsReq struct {
	pageParams
	ProjectID    string `form:"projectId" binding:"omitempty,uuid"`
	CriticalOnly bool   `form:"criticalOnly"`
}

// ListIndicators godoc
//
//	@Summary	List indicators
//	@Tags		indicators
//	@Produce	json
//	@Param		page			query		integer	false	"Page number, default 1"
//	@Param		limit			query		integer	false	"Page size, default 10"
//	@Param		sort			query		string	false	"Sort field, default createdAt"
//	@Param		order			query		string	false	"ASC or DESC, default DESC"
//	@Param		q				query		string	false	"Case-insensitive name filter"
//	@Param		projectId		query		string	false	"Restrict to one project"	Format(uuid)
//	@Param		criticalOnly	query		boolean	false	"Only indicators below their threshold"
//	@Success	200				{object}	listing.Result[model.Indicator]
//	@Router		/indicators [get]
func (h *IndicatorHandler) ListIndicators(c *gin.Context) {
	var req ListIndicatorsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	f := repo.IndicatorFilter{
		Params:       req.listing(),
		CriticalOnly: req.CriticalOnly,
	}
	if req.ProjectID != "" {
		f.ProjectID = uuid.MustParse(req.ProjectID)
	}

	out, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

type CreateIndicatorReq struct {
	ProjectID    string   `json:"projectId" binding:"required,uuid"`
	Name         string   `json:"name" binding:"required,max=200"`
	CurrentValue *float64 `json:"currentValue"`
	Threshold    *float64 `json:"threshold"`
	Unit         *string  `json:"unit" binding:"omitempty,max=50"`
}

// CreateIndicator godoc
//
//	@Summary	Create indicator
//	@Tags		indicators
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.CreateIndicatorReq	true	"CreateIndicator payload"
//	@Success	201		{object}	model.Indicator
//	@Router		/indicators [post]
func (h *IndicatorHandler) CreateIndicator(c *gin.Context) {
	var req CreateIndicatorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	indicator, err := h.svc.Create(c.Request.Context(), service.CreateIndicatorInput{
		ProjectID:    uuid.MustParse(req.ProjectID),
		Name:         req.Name,
		CurrentValue: req.CurrentValue,
		Threshold:    req.Threshold,
		Unit:         req.Unit,
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, indicator)
}

// GetIndicator godoc
//
//	@Summary	Get indicator
//	@Tags		indicators
//	@Produce	json
//	@Param		id	path		string	true	"Indicator ID"	Format(uuid)
//	@Success	200	{object}	model.Indicator
//	@Router		/indicators/{id} [get]
func (h *IndicatorHandler) GetIndicator(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	indicator, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, indicator)
}

type UpdateIndicatorReq struct {
	ProjectID    *string  `json:"projectId" binding:"omitempty,uuid"`
	Name         *string  `json:"name" binding:"omitempty,max=200"`
	CurrentValue *float64 `json:"currentValue"`
	Threshold    *float64 `json:"threshold"`
	Unit         *string  `json:"unit" binding:"omitempty,max=50"`
}

// UpdateIndicator godoc
//
//	@Summary	Update indicator
//	@Description	Partial update; a differing projectId re-parents the indicator.
//	@Tags		indicators
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Indicator ID"	Format(uuid)
//	@Param		payload	body		handler.UpdateIndicatorReq	true	"UpdateIndicator payload"
//	@Success	200		{object}	model.Indicator
//	@Router		/indicators/{id} [patch]
func (h *IndicatorHandler) UpdateIndicator(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	var req UpdateIndicatorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	projectID, err := uuidPtr(req.ProjectID)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	indicator, err := h.svc.Update(c.Request.Context(), id, service.UpdateIndicatorInput{
		ProjectID:    projectID,
		Name:         req.Name,
		CurrentValue: req.CurrentValue,
		Threshold:    req.Threshold,
		Unit:         req.Unit,
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, indicator)
}

// DeleteIndicator godoc
//
//	@Summary	Delete indicator
//	@Tags		indicators
//	@Param		id	path	string	true	"Indicator ID"	Format(uuid)
//	@Success	204
//	@Router		/indicators/{id} [delete]
func (h *IndicatorHandler) DeleteIndicator(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

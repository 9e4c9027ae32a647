package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{svc: s}
}

type ListReportsReq struct {
	pageParams
	ProjectID string  `form:"projectId" binding:"omitempty,uuid"`
	From      *string `form:"from"`
	To        *string `form:"to"`
}

// ListReports godoc
//
//	@Summary	List reports
//	@Tags		reports
//	@Produce	json
//	@Param		page		query		integer	false	"Page number, default 1"
//	@Param		limit		query		integer	false	"Page size, default 10"
//	@Param		sort		query		string	false	"Sort field, default date"
//	@Param		order		query		string	false	"ASC or DESC, default DESC"
//	@Param		projectId	query		string	false	"Restrict to one project"	Format(uuid)
//	@Param		from		query		string	false	"Inclusive lower date bound"
//	@Param		to			query		string	false	"Inclusive upper date bound"
//	@Success	200			{object}	listing.Result[model.Report]
//	@Router		/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	var req ListReportsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	from, err := timePtr("from", req.From)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	to, err := timePtr("to", req.To)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	f := repo.ReportFilter{
		Params: req.listing(),
		From:   from,
		To:     to,
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

type CreateReportReq struct {
	ProjectID   string  `json:"projectId" binding:"required,uuid"`
	Date        *string `json:"date"`
	Content     *string `json:"content"`
	GeneratedBy *string `json:"generatedBy" binding:"omitempty,max=150"`
	Notes       *string `json:"notes"`
}

// CreateReport godoc
//
//	@Summary	Create report
//	@Description	date defaults to the creation time when absent.
//	@Tags		reports
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.CreateReportReq	true	"CreateReport payload"
//	@Success	201		{object}	model.Report
//	@Router		/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req CreateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	date, err := timePtr("date", req.Date)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	report, err := h.svc.Create(c.Request.Context(), service.CreateReportInput{
		ProjectID:   uuid.MustParse(req.ProjectID),
		Date:        date,
		Content:     req.Content,
		GeneratedBy: req.GeneratedBy,
		Notes:       req.Notes,
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport godoc
//
//	@Summary	Get report
//	@Tags		reports
//	@Produce	json
//	@Param		id	path		string	true	"Report ID"	Format(uuid)
//	@Success	200	{object}	model.Report
//	@Router		/reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	report, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

type UpdateReportReq struct {
	ProjectID   *string `json:"projectId" binding:"omitempty,uuid"`
	Date        *string `json:"date"`
	Content     *string `json:"content"`
	GeneratedBy *string `json:"generatedBy" binding:"omitempty,max=150"`
	Notes       *string `json:"notes"`
}

// UpdateReport godoc
//
//	@Summary	Update report
//	@Description	Partial update; a differing projectId re-parents the report.
//	@Tags		reports
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Report ID"	Format(uuid)
//	@Param		payload	body		handler.UpdateReportReq	true	"UpdateReport payload"
//	@Success	200		{object}	model.Report
//	@Router		/reports/{id} [patch]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	var req UpdateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	projectID, err := uuidPtr(req.ProjectID)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	date, err := timePtr("date", req.Date)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	report, err := h.svc.Update(c.Request.Context(), id, service.UpdateReportInput{
		ProjectID:   projectID,
		Date:        date,
		Content:     req.Content,
		GeneratedBy: req.GeneratedBy,
		Notes:       req.Notes,
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport godoc
//
//	@Summary	Delete report
//	@Tags		reports
//	@Param		id	path	string	true	"Report ID"	Format(uuid)
//	@Success	204
//	@Router		/reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
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

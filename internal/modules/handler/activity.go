package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type ActivityHandler struct {
	svc service.ActivityService
}

func NewActivityHandler(s service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: s}
}

type ListActivitiesReq struct {
	pageParams
	Status    string `form:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	ProjectID string `form:"projectId" binding:"omitempty,uuid"`
}

// ListActivities godoc
//
//	@Summary	List activities
//	@Tags		activities
//	@Produce	json
//	@Param		page		query		integer	false	"Page number, default 1"
//	@Param		limit		query		integer	false	"Page size, default 10"
//	@Param		sort		query		string	false	"Sort field, default createdAt"
//	@Param		order		query		string	false	"ASC or DESC, default DESC"
//	@Param		q			query		string	false	"Case-insensitive name filter"
//	@Param		status		query		string	false	"PENDING, IN_PROGRESS or COMPLETED"
//	@Param		projectId	query		string	false	"Restrict to one project"	Format(uuid)
//	@Success	200			{object}	listing.Result[model.Activity]
//	@Router		/activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var req ListActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	f := repo.ActivityFilter{
		Params: req.listing(),
		Status: model.ActivityStatus(req.Status),
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

type CreateActivityReq struct {
	ProjectID string   `json:"projectId" binding:"required,uuid"`
	Name      string   `json:"name" binding:"required,max=200"`
	Status    *string  `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Progress  *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
	StartDate *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// CreateActivity godoc
//
//	@Summary	Create activity
//	@Description	The referenced project must exist; otherwise nothing is persisted.
//	@Tags		activities
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.CreateActivityReq	true	"CreateActivity payload"
//	@Success	201		{object}	model.Activity
//	@Router		/activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req CreateActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	in := service.CreateActivityInput{
		ProjectID: uuid.MustParse(req.ProjectID),
		Name:      req.Name,
		Progress:  req.Progress,
		StartDate: datePtr(req.StartDate),
		EndDate:   datePtr(req.EndDate),
	}
	if req.Status != nil {
		in.Status = model.ActivityStatus(*req.Status)
	}

	activity, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// GetActivity godoc
//
//	@Summary	Get activity
//	@Tags		activities
//	@Produce	json
//	@Param		id	path		string	true	"Activity ID"	Format(uuid)
//	@Success	200	{object}	model.Activity
//	@Router		/activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	activity, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

type UpdateActivityReq struct {
	ProjectID *string  `json:"projectId" binding:"omitempty,uuid"`
	Name      *string  `json:"name" binding:"omitempty,max=200"`
	Status    *string  `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Progress  *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
	StartDate *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateActivity godoc
//
//	@Summary	Update activity
//	@Description	Partial update; a differing projectId re-parents the activity.
//	@Tags		activities
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Activity ID"	Format(uuid)
//	@Param		payload	body		handler.UpdateActivityReq	true	"UpdateActivity payload"
//	@Success	200		{object}	model.Activity
//	@Router		/activities/{id} [patch]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	var req UpdateActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	projectID, err := uuidPtr(req.ProjectID)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	in := service.UpdateActivityInput{
		ProjectID: projectID,
		Name:      req.Name,
		Progress:  req.Progress,
		StartDate: datePtr(req.StartDate),
		EndDate:   datePtr(req.EndDate),
	}
	if req.Status != nil {
		st := model.ActivityStatus(*req.Status)
		in.Status = &st
	}

	activity, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity godoc
//
//	@Summary	Delete activity
//	@Tags		activities
//	@Param		id	path	string	true	"Activity ID"	Format(uuid)
//	@Success	204
//	@Router		/activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
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

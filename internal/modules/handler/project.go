package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackboard/trackboard/internal/modules/model"
	"github.com/trackboard/trackboard/internal/modules/repo"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type ListProjectsReq struct {
	pageParams
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		projects
//	@Produce	json
//	@Param		page	query		integer	false	"Page number, default 1"
//	@Param		limit	query		integer	false	"Page size, default 10"
//	@Param		sort	query		string	false	"Sort field, default createdAt"
//	@Param		order	query		string	false	"ASC or DESC, default DESC"
//	@Param		q		query		string	false	"Case-insensitive name filter"
//	@Param		status	query		string	false	"ACTIVE or INACTIVE"
//	@Success	200		{object}	listing.Result[model.Project]
//	@Router		/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var req ListProjectsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	out, err := h.svc.List(c.Request.Context(), repo.ProjectFilter{
		Params: req.listing(),
		Status: model.ProjectStatus(req.Status),
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

type CreateProjectReq struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	StartDate   *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Progress    *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
	Performance *float64 `json:"performance"`
}

// CreateProject godoc
//
//	@Summary	Create project
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		handler.CreateProjectReq	true	"CreateProject payload"
//	@Success	201		{object}	model.Project
//	@Router		/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	in := service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   datePtr(req.StartDate),
		EndDate:     datePtr(req.EndDate),
		Progress:    req.Progress,
		Performance: req.Performance,
	}
	if req.Status != nil {
		in.Status = model.ProjectStatus(*req.Status)
	}

	project, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		projects
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"	Format(uuid)
//	@Success	200	{object}	model.Project
//	@Router		/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

type UpdateProjectReq struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	StartDate   *string  `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Progress    *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
	Performance *float64 `json:"performance"`
}

// UpdateProject godoc
//
//	@Summary	Update project
//	@Description	Partial update; absent fields are left unchanged.
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Project ID"	Format(uuid)
//	@Param		payload	body		handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Success	200		{object}	model.Project
//	@Router		/projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	var req UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteBindingError(c, err)
		return
	}

	in := service.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   datePtr(req.StartDate),
		EndDate:     datePtr(req.EndDate),
		Progress:    req.Progress,
		Performance: req.Performance,
	}
	if req.Status != nil {
		st := model.ProjectStatus(*req.Status)
		in.Status = &st
	}

	project, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
//
//	@Summary	Delete project
//	@Description	Deletes the project and all of its activities, indicators and reports.
//	@Tags		projects
//	@Param		id	path	string	true	"Project ID"	Format(uuid)
//	@Success	204
//	@Router		/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
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

package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

type ProjectHandler struct {
	ProjectService *service.ProjectService
}

// HandleCreate adds a project to a workspace.
//
//	@Summary		Create project
//	@Description	ADMIN only. Without a key a random one is generated.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskifysdk.CreateProjectRequest	true	"Project"
//	@Success		201		{object}	taskifysdk.ProjectResponse
//	@Failure		400		{object}	taskifysdk.ValidationErrorResponse
//	@Failure		403		{object}	taskifysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/project [post].
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.CreateProjectRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.ProjectService.CreateProject(r.Context(), caller(r), req.WorkspaceID, req.Name, req.Key, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProject(p, 0))
}

// HandleList lists a workspace's projects.
//
//	@Summary	List projects
//	@Tags		Projects
//	@Produce	json
//	@Param		workspaceId	path		string	true	"Workspace ID"
//	@Success	200			{object}	taskifysdk.ListProjectsResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/project/workspace/{workspaceId} [get].
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.ListProjects(r.Context(), caller(r), r.PathValue("workspaceId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListProjectsResponse{Projects: mapAll(projects, toProject)})
}

// HandleGet returns one project.
//
//	@Summary	Get project
//	@Tags		Projects
//	@Produce	json
//	@Param		projectId	path		string	true	"Project ID"
//	@Success	200			{object}	taskifysdk.ProjectResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Failure	404			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/project/{projectId} [get].
func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProjectService.GetProject(r.Context(), caller(r), r.PathValue("projectId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p, 0))
}

// HandleUpdate renames or re-describes a project.
//
//	@Summary	Update project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		projectId	path		string							true	"Project ID"
//	@Param		request		body		taskifysdk.UpdateProjectRequest	true	"Fields to change"
//	@Success	200			{object}	taskifysdk.ProjectResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Failure	404			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/project/{projectId} [patch].
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.UpdateProjectRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.ProjectService.UpdateProject(r.Context(), caller(r), r.PathValue("projectId"), req.Name, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p, 0))
}

// HandleDelete removes a project with its sprints, issues and comments.
//
//	@Summary	Delete project
//	@Tags		Projects
//	@Param		projectId	path	string	true	"Project ID"
//	@Success	204
//	@Failure	403	{object}	taskifysdk.ErrorResponse
//	@Failure	404	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/project/{projectId} [delete].
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProjectService.DeleteProject(r.Context(), caller(r), r.PathValue("projectId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

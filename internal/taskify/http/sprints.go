package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

type SprintHandler struct {
	SprintService *service.SprintService
}

// HandleList lists a project's sprints.
//
//	@Summary	List sprints
//	@Tags		Sprints
//	@Produce	json
//	@Param		projectId	path		string	true	"Project ID"
//	@Success	200			{object}	taskifysdk.ListSprintsResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Failure	404			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/projects/{projectId}/sprints [get].
func (h *SprintHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sprints, err := h.SprintService.ListSprints(r.Context(), caller(r), r.PathValue("projectId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListSprintsResponse{Sprints: mapAll(sprints, toSprint)})
}

// HandleCreate adds a PENDING sprint.
//
//	@Summary	Create sprint
//	@Tags		Sprints
//	@Accept		json
//	@Produce	json
//	@Param		projectId	path		string							true	"Project ID"
//	@Param		request		body		taskifysdk.CreateSprintRequest	true	"Sprint"
//	@Success	201			{object}	taskifysdk.SprintResponse
//	@Failure	400			{object}	taskifysdk.ValidationErrorResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/projects/{projectId}/sprints [post].
func (h *SprintHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.CreateSprintRequest
	if !decode(w, r, &req) {
		return
	}

	sp, err := h.SprintService.CreateSprint(r.Context(), caller(r), r.PathValue("projectId"), req.Name, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSprint(sp, 0))
}

// HandleUpdate renames a sprint or moves it along PENDING, ACTIVE, COMPLETED.
//
//	@Summary		Update sprint
//	@Description	Completed sprints reject every update with invalid_state.
//	@Tags			Sprints
//	@Accept			json
//	@Produce		json
//	@Param			sprintId	path		string							true	"Sprint ID"
//	@Param			request		body		taskifysdk.UpdateSprintRequest	true	"Fields to change"
//	@Success		200			{object}	taskifysdk.SprintResponse
//	@Failure		400			{object}	taskifysdk.ErrorResponse	"Invalid transition"
//	@Failure		403			{object}	taskifysdk.ErrorResponse
//	@Failure		404			{object}	taskifysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/sprints/{sprintId} [patch].
func (h *SprintHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.UpdateSprintRequest
	if !decode(w, r, &req) {
		return
	}

	sp, err := h.SprintService.UpdateSprint(r.Context(), caller(r), r.PathValue("sprintId"),
		enumPtr[domain.SprintStatus](req.Status), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSprint(sp, 0))
}

// HandleDelete removes a sprint; its issues fall back to the backlog.
//
//	@Summary	Delete sprint
//	@Tags		Sprints
//	@Param		sprintId	path	string	true	"Sprint ID"
//	@Success	204
//	@Failure	403	{object}	taskifysdk.ErrorResponse
//	@Failure	404	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/sprints/{sprintId} [delete].
func (h *SprintHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.SprintService.DeleteSprint(r.Context(), caller(r), r.PathValue("sprintId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

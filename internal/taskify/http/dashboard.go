package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// HandleDashboard returns the caller's cross-workspace summary.
//
//	@Summary		Dashboard
//	@Description	Only workspaces with an accepted membership contribute data. Pending invites are listed separately.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	taskifysdk.DashboardResponse
//	@Failure		401	{object}	taskifysdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/dashboard [get].
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.DashboardService.Dashboard(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskifysdk.DashboardResponse{
		Workspaces:     mapAll(d.Workspaces, toWorkspaceView),
		PendingInvites: mapAll(d.PendingInvites, toPendingInvite),
		Projects:       mapAll(d.Projects, toProject),
		Sprints:        mapAll(d.Sprints, toSprint),
		Issues:         mapAll(d.Issues, toIssueSummary),
		Comments:       mapAll(d.Comments, toCommentView),
	})
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

type IssueHandler struct {
	IssueService *service.IssueService
}

func nullable(n taskifysdk.NullableString) service.Nullable[string] {
	return service.Nullable[string]{Set: n.Set, Value: n.Value}
}

// HandleList lists a project's issues ordered by list position.
//
//	@Summary	List issues
//	@Tags		Issues
//	@Produce	json
//	@Param		projectId	path		string	true	"Project ID"
//	@Param		sprint		query		string	false	"active, backlog or a sprint id"
//	@Param		assignee	query		string	false	"me or a user id"
//	@Param		status		query		string	false	"TODO, IN_PROGRESS or DONE"
//	@Success	200			{object}	taskifysdk.ListIssuesResponse
//	@Failure	400			{object}	taskifysdk.ErrorResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/projects/{projectId}/issues [get].
func (h *IssueHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	issues, err := h.IssueService.ListIssues(r.Context(), caller(r), r.PathValue("projectId"), service.IssueQuery{
		Sprint:   q.Get("sprint"),
		Assignee: q.Get("assignee"),
		Status:   q.Get("status"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListIssuesResponse{Issues: mapAll(issues, toIssue)})
}

// HandleCreate files a new issue and assigns its ticket number.
//
//	@Summary	Create issue
//	@Tags		Issues
//	@Accept		json
//	@Produce	json
//	@Param		projectId	query		string							true	"Project ID"
//	@Param		request		body		taskifysdk.CreateIssueRequest	true	"Issue"
//	@Success	201			{object}	taskifysdk.IssueResponse
//	@Failure	400			{object}	taskifysdk.ValidationErrorResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Failure	404			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/issues [post].
func (h *IssueHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		writeBadRequest(w, "projectId query parameter is required")
		return
	}

	var req taskifysdk.CreateIssueRequest
	if !decode(w, r, &req) {
		return
	}

	issue, err := h.IssueService.CreateIssue(r.Context(), caller(r), projectID, service.NewIssue{
		Title:       req.Title,
		Description: req.Description,
		Type:        enumOr(req.Type, domain.IssueTask),
		Priority:    enumOr(req.Priority, domain.PriorityMedium),
		SprintID:    req.SprintID,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toIssue(issue, 0))
}

// HandleAssigned lists open issues assigned to the caller across workspaces.
//
//	@Summary	My open issues
//	@Tags		Issues
//	@Produce	json
//	@Success	200	{object}	taskifysdk.ListIssuesResponse
//	@Failure	401	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/issues/new [get].
func (h *IssueHandler) HandleAssigned(w http.ResponseWriter, r *http.Request) {
	issues, err := h.IssueService.ListAssignedOpen(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListIssuesResponse{Issues: mapAll(issues, toIssueSummary)})
}

// HandleGet returns one issue.
//
//	@Summary	Get issue
//	@Tags		Issues
//	@Produce	json
//	@Param		issueId	path		string	true	"Issue ID"
//	@Success	200		{object}	taskifysdk.IssueResponse
//	@Failure	403		{object}	taskifysdk.ErrorResponse
//	@Failure	404		{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/issues/{issueId} [get].
func (h *IssueHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	issue, err := h.IssueService.GetIssue(r.Context(), caller(r), r.PathValue("issueId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toIssue(issue, 0))
}

// HandleUpdate applies a partial update. sprintId and assigneeId accept an
// explicit null to clear them.
//
//	@Summary	Update issue
//	@Tags		Issues
//	@Accept		json
//	@Produce	json
//	@Param		issueId	path		string							true	"Issue ID"
//	@Param		request	body		taskifysdk.UpdateIssueRequest	true	"Fields to change"
//	@Success	200		{object}	taskifysdk.IssueResponse
//	@Failure	400		{object}	taskifysdk.ErrorResponse
//	@Failure	403		{object}	taskifysdk.ErrorResponse
//	@Failure	404		{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/issues/{issueId} [patch].
func (h *IssueHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.UpdateIssueRequest
	if !decode(w, r, &req) {
		return
	}

	issue, err := h.IssueService.UpdateIssue(r.Context(), caller(r), r.PathValue("issueId"), service.IssuePatch{
		Title:        req.Title,
		Description:  req.Description,
		Type:         enumPtr[domain.IssueType](req.Type),
		Priority:     enumPtr[domain.IssuePriority](req.Priority),
		Status:       enumPtr[domain.IssueStatus](req.Status),
		ListPosition: req.ListPosition,
		SprintID:     nullable(req.SprintID),
		AssigneeID:   nullable(req.AssigneeID),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toIssue(issue, 0))
}

// HandleDelete removes an issue and its comments.
//
//	@Summary	Delete issue
//	@Tags		Issues
//	@Param		issueId	path	string	true	"Issue ID"
//	@Success	204
//	@Failure	403	{object}	taskifysdk.ErrorResponse
//	@Failure	404	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/issues/{issueId} [delete].
func (h *IssueHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.IssueService.DeleteIssue(r.Context(), caller(r), r.PathValue("issueId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

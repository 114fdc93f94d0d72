package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

type CommentHandler struct {
	CommentService *service.CommentService
}

// HandleList lists an issue's comments, oldest first.
//
//	@Summary	List comments
//	@Tags		Comments
//	@Produce	json
//	@Param		issueId	path		string	true	"Issue ID"
//	@Success	200		{object}	taskifysdk.ListCommentsResponse
//	@Failure	403		{object}	taskifysdk.ErrorResponse
//	@Failure	404		{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/comments/issue/{issueId} [get].
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.ListComments(r.Context(), caller(r), r.PathValue("issueId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListCommentsResponse{Comments: mapAll(comments, toCommentView)})
}

// HandleCreate comments on an issue.
//
//	@Summary	Create comment
//	@Tags		Comments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		taskifysdk.CreateCommentRequest	true	"Comment"
//	@Success	201		{object}	taskifysdk.CommentResponse
//	@Failure	400		{object}	taskifysdk.ValidationErrorResponse
//	@Failure	403		{object}	taskifysdk.ErrorResponse
//	@Failure	404		{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/comments [post].
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.CreateCommentRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.CommentService.CreateComment(r.Context(), caller(r), req.IssueID, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toComment(c))
}

// HandleRecent lists the newest comments across the caller's workspaces.
//
//	@Summary	Recent comments
//	@Tags		Comments
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum number of comments"	default(20)
//	@Success	200		{object}	taskifysdk.ListCommentsResponse
//	@Failure	400		{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/comments/new [get].
func (h *CommentHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultRecentComments
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	comments, err := h.CommentService.ListRecentComments(r.Context(), caller(r), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListCommentsResponse{Comments: mapAll(comments, toCommentView)})
}

// HandleUpdate edits a comment. Only the author may.
//
//	@Summary	Update comment
//	@Tags		Comments
//	@Accept		json
//	@Produce	json
//	@Param		commentId	path		string							true	"Comment ID"
//	@Param		request		body		taskifysdk.UpdateCommentRequest	true	"New content"
//	@Success	200			{object}	taskifysdk.CommentResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Failure	404			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/comments/{commentId} [patch].
func (h *CommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.UpdateCommentRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.CommentService.UpdateComment(r.Context(), caller(r), r.PathValue("commentId"), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toComment(c))
}

// HandleDelete removes a comment.
//
//	@Summary	Delete comment
//	@Tags		Comments
//	@Param		commentId	path	string	true	"Comment ID"
//	@Success	204
//	@Failure	403	{object}	taskifysdk.ErrorResponse
//	@Failure	404	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/comments/{commentId} [delete].
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CommentService.DeleteComment(r.Context(), caller(r), r.PathValue("commentId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

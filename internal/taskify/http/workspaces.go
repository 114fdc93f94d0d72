package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

type WorkspaceHandler struct {
	WorkspaceService  *service.WorkspaceService
	MembershipService *service.MembershipService
}

// HandleCreate creates a workspace owned by the caller.
//
//	@Summary	Create workspace
//	@Tags		Workspaces
//	@Accept		json
//	@Produce	json
//	@Param		request	body		taskifysdk.CreateWorkspaceRequest	true	"Workspace"
//	@Success	201		{object}	taskifysdk.WorkspaceResponse
//	@Failure	400		{object}	taskifysdk.ValidationErrorResponse
//	@Failure	409		{object}	taskifysdk.ErrorResponse	"URL already taken"
//	@Security	BearerAuth
//	@Router		/workspaces [post].
func (h *WorkspaceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.CreateWorkspaceRequest
	if !decode(w, r, &req) {
		return
	}

	ws, err := h.WorkspaceService.CreateWorkspace(r.Context(), caller(r), req.Name, req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := toWorkspace(ws)
	out.Role = string(domain.RoleAdmin)
	out.Status = string(domain.InviteAccepted)
	httpx.WriteJSON(w, http.StatusCreated, out)
}

// HandleList lists the caller's workspaces, pending invites included.
//
//	@Summary	List workspaces
//	@Tags		Workspaces
//	@Produce	json
//	@Success	200	{object}	taskifysdk.ListWorkspacesResponse
//	@Failure	401	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/workspaces [get].
func (h *WorkspaceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.WorkspaceService.ListWorkspaces(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListWorkspacesResponse{
		Workspaces: mapAll(views, toWorkspaceView),
	})
}

// HandleDelete deletes a workspace and everything in it.
//
//	@Summary	Delete workspace
//	@Tags		Workspaces
//	@Param		workspaceId	path	string	true	"Workspace ID"
//	@Success	204
//	@Failure	403	{object}	taskifysdk.ErrorResponse	"Only the owner or an admin may delete"
//	@Failure	404	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/workspaces/{workspaceId} [delete].
func (h *WorkspaceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.WorkspaceService.DeleteWorkspace(r.Context(), caller(r), r.PathValue("workspaceId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListMembers lists members and pending invites.
//
//	@Summary	List members
//	@Tags		Members
//	@Produce	json
//	@Param		workspaceId	path		string	true	"Workspace ID"
//	@Success	200			{object}	taskifysdk.ListMembersResponse
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/workspaces/{workspaceId}/members [get].
func (h *WorkspaceHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.MembershipService.ListMembers(r.Context(), caller(r), r.PathValue("workspaceId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.ListMembersResponse{
		Members: mapAll(members, toMember),
	})
}

// HandleInvite invites a user by email or id.
//
//	@Summary		Invite member
//	@Description	ADMIN only. The membership starts PENDING until the invitee accepts.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string							true	"Workspace ID"
//	@Param			request		body		taskifysdk.InviteMemberRequest	true	"Invitee and role"
//	@Success		201			{object}	taskifysdk.MembershipResponse
//	@Failure		400			{object}	taskifysdk.ValidationErrorResponse
//	@Failure		403			{object}	taskifysdk.ErrorResponse	"Not an admin, or user already a member"
//	@Failure		404			{object}	taskifysdk.ErrorResponse	"Invitee not found"
//	@Security		BearerAuth
//	@Router			/workspaces/{workspaceId}/members/invite [post].
func (h *WorkspaceHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.InviteMemberRequest
	if !decode(w, r, &req) {
		return
	}
	role, _ := domain.ParseRole(req.Role)

	m, err := h.MembershipService.Invite(r.Context(), caller(r), r.PathValue("workspaceId"),
		service.InviteTarget{Email: req.Email, UserID: req.UserID}, role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMembership(m))
}

// HandleAccept accepts the caller's pending invite.
//
//	@Summary	Accept invite
//	@Tags		Members
//	@Produce	json
//	@Param		workspaceId	path		string	true	"Workspace ID"
//	@Success	200			{object}	taskifysdk.MembershipResponse
//	@Failure	404			{object}	taskifysdk.ErrorResponse	"No pending invite"
//	@Security	BearerAuth
//	@Router		/workspaces/{workspaceId}/members/accept [post].
func (h *WorkspaceHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	m, err := h.MembershipService.AcceptInvite(r.Context(), caller(r), r.PathValue("workspaceId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembership(m))
}

// HandleDecline declines the caller's pending invite.
//
//	@Summary	Decline invite
//	@Tags		Members
//	@Param		workspaceId	path	string	true	"Workspace ID"
//	@Success	204
//	@Failure	404	{object}	taskifysdk.ErrorResponse	"No pending invite"
//	@Security	BearerAuth
//	@Router		/workspaces/{workspaceId}/members/decline [post].
func (h *WorkspaceHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	if err := h.MembershipService.DeclineInvite(r.Context(), caller(r), r.PathValue("workspaceId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateRole changes a member's role.
//
//	@Summary	Change member role
//	@Tags		Members
//	@Accept		json
//	@Produce	json
//	@Param		workspaceId	path		string						true	"Workspace ID"
//	@Param		userId		path		string						true	"Member user ID"
//	@Param		request		body		taskifysdk.UpdateRoleRequest	true	"New role"
//	@Success	200			{object}	taskifysdk.MembershipResponse
//	@Failure	400			{object}	taskifysdk.ErrorResponse	"Member has not accepted yet"
//	@Failure	403			{object}	taskifysdk.ErrorResponse
//	@Failure	404			{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/workspaces/{workspaceId}/members/{userId}/role [patch].
func (h *WorkspaceHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.UpdateRoleRequest
	if !decode(w, r, &req) {
		return
	}
	role, _ := domain.ParseRole(req.Role)

	m, err := h.MembershipService.UpdateRole(r.Context(), caller(r), r.PathValue("workspaceId"), r.PathValue("userId"), role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembership(m))
}

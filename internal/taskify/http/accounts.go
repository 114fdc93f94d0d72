package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
)

type AccountHandler struct {
	AccountService *service.AccountService
}

func toAuth(s service.Session) taskifysdk.AuthResponse {
	return taskifysdk.AuthResponse{
		User:        toUser(s.User),
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(s.ExpiresAt).Seconds()),
	}
}

// HandleRegister creates an account.
//
//	@Summary		Register
//	@Description	Creates an account and returns a bearer token for it.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskifysdk.RegisterRequest				true	"Account details"
//	@Success		201		{object}	taskifysdk.AuthResponse
//	@Failure		400		{object}	taskifysdk.ValidationErrorResponse
//	@Failure		409		{object}	taskifysdk.ErrorResponse	"Email already registered"
//	@Failure		429		{object}	taskifysdk.ErrorResponse
//	@Router			/auth/register [post].
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	s, err := h.AccountService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAuth(s))
}

// HandleLogin exchanges credentials for a bearer token.
//
//	@Summary		Login
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskifysdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	taskifysdk.AuthResponse
//	@Failure		401		{object}	taskifysdk.ErrorResponse	"Invalid email or password"
//	@Failure		429		{object}	taskifysdk.ErrorResponse
//	@Router			/auth/login [post].
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	s, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAuth(s))
}

// HandleMe returns the caller's account.
//
//	@Summary	Current user
//	@Tags		Accounts
//	@Produce	json
//	@Success	200	{object}	taskifysdk.UserResponse
//	@Failure	401	{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/me [get].
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.AccountService.Me(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdateProfile changes name and/or avatar.
//
//	@Summary	Update profile
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		taskifysdk.UpdateProfileRequest	true	"Fields to change"
//	@Success	200		{object}	taskifysdk.UserResponse
//	@Failure	400		{object}	taskifysdk.ValidationErrorResponse
//	@Failure	401		{object}	taskifysdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/profile [patch].
func (h *AccountHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	u, err := h.AccountService.UpdateProfile(r.Context(), caller(r), req.Name, req.AvatarURL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleForgotPassword always answers 202 so it cannot be used to probe for
// registered emails.
//
//	@Summary	Request a password reset
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		taskifysdk.ForgotPasswordRequest	true	"Email"
//	@Success	202		{object}	taskifysdk.MessageResponse
//	@Failure	400		{object}	taskifysdk.ValidationErrorResponse
//	@Router		/auth/forgot-password [post].
func (h *AccountHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.ForgotPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.AccountService.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, taskifysdk.MessageResponse{
		Message: "if the email is registered a reset link has been sent",
	})
}

// HandleResetPassword consumes a reset token.
//
//	@Summary	Reset password
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		taskifysdk.ResetPasswordRequest	true	"Token and new password"
//	@Success	200		{object}	taskifysdk.MessageResponse
//	@Failure	400		{object}	taskifysdk.ErrorResponse	"Invalid or expired token"
//	@Router		/auth/reset-password [post].
func (h *AccountHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req taskifysdk.ResetPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.AccountService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, taskifysdk.MessageResponse{Message: "password updated"})
}

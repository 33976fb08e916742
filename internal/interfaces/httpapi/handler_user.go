package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

const accessTokenCookie = "access_token"

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	var req registerUserRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.userService.Register(ctx, usecase.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Nickname: req.Nickname,
		Picture:  req.Picture,
	})
	if err != nil {
		h.fail(ctx, w, "register user failed", err, "nickname", req.Nickname)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, userIDResponse{UserID: created.ID})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	token, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.fail(ctx, w, "login failed", err)
		return
	}

	cookie := &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if h.session.TTL > 0 {
		cookie.MaxAge = int(h.session.TTL / time.Second)
	}
	http.SetCookie(w, cookie)

	writeSuccess(ctx, w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(ctx, w, http.StatusOK, messageResponse{Message: "Logged out"})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.userService.GetProfile(ctx, principal.UserID)
	if err != nil {
		h.fail(ctx, w, "get profile failed", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.userService.GetPublicProfile(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "get user failed", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, publicUserResponse{User: publicUserDTO{
		Nickname: item.Nickname,
		Picture:  item.Picture,
		Score:    item.Score,
	}})
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateUser")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateUserRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err = h.userService.Update(ctx, usecase.UpdateUserInput{
		UserID: principal.UserID,
		Changes: user.Changes{
			Email:    req.Data.Email,
			Name:     req.Data.Name,
			Nickname: req.Data.Nickname,
			Picture:  req.Data.Picture.change(),
		},
		Password: req.Password,
	})
	if err != nil {
		h.fail(ctx, w, "update user failed", err, "user_id", principal.UserID)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChangePassword")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req changePasswordRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err = h.userService.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:          principal.UserID,
		CurrentPassword: req.Password,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.fail(ctx, w, "change password failed", err, "user_id", principal.UserID)
		return
	}

	writeNoContent(w)
}

func profileToDTO(p usecase.Profile) profileResponse {
	return profileResponse{
		Email:             p.User.Email,
		Name:              p.User.Name,
		Nickname:          p.User.Nickname,
		Picture:           p.User.Picture,
		Score:             p.User.Score,
		Balance:           p.User.Balance,
		HighestGuess:      p.Stats.HighestGuess,
		TotalEarnings:     p.Stats.TotalEarnings,
		TotalLosses:       p.Stats.TotalLosses,
		LastTeamGuessedAt: p.Stats.LastTeamGuessed,
		TotalGuesses:      p.Stats.TotalGuesses,
	}
}

func ownerToDTO(u user.User) ownerDTO {
	return ownerDTO{ID: u.ID, Nickname: u.Nickname, Picture: u.Picture}
}

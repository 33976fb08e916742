package httpapi

import (
	"net/http"

	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createTeamRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		OwnerUserID: principal.UserID,
		Name:        req.Name,
		Picture:     req.Picture,
		Description: req.Description,
		MaxPlayers:  req.MaxPlayers,
	})
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamIDResponse{TeamID: created.ID})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.teamService.GetDetails(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamResponse{
		ID:          details.Team.ID,
		Name:        details.Team.Name,
		Picture:     details.Team.Picture,
		Description: details.Team.Description,
		MaxPlayers:  details.Team.MaxPlayers,
		Owner:       ownerToDTO(details.Owner),
	})
}

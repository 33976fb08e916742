package httpapi

import (
	"net/http"

	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	championshipID, err := pathID(r, "championshipId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMatchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		UserID:           principal.UserID,
		ChampionshipID:   championshipID,
		HomeTeamID:       req.HomeTeamID,
		AwayTeamID:       req.AwayTeamID,
		PlannedStartTime: req.PlannedStartTime,
	})
	if err != nil {
		h.fail(ctx, w, "create match failed", err, "championship_id", championshipID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchIDResponse{MatchID: created.ID})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	championshipID, err := pathID(r, "championshipId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListByChampionship(ctx, championshipID)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, "championship_id", championshipID)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchDTO{
			ID:               item.Match.ID,
			HomeTeam:         participantToDTO(item.Home),
			AwayTeam:         participantToDTO(item.Away),
			PlannedStartTime: item.Match.PlannedStartTime,
			CreatedAt:        item.Match.CreatedAt,
			Status:           string(item.Match.Status),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) UpdateMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchScore")
	defer span.End()

	userID, championshipID, matchID, ok := h.matchTarget(w, r)
	if !ok {
		return
	}

	var req updateScoreRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.matchService.UpdateScore(ctx, usecase.UpdateScoreInput{
		UserID:         userID,
		ChampionshipID: championshipID,
		MatchID:        matchID,
		TeamID:         req.TeamID,
		Score:          *req.Score,
	})
	if err != nil {
		h.fail(ctx, w, "update match score failed", err, "match_id", matchID, "team_id", req.TeamID)
		return
	}

	writeNoContent(w)
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	userID, championshipID, matchID, ok := h.matchTarget(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.matchService.UpdateStatus(ctx, usecase.UpdateMatchStatusInput{
		UserID:         userID,
		ChampionshipID: championshipID,
		MatchID:        matchID,
		Status:         match.Status(req.Status),
	})
	if err != nil {
		h.fail(ctx, w, "update match status failed", err, "match_id", matchID, "status", req.Status)
		return
	}

	writeNoContent(w)
}

// matchTarget resolves the caller and the championship/match path ids.
func (h *Handler) matchTarget(w http.ResponseWriter, r *http.Request) (userID, championshipID, matchID int64, ok bool) {
	ctx := r.Context()
	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return 0, 0, 0, false
	}
	if championshipID, err = pathID(r, "championshipId"); err != nil {
		writeError(ctx, w, err)
		return 0, 0, 0, false
	}
	if matchID, err = pathID(r, "matchId"); err != nil {
		writeError(ctx, w, err)
		return 0, 0, 0, false
	}
	return principal.UserID, championshipID, matchID, true
}

func participantToDTO(p match.Participant) participantDTO {
	return participantDTO{ID: p.TeamID, Name: p.Name, Picture: p.Picture, Score: p.Score}
}

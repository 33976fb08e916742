package httpapi

import (
	"net/http"

	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

func (h *Handler) PlaceGuess(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlaceGuess")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req placeGuessRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	placed, err := h.guessService.Place(ctx, usecase.PlaceGuessInput{
		UserID:  principal.UserID,
		MatchID: req.MatchID,
		TeamID:  req.TeamID,
		Cost:    req.GuessCost,
	})
	if err != nil {
		h.fail(ctx, w, "place guess failed", err,
			"user_id", principal.UserID,
			"match_id", req.MatchID,
		)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, guessIDResponse{GuessID: placed.ID})
}

func (h *Handler) ListMyGuesses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyGuesses")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.guessService.ListByUser(ctx, principal.UserID)
	if err != nil {
		h.fail(ctx, w, "list guesses failed", err, "user_id", principal.UserID)
		return
	}

	out := make([]guessDTO, 0, len(items))
	for _, item := range items {
		out = append(out, guessDTO{
			ID:       item.ID,
			TeamName: item.TeamName,
			Championship: guessChampionshipDTO{
				ID:   item.ChampionshipID,
				Name: item.ChampionshipName,
			},
			GuessCost:     item.Cost,
			Outcome:       string(item.Outcome),
			LootCollected: item.LootCollected,
			CreatedAt:     item.CreatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

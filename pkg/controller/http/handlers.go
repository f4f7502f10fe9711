package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
	"github.com/tribu-ai/tribuai/pkg/usecase"
	"github.com/tribu-ai/tribuai/pkg/utils/errutil"
	"github.com/tribu-ai/tribuai/pkg/utils/safe"
)

// turnHandler processes one conversation turn.
// Request: {"session_id": "...", "text": "..."}. An absent session_id starts a
// new session; its generated ID is returned in the result.
func turnHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		SessionID string `json:"session_id"`
		Text      string `json:"text"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode turn request"), http.StatusBadRequest)
			return
		}

		result, err := uc.Conversation.HandleTurn(ctx, types.SessionID(req.SessionID), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrSessionBusy):
				errutil.HandleHTTP(ctx, w, err, http.StatusConflict)
			case errors.Is(err, usecase.ErrEmptyInput):
				errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			default:
				errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
			}
			return
		}

		writeJSON(ctx, w, result)
	}
}

// profileHandler runs the one-shot pipeline against a caller-supplied profile
// without creating a session.
func profileHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Profile map[types.Category][]string `json:"profile"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode profile request"), http.StatusBadRequest)
			return
		}

		result, err := uc.Conversation.ProcessProfile(ctx, model.Profile(req.Profile))
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
			return
		}

		writeJSON(ctx, w, result)
	}
}

// sessionsHandler lists active sessions as lightweight summaries
func sessionsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type sessionSummary struct {
		SessionID       types.SessionID `json:"session_id"`
		Turns           int             `json:"turns"`
		ProfileComplete bool            `json:"profile_complete"`
		UpdatedAt       time.Time       `json:"updated_at"`
	}
	type response struct {
		Sessions []sessionSummary `json:"sessions"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessions, err := uc.Conversation.ListSessions(ctx)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
			return
		}

		resp := response{Sessions: make([]sessionSummary, len(sessions))}
		for i, sess := range sessions {
			resp.Sessions[i] = sessionSummary{
				SessionID:       sess.ID,
				Turns:           len(sess.History),
				ProfileComplete: sess.ProfileComplete,
				UpdatedAt:       sess.UpdatedAt,
			}
		}

		writeJSON(ctx, w, resp)
	}
}

// healthHandler reports process liveness and upstream reachability
func healthHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Status     string `json:"status"`
		TasteGraph string `json:"taste_graph"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		resp := response{Status: "ok", TasteGraph: "unconfigured"}
		if svc := uc.Taste(); svc != nil {
			if svc.HealthCheck(ctx) {
				resp.TasteGraph = "ok"
			} else {
				resp.TasteGraph = "unavailable"
			}
		}

		writeJSON(ctx, w, resp)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(ctx, w, data)
}

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ping(r.Context()); err != nil {
		s.writeError(w, r, types.NewInternalServiceError(fmt.Errorf("storage unreachable: %w", err)))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sender := r.Header.Get(SenderHeader)

	name, payload, err := readVariant(r)
	if err != nil {
		s.writeError(w, r, types.NewValidationFailedError(err))
		return
	}

	var receipt *ledger.Receipt
	switch name {
	case executeStake, executeWithdraw:
		var msg AmountMsg
		if err := decodePayload(payload, &msg); err != nil {
			s.writeError(w, r, types.NewValidationFailedError(err))
			return
		}
		if name == executeStake {
			receipt, err = s.ledger.Stake(ctx, sender, uint64(msg.Amount))
		} else {
			receipt, err = s.ledger.Withdraw(ctx, sender, uint64(msg.Amount))
		}
	case executeClaimReward:
		receipt, err = s.ledger.ClaimReward(ctx, sender)
	default:
		// token contract operations such as transfer_from cannot be invoked here
		err = fmt.Errorf("%w: execute variant %q is not allowed", ledger.ErrUnauthorized, name)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newReceiptResponse(receipt))
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, payload, err := readVariant(r)
	if err != nil {
		s.writeError(w, r, types.NewValidationFailedError(err))
		return
	}

	switch name {
	case queryGetStaked, queryGetProjected:
		var q AccountQuery
		if err := decodePayload(payload, &q); err != nil {
			s.writeError(w, r, types.NewValidationFailedError(err))
			return
		}
		if q.Account == "" {
			s.writeError(w, r, types.NewValidationFailedError(fmt.Errorf("account is required")))
			return
		}

		get := s.ledger.GetStaked
		if name == queryGetProjected {
			get = s.ledger.GetProjected
		}
		balance, err := get(ctx, q.Account)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, StakedResponse{
			Balance: Uint64String(balance.Staked),
			Reward:  Uint64String(balance.RewardOwed),
		})
	case queryGetPool:
		pool, err := s.ledger.GetPool(ctx)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newPoolResponse(pool))
	default:
		s.writeError(w, r, types.NewValidationFailedError(fmt.Errorf("unknown query %q", name)))
	}
}

func (s *Server) handleGetOperations(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.ParseInt(raw, 10, 64); err != nil {
			s.writeError(w, r, types.NewValidationFailedError(fmt.Errorf("invalid limit %q", raw)))
			return
		}
	}

	docs, err := s.ledger.GetOperations(r.Context(), account, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]OperationResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, OperationResponse{
			ID:        doc.ID,
			Operation: doc.Operation,
			Token:     doc.Token,
			Amount:    Uint64String(doc.Amount),
			At:        doc.At,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func readVariant(r *http.Request) (string, json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read body: %w", err)
	}
	return decodeVariant(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	serviceErr := toServiceError(err)
	if serviceErr.StatusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Ctx(r.Context()).Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	writeJSON(w, serviceErr.StatusCode, ErrorResponse{
		ErrorCode: string(serviceErr.ErrorCode),
		Message:   serviceErr.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

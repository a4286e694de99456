package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/config"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sender = "bbn1sender"

type call struct {
	method string
	owner  string
	amount uint64
}

type fakeLedger struct {
	calls []call
	err   error
	pool  *ledger.Pool
}

func (f *fakeLedger) receipt(op ledger.Operation, owner string, amount uint64) (*ledger.Receipt, error) {
	f.calls = append(f.calls, call{method: op.String(), owner: owner, amount: amount})
	if f.err != nil {
		return nil, f.err
	}
	account := ledger.NewAccount(owner)
	account.Staked = amount
	return &ledger.Receipt{
		Operation: op,
		Owner:     owner,
		Amount:    amount,
		Token:     "ubbn",
		At:        100,
		Pool:      f.pool,
		Account:   account,
	}, nil
}

func (f *fakeLedger) Stake(_ context.Context, owner string, amount uint64) (*ledger.Receipt, error) {
	return f.receipt(ledger.OperationStake, owner, amount)
}

func (f *fakeLedger) Withdraw(_ context.Context, owner string, amount uint64) (*ledger.Receipt, error) {
	return f.receipt(ledger.OperationWithdraw, owner, amount)
}

func (f *fakeLedger) ClaimReward(_ context.Context, owner string) (*ledger.Receipt, error) {
	return f.receipt(ledger.OperationClaimReward, owner, 0)
}

func (f *fakeLedger) GetStaked(_ context.Context, owner string) (*services.Balance, error) {
	f.calls = append(f.calls, call{method: "get_staked", owner: owner})
	if f.err != nil {
		return nil, f.err
	}
	return &services.Balance{Staked: 10, RewardOwed: 5}, nil
}

func (f *fakeLedger) GetProjected(_ context.Context, owner string) (*services.Balance, error) {
	f.calls = append(f.calls, call{method: "get_projected", owner: owner})
	return &services.Balance{Staked: 10, RewardOwed: 7}, nil
}

func (f *fakeLedger) GetPool(context.Context) (*ledger.Pool, error) {
	return f.pool, nil
}

func (f *fakeLedger) GetOperations(_ context.Context, owner string, limit int64) ([]*model.OperationDocument, error) {
	f.calls = append(f.calls, call{method: "operations", owner: owner, amount: uint64(limit)})
	return []*model.OperationDocument{{ID: "op1", Operation: "stake", Token: "ubbn", Amount: 3, At: 9}}, nil
}

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error {
	return p.err
}

func setupServer(t *testing.T) (*Server, *fakeLedger, *fakePinger) {
	pool := ledger.NewPool(ledger.PoolParams{
		StakingToken: "ubbn", RewardToken: "ureward", PeriodFinishAt: 2000, RewardRate: 10,
	})
	pool.TotalStaked = 42
	pool.RewardPerUnitStored = sdkmath.NewUintFromString("123456789012345678901234567890")

	fake := &fakeLedger{pool: pool}
	pinger := &fakePinger{}
	cfg := &config.ServerConfig{AllowedOrigins: []string{"https://app.example.com"}}
	require.NoError(t, cfg.Validate())

	return NewServer(cfg, fake, pinger), fake, pinger
}

func do(t *testing.T, s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func execute(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	return do(t, s, http.MethodPost, "/v1/execute", body, map[string]string{SenderHeader: sender})
}

func TestExecute(t *testing.T) {
	t.Run("stake with string amount", func(t *testing.T) {
		s, fake, _ := setupServer(t)

		rec := execute(t, s, `{"stake":{"amount":"1500"}}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []call{{method: "stake", owner: sender, amount: 1500}}, fake.calls)
		assert.Contains(t, rec.Body.String(), `"amount":"1500"`)
		assert.Contains(t, rec.Body.String(), `"total_staked":"42"`)
		assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
	})
	t.Run("withdraw with number amount", func(t *testing.T) {
		s, fake, _ := setupServer(t)

		rec := execute(t, s, `{"withdraw":{"amount":7}}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []call{{method: "withdraw", owner: sender, amount: 7}}, fake.calls)
	})
	t.Run("claim reward with empty payload", func(t *testing.T) {
		s, fake, _ := setupServer(t)

		rec := execute(t, s, `{"claim_reward":{}}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "claim_reward", fake.calls[0].method)
	})
	t.Run("token contract variant is unauthorized", func(t *testing.T) {
		s, fake, _ := setupServer(t)

		rec := execute(t, s, `{"transfer_from":{"owner":"a","recipient":"b","amount":"1"}}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
		assert.Empty(t, fake.calls)
	})
	t.Run("malformed messages", func(t *testing.T) {
		s, fake, _ := setupServer(t)

		for _, body := range []string{
			`{"stake":{"amount":"1"},"withdraw":{"amount":"1"}}`,
			`{}`,
			`not json`,
			`{"stake":{"amount":"-1"}}`,
			`{"stake":{"amount":"12abc"}}`,
		} {
			rec := execute(t, s, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
		assert.Empty(t, fake.calls)
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: stake amount must be positive", ledger.ErrInvalidAmount), http.StatusBadRequest, "VALIDATION_ERROR"},
		{ledger.ErrInsufficientBalance, http.StatusBadRequest, "INSUFFICIENT_BALANCE"},
		{ledger.ErrAccountNotFound, http.StatusNotFound, "NOT_FOUND"},
		{ledger.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{fmt.Errorf("%w: %w", ledger.ErrTransferFailed, errors.New("rpc down")), http.StatusBadGateway, "TRANSFER_FAILED"},
		{ledger.ErrArithmeticOverflow, http.StatusUnprocessableEntity, "ARITHMETIC_OVERFLOW"},
		{ledger.ErrPoolExists, http.StatusConflict, "CONFLICT"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVICE_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			s, fake, _ := setupServer(t)
			fake.err = tc.err

			rec := execute(t, s, `{"stake":{"amount":"1"}}`)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
		})
	}
}

func TestQuery(t *testing.T) {
	t.Run("get_staked", func(t *testing.T) {
		s, fake, _ := setupServer(t)

		rec := do(t, s, http.MethodPost, "/v1/query", `{"get_staked":{"account":"bbn1owner"}}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"balance":"10","reward":"5"}`, rec.Body.String())
		assert.Equal(t, "bbn1owner", fake.calls[0].owner)
	})
	t.Run("get_projected", func(t *testing.T) {
		s, _, _ := setupServer(t)

		rec := do(t, s, http.MethodPost, "/v1/query", `{"get_projected":{"account":"bbn1owner"}}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"balance":"10","reward":"7"}`, rec.Body.String())
	})
	t.Run("get_staked unknown account", func(t *testing.T) {
		s, fake, _ := setupServer(t)
		fake.err = ledger.ErrAccountNotFound

		rec := do(t, s, http.MethodPost, "/v1/query", `{"get_staked":{"account":"bbn1owner"}}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("get_staked without account", func(t *testing.T) {
		s, _, _ := setupServer(t)

		rec := do(t, s, http.MethodPost, "/v1/query", `{"get_staked":{}}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("get_pool keeps the wide accumulator", func(t *testing.T) {
		s, _, _ := setupServer(t)

		rec := do(t, s, http.MethodPost, "/v1/query", `{"get_pool":{}}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reward_per_unit_stored":"123456789012345678901234567890"`)
	})
	t.Run("unknown query", func(t *testing.T) {
		s, _, _ := setupServer(t)

		rec := do(t, s, http.MethodPost, "/v1/query", `{"get_everything":{}}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInstantiateIsNotServed(t *testing.T) {
	s, fake, _ := setupServer(t)

	body := `{"staking_token":"ubbn","reward_token":"ureward","period_finish_at":"2000","reward_rate":"10"}`
	rec := do(t, s, http.MethodPost, "/v1/instantiate", body, map[string]string{SenderHeader: sender})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, fake.calls)
}

func TestOperationsAndHealth(t *testing.T) {
	s, fake, pinger := setupServer(t)

	rec := do(t, s, http.MethodGet, "/v1/accounts/bbn1owner/operations?limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"op1","operation":"stake","token":"ubbn","amount":"3","at":9}]`, rec.Body.String())
	assert.Equal(t, call{method: "operations", owner: "bbn1owner", amount: 5}, fake.calls[0])

	rec = do(t, s, http.MethodGet, "/v1/accounts/bbn1owner/operations?limit=x", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	pinger.err = errors.New("no mongo")
	rec = do(t, s, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS(t *testing.T) {
	s, _, _ := setupServer(t)

	rec := do(t, s, http.MethodOptions, "/v1/execute", "", map[string]string{
		"Origin":                         "https://app.example.com",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": SenderHeader,
	})
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, s, http.MethodOptions, "/v1/execute", "", map[string]string{
		"Origin":                        "https://evil.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

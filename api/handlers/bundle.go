package handlers

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/sprintertech/sprinter-settlement/bundle"
	"github.com/sprintertech/sprinter-settlement/claim"
)

type BundleTracker interface {
	Status(ctx context.Context, bundleID *big.Int) (*bundle.Result, error)
}

type ClaimResult struct {
	DepositId            *BigInt      `json:"depositId"`
	ChainId              uint64       `json:"chainId"`
	Status               claim.Status `json:"status"`
	ClaimTimestamp       *int64       `json:"claimTimestamp,omitempty"`
	ClaimTransactionHash *common.Hash `json:"claimTransactionHash,omitempty"`
}

type BundleResult struct {
	Status              bundle.Status `json:"status"`
	FillTimestamp       *int64        `json:"fillTimestamp,omitempty"`
	FillTransactionHash *common.Hash  `json:"fillTransactionHash,omitempty"`
	Claims              []ClaimResult `json:"claims"`
}

type BundleHandler struct {
	tracker BundleTracker
}

func NewBundleHandler(tracker BundleTracker) *BundleHandler {
	return &BundleHandler{
		tracker: tracker,
	}
}

// HandleRequest returns the current status of the bundle and its claims
func (h *BundleHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bundleID, ok := new(big.Int).SetString(vars["bundleId"], 10)
	if !ok || bundleID.Sign() < 0 {
		JSONError(w, fmt.Errorf("invalid bundleId"), http.StatusBadRequest)
		return
	}

	result, err := h.tracker.Status(r.Context(), bundleID)
	if errors.Is(err, bundle.ErrBundleNotFound) {
		JSONError(w, fmt.Errorf("no bundle with ID: %s", bundleID), http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, fmt.Errorf("failed fetching bundle status: %s", err), http.StatusInternalServerError)
		return
	}

	JSONResponse(w, toBundleResult(result))
}

func toBundleResult(result *bundle.Result) BundleResult {
	resp := BundleResult{
		Status:              result.Status,
		FillTransactionHash: result.FillTransactionHash,
		Claims:              make([]ClaimResult, len(result.Claims)),
	}
	if result.FillTimestamp != nil {
		fillTimestamp := result.FillTimestamp.Unix()
		resp.FillTimestamp = &fillTimestamp
	}
	for i, c := range result.Claims {
		resp.Claims[i] = ClaimResult{
			DepositId:            &BigInt{c.DepositID},
			ChainId:              c.ChainID,
			Status:               c.Status,
			ClaimTransactionHash: c.ClaimTransactionHash,
		}
		if c.ClaimTimestamp != nil {
			claimTimestamp := c.ClaimTimestamp.Unix()
			resp.Claims[i].ClaimTimestamp = &claimTimestamp
		}
	}
	return resp
}

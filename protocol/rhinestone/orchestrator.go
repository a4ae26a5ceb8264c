package rhinestone

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-settlement/bundle"
	"github.com/sprintertech/sprinter-settlement/claim"
)

const (
	RHINESTONE_ORCHESTRATOR_URL = "https://orchestrator.rhinestone.dev"
)

type BundleCache interface {
	Get(bundleID string) (*Bundle, bool)
	Set(bundleID string, b *Bundle)
}

// RhinestoneOrchestrator reads bundles from the orchestrator API and serves
// them as deposit, fill and claim data of the bundle tracker
type RhinestoneOrchestrator struct {
	url    string
	apiKey string
	Client *http.Client

	bundles BundleCache
}

func NewRhinestoneOrchestrator(url string, apiKey string, bundles BundleCache) *RhinestoneOrchestrator {
	return &RhinestoneOrchestrator{
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		url:     url,
		apiKey:  apiKey,
		bundles: bundles,
	}
}

func (o *RhinestoneOrchestrator) GetBundle(ctx context.Context, bundleID *big.Int) (*Bundle, error) {
	if b, ok := o.bundles.Get(bundleID.String()); ok {
		return b, nil
	}

	url := fmt.Sprintf("%s/bundles/%s", o.url, bundleID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("x-api-key", o.apiKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", bundle.ErrBundleNotFound, bundleID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	b := new(Bundle)
	if err := json.Unmarshal(body, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if b.BundleEvent.BundleId != "" && b.BundleEvent.BundleId != bundleID.String() {
		return nil, fmt.Errorf("bundle id mismatch: requested %s, got %s", bundleID, b.BundleEvent.BundleId)
	}

	o.bundles.Set(bundleID.String(), b)
	return b, nil
}

func (o *RhinestoneOrchestrator) DepositEvents(ctx context.Context, bundleID *big.Int) ([]claim.DepositEvent, error) {
	b, err := o.GetBundle(ctx, bundleID)
	if err != nil {
		return nil, err
	}

	deposits := make([]claim.DepositEvent, len(b.BundleEvent.AcrossDepositEvents))
	for i, e := range b.BundleEvent.AcrossDepositEvents {
		deposit, err := e.toDepositEvent()
		if err != nil {
			return nil, fmt.Errorf("invalid deposit %s: %w", e.DepositId, err)
		}
		deposits[i] = deposit
	}
	return deposits, nil
}

func (o *RhinestoneOrchestrator) FillEvent(ctx context.Context, bundleID *big.Int) (*bundle.FillRecord, error) {
	b, err := o.GetBundle(ctx, bundleID)
	if err != nil {
		return nil, err
	}
	if b.Fill == nil || b.Fill.TransactionHash == "" {
		return nil, nil
	}

	return &bundle.FillRecord{
		ChainID:       b.TargetChainId,
		Timestamp:     time.Unix(int64(b.Fill.Timestamp), 0),
		TxHash:        common.HexToHash(b.Fill.TransactionHash),
		Confirmations: b.Fill.Confirmations,
	}, nil
}

func (o *RhinestoneOrchestrator) Deadline(ctx context.Context, bundleID *big.Int) (time.Time, error) {
	b, err := o.GetBundle(ctx, bundleID)
	if err != nil {
		return time.Time{}, err
	}

	return parseTimestamp(b.BundleData.Expires)
}

func (o *RhinestoneOrchestrator) Claim(ctx context.Context, bundleID *big.Int, deposit claim.DepositEvent) (*claim.Record, error) {
	b, err := o.GetBundle(ctx, bundleID)
	if err != nil {
		return nil, err
	}

	for _, c := range b.Claims {
		if c.ChainId != deposit.OriginChainID || c.DepositId != deposit.DepositID.String() {
			continue
		}
		if c.TransactionHash == "" {
			return nil, nil
		}

		return &claim.Record{
			Timestamp: time.Unix(int64(c.Timestamp), 0),
			TxHash:    common.HexToHash(c.TransactionHash),
		}, nil
	}
	return nil, nil
}

func (e AcrossDepositEvent) toDepositEvent() (claim.DepositEvent, error) {
	depositID, ok := new(big.Int).SetString(e.DepositId, 10)
	if !ok {
		return claim.DepositEvent{}, fmt.Errorf("invalid deposit id %s", e.DepositId)
	}
	inputAmount, ok := new(big.Int).SetString(e.InputAmount, 10)
	if !ok {
		return claim.DepositEvent{}, fmt.Errorf("invalid input amount %s", e.InputAmount)
	}
	outputAmount, ok := new(big.Int).SetString(e.OutputAmount, 10)
	if !ok {
		return claim.DepositEvent{}, fmt.Errorf("invalid output amount %s", e.OutputAmount)
	}
	fillDeadline, err := parseTimestamp(e.FillDeadline)
	if err != nil {
		return claim.DepositEvent{}, err
	}
	exclusivityDeadline, err := parseTimestamp(e.ExclusivityDeadline)
	if err != nil {
		return claim.DepositEvent{}, err
	}

	value := new(big.Int)
	if e.OriginClaimPayload.Value != "" {
		value, ok = value.SetString(e.OriginClaimPayload.Value, 10)
		if !ok {
			return claim.DepositEvent{}, fmt.Errorf("invalid claim value %s", e.OriginClaimPayload.Value)
		}
	}

	return claim.DepositEvent{
		ClaimPayload: claim.ClaimPayload{
			ChainID: e.OriginClaimPayload.ChainID,
			To:      common.HexToAddress(e.OriginClaimPayload.To),
			Data:    common.FromHex(e.OriginClaimPayload.Data),
			Value:   value,
		},
		InputToken:          common.HexToAddress(e.InputToken),
		InputAmount:         inputAmount,
		OutputToken:         common.HexToAddress(e.OutputToken),
		OutputAmount:        outputAmount,
		OriginChainID:       e.OriginClaimPayload.ChainID,
		DestinationChainID:  e.DestinationChainId,
		DepositID:           depositID,
		QuoteTimestamp:      time.Unix(int64(e.QuoteTimestamp), 0),
		FillDeadline:        fillDeadline,
		ExclusivityDeadline: exclusivityDeadline,
		Depositor:           common.HexToAddress(e.Depositor),
		Recipient:           common.HexToAddress(e.Recipient),
		ExclusiveRelayer:    common.HexToAddress(e.ExclusiveRelayer),
		Message:             common.FromHex(e.Message),
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	unix, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %s: %w", s, err)
	}
	return time.Unix(unix, 0), nil
}

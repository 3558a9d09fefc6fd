// Package mapper converts raw JSON-RPC result fragments into flat
// canonical records. Mappers are lenient about optional sub-trees:
// missing fields degrade to nil or empty values, and only a result
// that is not a JSON object at all is rejected.
package mapper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"suistream/internal/model"
	"suistream/internal/rpc"
)

// ErrMalformedResponse marks a result that is present but structurally
// unusable.
var ErrMalformedResponse = errors.New("malformed response")

// ensureObject rejects results that are not JSON objects.
func ensureObject(raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return fmt.Errorf("%w: result is not an object", ErrMalformedResponse)
	}
	return nil
}

// Checkpoint maps one sui_getCheckpoint result into a checkpoint
// record.
func Checkpoint(raw json.RawMessage) (*model.Checkpoint, error) {
	if err := ensureObject(raw); err != nil {
		return nil, err
	}

	var result rpc.CheckpointResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	checkpoint := &model.Checkpoint{
		Type:                     model.TypeCheckpoint,
		SequenceNumber:           result.SequenceNumber.Ptr(),
		Digest:                   result.Digest,
		Epoch:                    result.Epoch.Ptr(),
		PreviousDigest:           result.PreviousDigest,
		NetworkTotalTransactions: result.NetworkTotalTransactions.Ptr(),
		TimestampMs:              result.TimestampMs.Ptr(),
		Transactions:             result.Transactions,
		CheckpointCommitments:    mapCommitments(result.CheckpointCommitments),
		ValidatorSignature:       result.ValidatorSignature,
		EndOfEpochData:           mapEndOfEpochData(result.EndOfEpochData),
	}

	if result.EpochRollingGasCostSummary != nil {
		checkpoint.EpochRollingGasCostSummary = mapGasCostSummary(result.EpochRollingGasCostSummary)
	}
	if checkpoint.TimestampMs != nil {
		checkpoint.Timestamp = model.FormatTimestampMs(*checkpoint.TimestampMs)
	}

	return checkpoint, nil
}

func mapGasCostSummary(summary *rpc.GasCostSummary) *model.GasCostSummary {
	return &model.GasCostSummary{
		ComputationCost:         summary.ComputationCost.String(),
		StorageCost:             summary.StorageCost.String(),
		StorageRebate:           summary.StorageRebate.String(),
		NonRefundableStorageFee: summary.NonRefundableStorageFee.String(),
	}
}

func mapCommitments(commitments []rpc.Commitment) []model.Commitment {
	out := make([]model.Commitment, 0, len(commitments))
	for _, commitment := range commitments {
		out = append(out, model.Commitment{Digest: rpc.RawText(commitment.Digest)})
	}
	return out
}

func mapEndOfEpochData(data *rpc.EndOfEpochData) *model.EndOfEpochData {
	if data == nil {
		return nil
	}
	return &model.EndOfEpochData{
		NextEpochCommittee:       mapCommittee(data.NextEpochCommittee),
		NextEpochProtocolVersion: data.NextEpochProtocolVersion.Ptr(),
		EpochCommitments:         mapCommitments(data.EpochCommitments),
	}
}

// mapCommittee reads (authority_name, stake_unit) pairs positionally
// from two-element arrays. Short or malformed entries yield empty
// fields rather than errors.
func mapCommittee(members []json.RawMessage) []model.CommitteeMember {
	out := make([]model.CommitteeMember, 0, len(members))
	for _, raw := range members {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			out = append(out, model.CommitteeMember{})
			continue
		}
		var member model.CommitteeMember
		if len(pair) > 0 {
			member.AuthorityName = rpc.RawText(pair[0])
		}
		if len(pair) > 1 {
			var stake rpc.BigString
			if err := json.Unmarshal(pair[1], &stake); err == nil {
				member.StakeUnit = stake.String()
			}
		}
		out = append(out, member)
	}
	return out
}

package mapper

import (
	"encoding/json"
	"fmt"

	"suistream/internal/model"
	"suistream/internal/rpc"
)

// Transaction maps one multi-get result element into exactly one
// transaction record. Absent effects or input sub-trees leave their
// fields empty.
func Transaction(raw json.RawMessage) (*model.Transaction, error) {
	if err := ensureObject(raw); err != nil {
		return nil, err
	}

	var result rpc.TransactionBlockResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	tx := &model.Transaction{
		Type:                     model.TypeTransaction,
		Digest:                   result.Digest,
		CheckpointSequenceNumber: result.Checkpoint.Ptr(),
		TimestampMs:              result.TimestampMs.Ptr(),
		ConfirmedLocalExecution:  result.ConfirmedLocalExecution,
		BalanceChanges:           mapBalanceChanges(result.BalanceChanges),
	}
	if tx.TimestampMs != nil {
		tx.Timestamp = model.FormatTimestampMs(*tx.TimestampMs)
	}

	if envelope := result.Transaction; envelope != nil {
		tx.TxSignatures = envelope.TxSignatures
		if data := envelope.Data; data != nil {
			tx.Sender = data.Sender
			tx.TransactionJSON = rpc.RawText(data.Transaction)
			tx.TransactionKind = transactionKind(data.Transaction)
			if gas := data.GasData; gas != nil {
				tx.GasOwner = gas.Owner
				tx.GasPrice = gas.Price.String()
				tx.GasBudget = gas.Budget.String()
				tx.GasPayments = mapGasPayments(gas.Payment)
			}
		}
	}

	if effects := result.Effects; effects != nil {
		if effects.Status != nil {
			tx.ExecutionStatus = effects.Status.Status
		}
		tx.ExecutedEpoch = effects.ExecutedEpoch.Ptr()
		tx.EventsDigest = effects.EventsDigest
		tx.TransactionDependencies = effects.Dependencies
		if gasUsed := effects.GasUsed; gasUsed != nil {
			tx.ComputationCost = gasUsed.ComputationCost.String()
			tx.StorageCost = gasUsed.StorageCost.String()
			tx.StorageRebate = gasUsed.StorageRebate.String()
			tx.NonRefundableStorageFee = gasUsed.NonRefundableStorageFee.String()
		}
		if gasObject := effects.GasObject; gasObject != nil && gasObject.Reference != nil {
			tx.GasObjectID = gasObject.Reference.ObjectID
			tx.GasObjectVersion = gasObject.Reference.Version.Ptr()
			tx.GasObjectDigest = gasObject.Reference.Digest
		}
		tx.Created = ownedObjectIDs(effects.Created)
		tx.Mutated = ownedObjectIDs(effects.Mutated)
		tx.Unwrapped = ownedObjectIDs(effects.Unwrapped)
		tx.Deleted = objectIDs(effects.Deleted)
		tx.UnwrappedThenDeleted = objectIDs(effects.UnwrappedThenDeleted)
		tx.Wrapped = objectIDs(effects.Wrapped)
		tx.SharedObjects = objectIDs(effects.SharedObjects)
	}

	return tx, nil
}

// transactionKind pulls the "kind" tag out of the raw transaction
// payload without interpreting the rest of it.
func transactionKind(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var payload struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Kind
}

func mapGasPayments(payments []rpc.ObjectRef) []model.GasPayment {
	out := make([]model.GasPayment, 0, len(payments))
	for _, payment := range payments {
		out = append(out, model.GasPayment{
			ObjectID: payment.ObjectID,
			Version:  payment.Version.Ptr(),
			Digest:   payment.Digest,
		})
	}
	return out
}

func mapBalanceChanges(changes []rpc.BalanceChangeResult) []model.BalanceChange {
	out := make([]model.BalanceChange, 0, len(changes))
	for _, change := range changes {
		owner := model.ParseOwner(change.Owner)
		out = append(out, model.BalanceChange{
			OwnerType:            string(owner.Kind),
			OwnerAddress:         owner.Address,
			InitialSharedVersion: owner.InitialSharedVersion,
			CoinType:             change.CoinType,
			Amount:               change.Amount.String(),
		})
	}
	return out
}

func ownedObjectIDs(refs []rpc.OwnedObjectRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Reference != nil {
			out = append(out, ref.Reference.ObjectID)
		}
	}
	return out
}

func objectIDs(refs []rpc.ObjectRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.ObjectID)
	}
	return out
}

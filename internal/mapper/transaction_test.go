package mapper

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

const transactionBlockJSON = `{
	"digest": "TxDigestA",
	"transaction": {
		"data": {
			"sender": "0xsender",
			"gasData": {
				"payment": [{"objectId": "0xgascoin", "version": 5, "digest": "GasCoinDigest"}],
				"owner": "0xsender",
				"price": "1000",
				"budget": "5000000"
			},
			"transaction": {"kind": "ProgrammableTransaction", "inputs": []}
		},
		"txSignatures": ["sig1", "sig2"]
	},
	"effects": {
		"status": {"status": "success"},
		"executedEpoch": "82",
		"gasUsed": {
			"computationCost": "1000000",
			"storageCost": "2964000",
			"storageRebate": "978120",
			"nonRefundableStorageFee": "9880"
		},
		"sharedObjects": [{"objectId": "0xshared", "version": 9, "digest": "SharedDigest"}],
		"created": [
			{"owner": {"AddressOwner": "0xsender"}, "reference": {"objectId": "0xnew", "version": 6, "digest": "NewDigest"}}
		],
		"mutated": [
			{"owner": {"AddressOwner": "0xsender"}, "reference": {"objectId": "0xgascoin", "version": 6, "digest": "GasCoinDigest2"}}
		],
		"deleted": [{"objectId": "0xgone", "version": 4, "digest": "GoneDigest"}],
		"gasObject": {"owner": {"AddressOwner": "0xsender"}, "reference": {"objectId": "0xgascoin", "version": 6, "digest": "GasCoinDigest2"}},
		"eventsDigest": "EvDigest",
		"dependencies": ["DepA", "DepB"]
	},
	"events": [
		{
			"id": {"txDigest": "TxDigestA", "eventSeq": "0"},
			"packageId": "0xpkg",
			"transactionModule": "market",
			"sender": "0xsender",
			"type": "0xpkg::market::Listed",
			"parsedJson": {"price": "100"},
			"bcs": "base64bytes"
		}
	],
	"objectChanges": [
		{"type": "created", "sender": "0xsender", "owner": {"AddressOwner": "0xsender"}, "objectType": "0xpkg::market::Listing", "objectId": "0xnew", "version": "6", "digest": "NewDigest"},
		{"type": "mutated", "sender": "0xsender", "owner": {"AddressOwner": "0xsender"}, "objectType": "0x2::coin::Coin<0x2::sui::SUI>", "objectId": "0xgascoin", "version": "6", "previousVersion": "5", "digest": "GasCoinDigest2"}
	],
	"balanceChanges": [
		{"owner": {"AddressOwner": "0xsender"}, "coinType": "0x2::sui::SUI", "amount": "-3985880"}
	],
	"timestampMs": "1700000000000",
	"checkpoint": "12345",
	"confirmedLocalExecution": false
}`

func TestTransactionMapping(t *testing.T) {
	tx, err := Transaction(json.RawMessage(transactionBlockJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.Type != "transaction" || tx.Digest != "TxDigestA" {
		t.Fatalf("identity mismatch: %q %q", tx.Type, tx.Digest)
	}
	if tx.CheckpointSequenceNumber == nil || *tx.CheckpointSequenceNumber != 12345 {
		t.Fatalf("checkpoint sequence mismatch: %v", tx.CheckpointSequenceNumber)
	}
	if tx.Sender != "0xsender" {
		t.Fatalf("sender mismatch: %q", tx.Sender)
	}
	if tx.TransactionKind != "ProgrammableTransaction" {
		t.Fatalf("kind mismatch: %q", tx.TransactionKind)
	}
	if !reflect.DeepEqual(tx.TxSignatures, []string{"sig1", "sig2"}) {
		t.Fatalf("signatures mismatch: %v", tx.TxSignatures)
	}
	if len(tx.GasPayments) != 1 || tx.GasPayments[0].ObjectID != "0xgascoin" {
		t.Fatalf("gas payments mismatch: %+v", tx.GasPayments)
	}
	if tx.GasPrice != "1000" || tx.GasBudget != "5000000" {
		t.Fatalf("gas price/budget mismatch: %q %q", tx.GasPrice, tx.GasBudget)
	}
	if tx.ExecutionStatus != "success" {
		t.Fatalf("execution status mismatch: %q", tx.ExecutionStatus)
	}
	if tx.ExecutedEpoch == nil || *tx.ExecutedEpoch != 82 {
		t.Fatalf("executed epoch mismatch: %v", tx.ExecutedEpoch)
	}
	if tx.ComputationCost != "1000000" || tx.NonRefundableStorageFee != "9880" {
		t.Fatalf("gas used mismatch: %q %q", tx.ComputationCost, tx.NonRefundableStorageFee)
	}
	if tx.GasObjectID != "0xgascoin" || tx.GasObjectVersion == nil || *tx.GasObjectVersion != 6 {
		t.Fatalf("gas object mismatch: %q %v", tx.GasObjectID, tx.GasObjectVersion)
	}
	if !reflect.DeepEqual(tx.Created, []string{"0xnew"}) {
		t.Fatalf("created bucket mismatch: %v", tx.Created)
	}
	if !reflect.DeepEqual(tx.Mutated, []string{"0xgascoin"}) {
		t.Fatalf("mutated bucket mismatch: %v", tx.Mutated)
	}
	if !reflect.DeepEqual(tx.Deleted, []string{"0xgone"}) {
		t.Fatalf("deleted bucket mismatch: %v", tx.Deleted)
	}
	if !reflect.DeepEqual(tx.SharedObjects, []string{"0xshared"}) {
		t.Fatalf("shared objects mismatch: %v", tx.SharedObjects)
	}
	if !reflect.DeepEqual(tx.TransactionDependencies, []string{"DepA", "DepB"}) {
		t.Fatalf("dependencies mismatch: %v", tx.TransactionDependencies)
	}
	if len(tx.BalanceChanges) != 1 {
		t.Fatalf("balance changes mismatch: %+v", tx.BalanceChanges)
	}
	change := tx.BalanceChanges[0]
	if change.OwnerType != "address_owner" || change.OwnerAddress != "0xsender" ||
		change.CoinType != "0x2::sui::SUI" || change.Amount != "-3985880" {
		t.Fatalf("balance change mismatch: %+v", change)
	}
	if tx.ConfirmedLocalExecution == nil || *tx.ConfirmedLocalExecution {
		t.Fatalf("confirmed local execution mismatch: %v", tx.ConfirmedLocalExecution)
	}
	if tx.Timestamp != "2023-11-14T22:13:20Z" {
		t.Fatalf("timestamp mismatch: %q", tx.Timestamp)
	}
}

func TestTransactionMappingWithoutEffects(t *testing.T) {
	tx, err := Transaction(json.RawMessage(`{"digest":"BareTx","checkpoint":"7"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Digest != "BareTx" {
		t.Fatalf("digest mismatch: %q", tx.Digest)
	}
	if tx.ExecutionStatus != "" || tx.ExecutedEpoch != nil {
		t.Fatalf("absent effects must leave fields empty")
	}
	if len(tx.Created) != 0 || len(tx.BalanceChanges) != 0 {
		t.Fatalf("absent lists must stay empty")
	}
}

func TestTransactionMappingMalformed(t *testing.T) {
	if _, err := Transaction(json.RawMessage(`42`)); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

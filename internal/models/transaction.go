package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TransactionTypeDeposit  = "DEPOSIT"
	TransactionTypeWithdraw = "WITHDRAW"
	TransactionTypeTransfer = "TRANSFER"
)

// Transaction is an immutable movement of funds. Records are created
// only by Wallet mutations and are never updated after creation; a
// transfer produces two records, one per side.
type Transaction struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Amount              Money      `gorm:"embedded" json:"amount"`
	Type                string     `gorm:"type:varchar(16);not null" json:"type"`
	Timestamp           time.Time  `gorm:"not null;index" json:"timestamp"`
	SourceWalletID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"source_wallet_id"`
	DestinationWalletID *uuid.UUID `gorm:"type:uuid;index" json:"destination_wallet_id,omitempty"`
}

// newTransaction is the only constructor. Keeping it unexported means
// records can only come out of a wallet mutation.
func newTransaction(amount Money, txType string, sourceWalletID uuid.UUID, destinationWalletID *uuid.UUID) Transaction {
	return Transaction{
		ID:                  uuid.New(),
		Amount:              amount,
		Type:                txType,
		Timestamp:           time.Now().UTC(),
		SourceWalletID:      sourceWalletID,
		DestinationWalletID: destinationWalletID,
	}
}

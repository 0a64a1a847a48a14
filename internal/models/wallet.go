package models

import (
	"time"

	"github.com/google/uuid"

	"simplewallet/internal/errors"
)

// Wallet is the aggregate root of the ledger. It owns its balance and
// transaction history and is the only place either may change: every
// mutation validates first, then moves the balance and appends the
// matching record, so the balance never diverges from the history.
//
// One wallet per user; the currency is fixed at creation.
type Wallet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Balance   Money     `gorm:"embedded;embeddedPrefix:balance_" json:"balance"`
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Transactions holds the history loaded with the wallet. Not a
	// gorm association: a transfer record belongs to two wallets, so
	// the repository loads it by source/destination id instead.
	Transactions []Transaction `gorm:"-" json:"transactions,omitempty"`

	// pending are records appended since the wallet was loaded. The
	// store persists and clears them on commit.
	pending []Transaction
}

// NewWallet creates an empty wallet for a user in the given currency.
func NewWallet(userID uuid.UUID, currency string) *Wallet {
	return &Wallet{
		ID:      uuid.New(),
		UserID:  userID,
		Balance: Zero(currency),
	}
}

// Deposit credits the wallet and records a deposit.
func (w *Wallet) Deposit(amount Money) error {
	if err := w.guard(amount); err != nil {
		return err
	}

	balance, err := w.Balance.Add(amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	w.record(newTransaction(amount, TransactionTypeDeposit, w.ID, nil))
	return nil
}

// Withdraw debits the wallet and records a withdrawal. Overdrafts are
// rejected with the current balance and the requested amount.
func (w *Wallet) Withdraw(amount Money) error {
	if err := w.guardDebit(amount); err != nil {
		return err
	}

	balance, err := w.Balance.Sub(amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	w.record(newTransaction(amount, TransactionTypeWithdraw, w.ID, nil))
	return nil
}

// Transfer moves funds to the destination wallet. Both sides are
// validated up front so a failure leaves neither wallet touched; on
// success the debit is applied here and the credit via
// ReceiveTransfer, each side recording its own transfer entry. The
// caller must persist both wallets in one unit of work.
func (w *Wallet) Transfer(destination *Wallet, amount Money) error {
	if err := w.guardDebit(amount); err != nil {
		return err
	}
	if err := destination.guard(amount); err != nil {
		return err
	}

	balance, err := w.Balance.Sub(amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	w.record(newTransaction(amount, TransactionTypeTransfer, w.ID, &destination.ID))

	return destination.ReceiveTransfer(amount, w.ID)
}

// ReceiveTransfer credits the incoming side of a transfer and records
// it with the originating wallet as source.
func (w *Wallet) ReceiveTransfer(amount Money, sourceWalletID uuid.UUID) error {
	if err := w.guard(amount); err != nil {
		return err
	}

	balance, err := w.Balance.Add(amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	w.record(newTransaction(amount, TransactionTypeTransfer, sourceWalletID, &w.ID))
	return nil
}

// UncommittedTransactions returns the records appended since load.
func (w *Wallet) UncommittedTransactions() []Transaction {
	return w.pending
}

// MarkCommitted clears the uncommitted records after a successful
// store commit. Only repositories call this.
func (w *Wallet) MarkCommitted() {
	w.pending = nil
}

func (w *Wallet) guard(amount Money) error {
	if !amount.IsPositive() {
		return errors.ErrInvalidAmount
	}
	if !amount.SameCurrency(w.Balance) {
		return errors.ErrCurrencyMismatch
	}
	return nil
}

func (w *Wallet) guardDebit(amount Money) error {
	if err := w.guard(amount); err != nil {
		return err
	}
	if w.Balance.LessThan(amount) {
		return &errors.InsufficientFundsError{
			Balance:   w.Balance.Amount.String(),
			Requested: amount.Amount.String(),
		}
	}
	return nil
}

func (w *Wallet) record(tx Transaction) {
	w.Transactions = append(w.Transactions, tx)
	w.pending = append(w.pending, tx)
}

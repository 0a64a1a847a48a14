package errors

var (
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be greater than zero",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrCurrencyMismatch = &DomainError{
		Code:    "CURRENCY_MISMATCH",
		Message: "currency mismatch",
	}
	ErrWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "wallet not found",
	}
	ErrWalletExists = &DomainError{
		Code:    "WALLET_EXISTS",
		Message: "user already has a wallet",
	}
	ErrSelfTransfer = &DomainError{
		Code:    "SELF_TRANSFER",
		Message: "cannot transfer to self",
	}
	ErrVersionConflict = &DomainError{
		Code:    "VERSION_CONFLICT",
		Message: "wallet was modified concurrently",
	}
	ErrConsistencyFault = &DomainError{
		Code:    "CONSISTENCY_FAULT",
		Message: "wallet store is in an inconsistent state",
	}
)

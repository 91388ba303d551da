package errors

var (
	ErrCardNotFound = &DomainError{
		Code:    "CARD_NOT_FOUND",
		Message: "card not found",
	}
	ErrSenderCardNotActive = &DomainError{
		Code:    "CARD_NOT_ACTIVE",
		Message: "the sender's card is not active",
	}
	ErrRecipientCardNotActive = &DomainError{
		Code:    "CARD_NOT_ACTIVE",
		Message: "recipient's card is not active",
	}
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "insufficient funds on the card",
	}
	ErrSameCardTransfer = &DomainError{
		Code:    "SAME_CARD_TRANSFER",
		Message: "cannot be transferred to the same card",
	}
)

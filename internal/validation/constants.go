package validation

const (
	// Transfer amount limits
	MinTransferAmount = "0.01"
	MaxTransferAmount = "1000000"

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MinOwnerLength       = 2
	MaxOwnerLength       = 100
	MaxDescriptionLength = 500
)

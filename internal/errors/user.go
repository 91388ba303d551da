package errors

var (
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrUserAlreadyExists = &DomainError{
		Code:    "USER_ALREADY_EXISTS",
		Message: "user with this email already exists",
	}
	ErrAccessDenied = &DomainError{
		Code:    "ACCESS_DENIED",
		Message: "access denied",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
	}
	ErrInvalidRefreshToken = &DomainError{
		Code:    "INVALID_REFRESH_TOKEN",
		Message: "invalid refresh token",
	}
)

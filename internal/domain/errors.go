package domain

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes; services wrap them with fmt.Errorf("%w: ...") for detail
// and callers test with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidName         = errors.New("display name must be 3-20 ASCII letters, digits or spaces")
	ErrNameTaken           = errors.New("display name is already taken")
	ErrAlreadyExists       = errors.New("already exists")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnavailable         = errors.New("book is not available")
	ErrSelfBorrow          = errors.New("cannot borrow your own book")
	ErrInsufficientDeposit = errors.New("paid amount is below the required deposit")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrNotBorrower         = errors.New("caller is not the borrower of this loan")
	ErrNotActive           = errors.New("loan is not active")
	ErrNotOverdue          = errors.New("loan is not overdue")
	ErrReentrantCall       = errors.New("a settlement is already in progress")
	ErrTransferFailure     = errors.New("fund transfer failed")
)

package agreement

import "errors"

var (
	ErrAgreementNotFound         = errors.New("agreement not found")
	ErrNotAgreementOwner         = errors.New("only the agreement owner may do this")
	ErrNotAssignedReviewer       = errors.New("not the assigned reviewer for this agreement")
	ErrAgreementAlreadyProcessed = errors.New("agreement already processed")
	ErrAgreementNotEditable      = errors.New("agreement is no longer editable")
	ErrInvalidAction             = errors.New("action must be approve or reject")
)

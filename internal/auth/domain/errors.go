package domain

//region CredentialsMismatchError

type CredentialsMismatchError struct {
	Msg string
}

func (e *CredentialsMismatchError) Error() string {
	return e.Msg
}

func (e *CredentialsMismatchError) Is(target error) bool {
	_, ok := target.(*CredentialsMismatchError)
	return ok
}

//endregion

//region UnauthenticatedError

type UnauthenticatedError struct {
	Msg string
}

func (e *UnauthenticatedError) Error() string {
	return e.Msg
}

func (e *UnauthenticatedError) Is(target error) bool {
	_, ok := target.(*UnauthenticatedError)
	return ok
}

//endregion

//region WalletMismatchError

type WalletMismatchError struct {
	Msg string
}

func (e *WalletMismatchError) Error() string {
	return e.Msg
}

func (e *WalletMismatchError) Is(target error) bool {
	_, ok := target.(*WalletMismatchError)
	return ok
}

//endregion

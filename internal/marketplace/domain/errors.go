package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region ListingNotFoundError

type ListingNotFoundError struct {
	Msg string
}

func (e *ListingNotFoundError) Error() string {
	return e.Msg
}

func (e *ListingNotFoundError) Is(target error) bool {
	_, ok := target.(*ListingNotFoundError)
	return ok
}

//endregion

//region CreditNotFoundError

type CreditNotFoundError struct {
	Msg string
}

func (e *CreditNotFoundError) Error() string {
	return e.Msg
}

func (e *CreditNotFoundError) Is(target error) bool {
	_, ok := target.(*CreditNotFoundError)
	return ok
}

//endregion

//region InsufficientQuantityError

type InsufficientQuantityError struct {
	Msg string
}

func (e *InsufficientQuantityError) Error() string {
	return e.Msg
}

func (e *InsufficientQuantityError) Is(target error) bool {
	_, ok := target.(*InsufficientQuantityError)
	return ok
}

//endregion

package domain

//region UnknownGPUError

type UnknownGPUError struct {
	Msg string
}

func (e *UnknownGPUError) Error() string {
	return e.Msg
}

func (e *UnknownGPUError) Is(target error) bool {
	_, ok := target.(*UnknownGPUError)
	return ok
}

//endregion

//region UnknownRegionError

type UnknownRegionError struct {
	Msg string
}

func (e *UnknownRegionError) Error() string {
	return e.Msg
}

func (e *UnknownRegionError) Is(target error) bool {
	_, ok := target.(*UnknownRegionError)
	return ok
}

//endregion

//region InvalidUsageError

type InvalidUsageError struct {
	Msg string
}

func (e *InvalidUsageError) Error() string {
	return e.Msg
}

func (e *InvalidUsageError) Is(target error) bool {
	_, ok := target.(*InvalidUsageError)
	return ok
}

//endregion

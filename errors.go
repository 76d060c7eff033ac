package containers

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// ContainerError is an error type for the containers module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrOutOfRange is flagged whenever an index or a key does not exist in a
// container.
const ErrOutOfRange = ContainerError("out of range")

// ErrLogic is flagged when accessing the front or back of an empty sequence.
const ErrLogic = ContainerError("container is empty")

// ErrInvalidArgument is flagged whenever an initializer sequence exceeds the
// bound of a fixed-capacity container.
const ErrInvalidArgument = ContainerError("too many initializer values")

// ErrLength is flagged when a requested capacity exceeds a container's max size.
const ErrLength = ContainerError("requested length exceeds max size")

// ErrInvalidIterator is flagged when an iterator does not reference a live
// element of the container it is used with.
const ErrInvalidIterator = ContainerError("invalid iterator")

// EraseError is returned by the ordered containers when an erase operation
// fails. It keeps the cause available to errors.Is and errors.As.
type EraseError struct {
	Container string // name of the container type, e.g. "map"
	Err       error  // the underlying cause
}

// NewEraseError wraps err as an EraseError for container and traces it to the
// core tracer.
func NewEraseError(container string, err error) error {
	T().Errorf("%s: erase failed: %v", container, err)
	return &EraseError{Container: container, Err: err}
}

func (e *EraseError) Error() string {
	if e.Err == nil {
		return e.Container + ": erase failed"
	}
	return e.Container + ": erase failed: " + e.Err.Error()
}

func (e *EraseError) Unwrap() error {
	return e.Err
}

package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrObjectExists       = errors.New("object already exists")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrNoRouteFound       = errors.New("no route found")
	ErrRemoteLookupFailed = errors.New("remote lookup failed")
)

// ObjectNotFoundError reports that an object addressed by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectExistsError reports a write rejected because its unique key is taken.
type ObjectExistsError struct {
	ParamName string
	Key       any
	Cause     error
}

func NewObjectExistsError(paramName string, key any) *ObjectExistsError {
	return &ObjectExistsError{ParamName: paramName, Key: key}
}

func NewObjectExistsErrorWithCause(paramName string, key any, cause error) *ObjectExistsError {
	return &ObjectExistsError{ParamName: paramName, Key: key, Cause: cause}
}

func (e *ObjectExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrObjectExists, e.ParamName, sanitize(e.Key), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectExists, e.ParamName, sanitize(e.Key))
}

func (e *ObjectExistsError) Unwrap() error {
	return ErrObjectExists
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NoRouteFoundError is the business-level miss of an action resolution: the rule
// set has no Action for the route at the given position. Empty fields were not
// supplied by the caller.
type NoRouteFoundError struct {
	ActionType        string
	RouteID           string
	LocationKey       string
	LocationGroupName string
}

func NewNoRouteFoundError(actionType, routeID, locationKey, locationGroupName string) *NoRouteFoundError {
	return &NoRouteFoundError{
		ActionType:        actionType,
		RouteID:           routeID,
		LocationKey:       locationKey,
		LocationGroupName: locationGroupName,
	}
}

func (e *NoRouteFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: no %q action for route [%s]", ErrNoRouteFound, e.ActionType, sanitize(e.RouteID))
	if e.LocationKey != "" {
		fmt.Fprintf(&b, ", location [%s]", sanitize(e.LocationKey))
	}
	if e.LocationGroupName != "" {
		fmt.Fprintf(&b, ", location group [%s]", sanitize(e.LocationGroupName))
	}
	return b.String()
}

func (e *NoRouteFoundError) Unwrap() error {
	return ErrNoRouteFound
}

// RemoteLookupFailedError reports that a hypermedia link could not be resolved
// into a representation. Cause is kept reachable for errors.Is/As.
type RemoteLookupFailedError struct {
	Href  string
	Cause error
}

func NewRemoteLookupFailedError(href string, cause error) *RemoteLookupFailedError {
	return &RemoteLookupFailedError{Href: href, Cause: cause}
}

func (e *RemoteLookupFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrRemoteLookupFailed, sanitize(e.Href), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRemoteLookupFailed, sanitize(e.Href))
}

func (e *RemoteLookupFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRemoteLookupFailed}
	}
	return []error{ErrRemoteLookupFailed, e.Cause}
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

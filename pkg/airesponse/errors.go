package airesponse

import "errors"

var (
	ErrNilPayload        = errors.New("airesponse: nil payload")
	ErrUnrecognizedShape = errors.New("airesponse: unrecognized payload shape")
	ErrInvalidOutput     = errors.New("airesponse: output field is not a string")
	ErrInvalidCandidate  = errors.New("airesponse: invalid candidate element")
	ErrDecode            = errors.New("airesponse: undecodable body")
)

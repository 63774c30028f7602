package streams

import "errors"

var ErrStreamFull = errors.New("report stream partition is full")

const (
	codeInternalConsumerPanic = "STR_9000"
)

package eventlog

import "errors"

// ErrDisposed is returned by write attempts after the logger observed the
// queue-closed notification.
var ErrDisposed = errors.New("logger is disposed")

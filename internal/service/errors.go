package service

import "errors"

// ErrDispatch marks failures of the outbound mail transport.
var ErrDispatch = errors.New("mail dispatch error")

package clientip

import "errors"

var ErrNoClientIP = errors.New("clientip: no valid client address")

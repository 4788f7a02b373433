package validate

import "errors"

var ErrNoConfigFile = errors.New("no config file provided")

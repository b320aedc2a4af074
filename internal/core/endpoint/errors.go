package endpoint

import (
	"errors"
)

var (
	// ErrSingleUse 一次性端点被重复调用
	ErrSingleUse = errors.New("single-use endpoint already used")
)

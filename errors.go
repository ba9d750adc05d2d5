package spmcring

import "fmt"

var (
	ErrInvalidCapacity = fmt.Errorf("capacity must be > 0")
)

package repository

import "errors"

// ErrNoRecords indicates the table holds no rows yet.
var ErrNoRecords = errors.New("no records")

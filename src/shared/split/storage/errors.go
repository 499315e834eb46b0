package splitstorage

import "github.com/cockroachdb/errors/domains"

var (
	RecordNotFoundMark = domains.New("record_not_found")
	DefaultErrorMark   = domains.New("default_error")
)

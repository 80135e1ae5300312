package customerrors

import "errors"

var (
	ErrInvalidVariant        = errors.New("unknown options table variant, expected ETF or STK")
	ErrDataSourceUnavailable = errors.New("market data source unavailable")
	ErrInvalidTableName      = errors.New("table name is not a valid SQL identifier")
	ErrSessionNotFound       = errors.New("chat session not found")
	ErrInvalidPathComponent  = errors.New("path component contains illegal characters")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
)

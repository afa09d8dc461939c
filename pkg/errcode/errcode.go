package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Identifier errors
	InvalidIDError

	// Transport errors
	HTTPRequestError
	HTTPReadBodyError

	// Metadata errors
	MetadataParseError
	MetadataMissingFieldError

	// Data matrix errors
	DataReadError

	// Term cache errors
	TermCacheOpenError
	TermCacheQueryError
	TermCacheInsertError
	TermLookupError
	TermDecodeError

	// Quality flag errors
	QCColumnExistsError
)

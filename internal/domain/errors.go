package domain

import (
	"errors"
	"fmt"
)

// ErrorType identifies the precise failure kind so front ends can render an
// exact diagnostic instead of a generic one.
type ErrorType string

const (
	// Input validation
	ErrorTypeInputNotFound    ErrorType = "input_not_found"
	ErrorTypeInputIsDirectory ErrorType = "input_is_directory"
	ErrorTypeOutputDirMissing ErrorType = "output_dir_missing"
	ErrorTypeOutputDirIsFile  ErrorType = "output_dir_is_file"
	ErrorTypeWorkingDirectory ErrorType = "working_directory"

	// Format detection
	ErrorTypeUnsupportedFormat ErrorType = "unsupported_format"
	ErrorTypeInvalidEncoding   ErrorType = "invalid_encoding"

	// Containers
	ErrorTypeArchiveOpen  ErrorType = "archive_open"
	ErrorTypeArchiveEntry ErrorType = "archive_entry"
	ErrorTypeEntryName    ErrorType = "entry_name"
	ErrorTypeDocumentOpen ErrorType = "document_open"
	ErrorTypePageResolve  ErrorType = "page_resolve"

	// I/O
	ErrorTypeCreateOutputDir ErrorType = "create_output_dir"
	ErrorTypeCreateTempFile  ErrorType = "create_temp_file"
	ErrorTypeCopyEntry       ErrorType = "copy_entry"
	ErrorTypeRenameTemp      ErrorType = "rename_temp"
	ErrorTypeWriteImage      ErrorType = "write_image"
)

// DomainError represents a decoding error with context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// ErrorTypeOf reports the type of err, or "" if err is not a DomainError.
func ErrorTypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return ""
}

// Common error constructors
func InputNotFoundError(path string) *DomainError {
	return NewError(ErrorTypeInputNotFound, fmt.Sprintf("input file not found: %s", path), nil)
}

func InputIsDirectoryError(path string) *DomainError {
	return NewError(ErrorTypeInputIsDirectory, fmt.Sprintf("input is a directory, not a file: %s", path), nil)
}

func OutputDirMissingError(path string) *DomainError {
	return NewError(ErrorTypeOutputDirMissing, fmt.Sprintf("output directory not found: %s", path), nil)
}

func OutputDirIsFileError(path string) *DomainError {
	return NewError(ErrorTypeOutputDirIsFile, fmt.Sprintf("output path is a file, not a directory: %s", path), nil)
}

func WorkingDirectoryError(err error) *DomainError {
	return NewError(ErrorTypeWorkingDirectory, "failed to resolve current working directory", err)
}

// UnsupportedFormatError reports an extension no extractor handles. An input
// without any extension carries an empty ext.
func UnsupportedFormatError(ext string) *DomainError {
	if ext == "" {
		return NewError(ErrorTypeUnsupportedFormat, "input file has no extension", nil)
	}
	return NewError(ErrorTypeUnsupportedFormat, fmt.Sprintf("unsupported input format: %s", ext), nil)
}

func InvalidEncodingError(what string) *DomainError {
	return NewError(ErrorTypeInvalidEncoding, fmt.Sprintf("%s is not valid UTF-8", what), nil)
}

func ArchiveOpenError(path string, err error) *DomainError {
	return NewError(ErrorTypeArchiveOpen, fmt.Sprintf("failed to open archive: %s", path), err)
}

func ArchiveEntryError(name string, err error) *DomainError {
	return NewError(ErrorTypeArchiveEntry, fmt.Sprintf("failed to read archive entry: %s", name), err)
}

func EntryNameError(name string) *DomainError {
	return NewError(ErrorTypeEntryName, fmt.Sprintf("archive entry has a non-UTF-8 extension: %q", name), nil)
}

func DocumentOpenError(path string, err error) *DomainError {
	return NewError(ErrorTypeDocumentOpen, fmt.Sprintf("failed to open document: %s", path), err)
}

func PageResolveError(page int, err error) *DomainError {
	return NewError(ErrorTypePageResolve, fmt.Sprintf("failed to resolve page %d", page), err)
}

func CreateOutputDirError(path string, err error) *DomainError {
	return NewError(ErrorTypeCreateOutputDir, fmt.Sprintf("failed to create output directory: %s", path), err)
}

func CreateTempFileError(path string, err error) *DomainError {
	return NewError(ErrorTypeCreateTempFile, fmt.Sprintf("failed to create temporary file: %s", path), err)
}

func CopyEntryError(name, dest string, err error) *DomainError {
	return NewError(ErrorTypeCopyEntry, fmt.Sprintf("failed to extract %s to %s", name, dest), err)
}

func RenameTempError(from, to string, err error) *DomainError {
	return NewError(ErrorTypeRenameTemp, fmt.Sprintf("failed to rename %s to %s", from, to), err)
}

func WriteImageError(page int, path string, err error) *DomainError {
	return NewError(ErrorTypeWriteImage, fmt.Sprintf("failed to write image %d to %s", page, path), err)
}

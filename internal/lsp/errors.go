package lsp

import (
	"errors"
	"fmt"
)

// Standard errors returned by the language session.
var (
	// ErrDocumentNotOpen indicates the document is not open.
	ErrDocumentNotOpen = errors.New("document not open")

	// ErrDocumentAlreadyOpen indicates the document is already open.
	ErrDocumentAlreadyOpen = errors.New("document already open")
)

// RPCError is the JSON-RPC-style error object carried in error responses.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Standard JSON-RPC error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

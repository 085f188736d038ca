package domain

import "errors"

// ErrSchemaLoad is returned when the schema file cannot be read or parsed.
var ErrSchemaLoad = errors.New("schema load failed")

// ErrSchemaCompile is returned when the schema is rejected by the engine or by strict mode.
var ErrSchemaCompile = errors.New("schema compilation failed")

// ErrDiscovery is returned when the candidate pattern cannot be evaluated.
var ErrDiscovery = errors.New("candidate discovery failed")

// ErrDocumentRead is returned when a candidate file cannot be read.
var ErrDocumentRead = errors.New("document read failed")

// ErrDocumentParse is returned when a candidate file is not well-formed JSON.
var ErrDocumentParse = errors.New("document parse failed")

package entity

import "errors"

// Sentinelas devolvidas pelos repositórios; os use cases traduzem para os
// erros estruturados expostos ao caller.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

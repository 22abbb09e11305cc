// Package calc provides expression evaluation functionality and error definitions.
package calc

import "errors"

// Error definitions for calc package.
var (
	ErrEvaluation = errors.New("expression evaluation failed")
)

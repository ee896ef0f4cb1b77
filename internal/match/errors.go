package match

import (
	"fmt"
)

type SyntaxError struct {
	Line string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cannot parse match %q - expected <file>:<line>:<text> (pipe in line-numbered output, e.g. grep -n or rg -n)", e.Line)
}

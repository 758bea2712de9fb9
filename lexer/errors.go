package lexer

import "fmt"

// IllegalCharacter is raised when a character cannot be accepted by the
// current lexer state, carrying the exact 1-based line and column where the
// offending character begins. Lexing aborts immediately on this error; there
// is no recovery (spec Non-goals: no error recovery).
type IllegalCharacter struct {
	Line   int
	Column int
}

func (e *IllegalCharacter) Error() string {
	return fmt.Sprintf("%d:%d: illegal character", e.Line, e.Column)
}

package responses

import "errors"

// ErrNoCompletion is returned when a response stream lacks the tagged status
// response completing the command.
var ErrNoCompletion = errors.New("imap: no tagged completion in response")

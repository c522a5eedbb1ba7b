// Package imap implements the selected-state core of an IMAP4rev1 client:
// response parsing, UID sets, message flags and the command transport.
//
// IMAP4rev1 is defined in RFC 3501.
package imap

// IMAP command names used by this package and its sub-packages.
const (
	Capability   = "CAPABILITY"
	Noop         = "NOOP"
	Logout       = "LOGOUT"
	Authenticate = "AUTHENTICATE"
	Login        = "LOGIN"
	Select       = "SELECT"
	Examine      = "EXAMINE"
	UIDStore     = "UID STORE"
	UIDCopy      = "UID COPY"
	UIDFetch     = "UID FETCH"
	UIDSearch    = "UID SEARCH"
	UIDExpunge   = "UID EXPUNGE"
)

// A connection state.
// See RFC 3501 section 3.
type ConnState int

const (
	// In the not authenticated state, the client MUST supply
	// authentication credentials before most commands will be
	// permitted.
	NotAuthenticatedState ConnState = 1

	// In the authenticated state, the client is authenticated and MUST
	// select a mailbox to access before commands that affect messages
	// will be permitted.
	AuthenticatedState ConnState = 1 << 1

	// In a selected state, a mailbox has been selected to access.
	SelectedState ConnState = AuthenticatedState + 1<<2

	// In the logout state, the connection is being terminated.
	LogoutState ConnState = 0
)

// Logger receives diagnostics about protocol deviations the client recovered
// from.
type Logger interface {
	Printf(format string, args ...interface{})
}

package imap

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Check if a string is 8-bit clean.
func isASCII(s string) bool {
	for _, c := range s {
		if c > unicode.MaxASCII || unicode.IsControl(c) {
			return false
		}
	}
	return true
}

// Quote returns s as an IMAP quoted string.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(dquote)
	for i := 0; i < len(s); i++ {
		if s[i] == dquote || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte(dquote)
	return sb.String()
}

// IsQuotable reports whether s can be sent as an atom or a quoted string.
// Strings with 8-bit characters or line breaks must be sent as literals.
func IsQuotable(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == 0 || c == cr || c == lf || c > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// LiteralPrefix returns the "{n}" header announcing s as a literal.
func LiteralPrefix(s string) string {
	return string(literalStart) + strconv.Itoa(len(s)) + string(literalEnd)
}

// FormatAstring returns s as an atom if it is a valid one, as a quoted string
// otherwise. s must be quotable, see IsQuotable; mailbox names should be
// encoded with the utf7 package first.
func FormatAstring(s string) string {
	specials := string([]rune{dquote, '\\', listStart, listEnd, literalStart, respCodeEnd, sp, '%', '*'})
	if s == "" || strings.ToUpper(s) == nilAtom || strings.ContainsAny(s, specials) || !isASCII(s) {
		return Quote(s)
	}
	return s
}

// Writer writes command lines.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer. If w is not already a *bufio.Writer it is
// wrapped in one.
func NewWriter(w io.Writer) *Writer {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &Writer{w: bw}
}

// WriteCommand writes "<tag> <command>\r\n" and flushes.
func (w *Writer) WriteCommand(tag, command string) error {
	if _, err := w.w.WriteString(tag); err != nil {
		return err
	}
	if err := w.w.WriteByte(sp); err != nil {
		return err
	}
	return w.WriteLine(command)
}

// WriteLine writes line followed by CRLF and flushes.
func (w *Writer) WriteLine(line string) error {
	if _, err := w.w.WriteString(line); err != nil {
		return err
	}
	if _, err := w.w.WriteString(crlf); err != nil {
		return err
	}
	return w.w.Flush()
}

package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and a stack trace. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err so that Is(err, markErr) holds without changing its message.
// With a nil err the mark itself is returned, so callers can still match it.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference by identity, Is method, or mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack for logs, dropping blank lines.
// maxLines <= 0 keeps every line.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	raw := strings.Split(fmt.Sprintf("%+v", err), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			continue
		}
		lines = append(lines, l)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}

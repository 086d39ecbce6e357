/*
 * Copyright (c) 2026, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// Lookahead is a single-slot token buffer sitting between a scanner and a
// parser. At most one token is ever held.
type Lookahead struct {
	token  Token
	peeked bool
}

// Next returns the buffered token if there is one, otherwise it scans a fresh
// token with emit.
func (l *Lookahead) Next(emit func() Token) Token {
	if l.peeked {
		l.peeked = false
		return l.token
	}
	return emit()
}

// Peek returns the upcoming token without consuming it. Repeated calls return
// the same token until Next is called.
func (l *Lookahead) Peek(emit func() Token) Token {
	if !l.peeked {
		l.token = emit()
		l.peeked = true
	}
	return l.token
}

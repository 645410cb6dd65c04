// Copyright © 2016 Abcum Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "strings"

// Scanner is a lexical scanner over a single line of input. It holds
// its position as a cursor into a rune slice, the way the original
// implementation kept a text/index pair, rather than a single-rune
// pushback buffer — several of the recognizers below need to try and
// back out of a multi-rune match before falling through to the next
// candidate.
type Scanner struct {
	text []rune
	pos  int
}

// NewScanner returns a scanner positioned at the start of line.
func NewScanner(line string) *Scanner {
	return &Scanner{text: []rune(line)}
}

// Pos returns the current cursor offset, in runes.
func (s *Scanner) Pos() int {
	return s.pos
}

func (s *Scanner) eof() bool {
	return s.pos >= len(s.text)
}

func (s *Scanner) at(i int) rune {
	if s.pos+i >= len(s.text) {
		return 0
	}
	return s.text[s.pos+i]
}

func (s *Scanner) skipBlank() {
	for !s.eof() && (s.text[s.pos] == ' ' || s.text[s.pos] == '\t') {
		s.pos++
	}
}

// Scan reads the next token, restricting recognition to accept when it
// is non-empty. Recognizers are tried in the declared order regardless
// of which are accepted; a type absent from accept is simply skipped.
func (s *Scanner) Scan(accept ...Token) (tok Token, lit string, val interface{}, err error) {

	s.skipBlank()

	for _, cand := range order {

		if !accepts(accept, cand) {
			continue
		}

		start := s.pos

		switch cand {
		case OP_EQ:
			if s.at(0) == '=' {
				s.pos++
				return OP_EQ, "=", nil, nil
			}
		case OP_NE:
			if s.at(0) == '!' && s.at(1) == '=' {
				s.pos += 2
				return OP_NE, "!=", nil, nil
			}
		case OP_LT:
			if s.at(0) == '<' {
				s.pos++
				return OP_LT, "<", nil, nil
			}
		case OP_GT:
			if s.at(0) == '>' {
				s.pos++
				return OP_GT, ">", nil, nil
			}
		case OP_PRE:
			if s.at(0) == '~' && s.at(1) == '=' {
				s.pos += 2
				return OP_PRE, "~=", nil, nil
			}
		case OP_POST:
			if s.at(0) == '=' && s.at(1) == '~' {
				s.pos += 2
				return OP_POST, "=~", nil, nil
			}
		case OP_IN:
			if s.at(0) == '~' {
				s.pos++
				return OP_IN, "~", nil, nil
			}
		case ID:
			if lit, ok := s.scanRunes(isIDChar); ok {
				return ID, lit, nil, nil
			}
		case KEY:
			if lit, ok := s.scanKey(); ok {
				return KEY, lit, nil, nil
			}
		case NUMBER:
			if lit, v, ok := s.scanNumber(); ok {
				return NUMBER, lit, v, nil
			}
		case STRING:
			if lit, v, ok := s.scanString(); ok {
				return STRING, lit, v, nil
			}
		case LINEEND:
			if s.eof() {
				return LINEEND, "", nil, nil
			}
			if s.at(0) == '\n' {
				s.pos++
				return LINEEND, "\n", nil, nil
			}
		}

		s.pos = start
	}

	if s.eof() {
		return EOF, "", nil, nil
	}

	return ILLEGAL, "", nil, &ParseError{Pos: s.pos, Snippet: snippet(string(s.text[s.pos:]))}
}

func isIDChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch == '.' || ch == '_' || ch == '-'
}

func isKeyStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

// scanRunes greedily consumes runes matching pred, returning false if
// nothing was consumed.
func (s *Scanner) scanRunes(pred func(rune) bool) (string, bool) {
	start := s.pos
	for !s.eof() && pred(s.text[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", false
	}
	return string(s.text[start:s.pos]), true
}

func (s *Scanner) scanKey() (string, bool) {
	if s.eof() || !isKeyStart(s.text[s.pos]) {
		return "", false
	}
	start := s.pos
	s.pos++
	for !s.eof() && isIDChar(s.text[s.pos]) {
		s.pos++
	}
	return string(s.text[start:s.pos]), true
}

// scanNumber matches \d+(\.\d+)? followed by whitespace or end of
// input; on a partial match (e.g. "1.0.3") it rewinds entirely.
func (s *Scanner) scanNumber() (lit string, val interface{}, ok bool) {

	start := s.pos

	if s.eof() || !isDigit(s.text[s.pos]) {
		return "", nil, false
	}

	for !s.eof() && isDigit(s.text[s.pos]) {
		s.pos++
	}

	hasFrac := false

	if s.at(0) == '.' && isDigit(s.at(1)) {
		hasFrac = true
		s.pos++
		for !s.eof() && isDigit(s.text[s.pos]) {
			s.pos++
		}
	}

	if !s.eof() && !isWhitespace(s.text[s.pos]) {
		s.pos = start
		return "", nil, false
	}

	lit = string(s.text[start:s.pos])
	val = decodeNumber(lit, hasFrac)
	return lit, val, true
}

// scanString matches a "-delimited literal where an embedded \" does
// not terminate it, then decodes its escapes.
func (s *Scanner) scanString() (lit string, val interface{}, ok bool) {

	if s.eof() || s.text[s.pos] != '"' {
		return "", nil, false
	}

	start := s.pos
	i := s.pos + 1
	closed := false

	for i < len(s.text) {
		if s.text[i] == '\\' && i+1 < len(s.text) {
			i += 2
			continue
		}
		if s.text[i] == '"' {
			i++
			closed = true
			break
		}
		i++
	}

	if !closed {
		s.pos = start
		return "", nil, false
	}

	lit = string(s.text[start:i])
	s.pos = i

	return lit, decodeString(lit), true
}

// decodeString unquotes a STRING literal's body, per the spec's escape
// table: \r \n \\ \" decode to CR, LF, backslash, double-quote.
func decodeString(lit string) string {
	body := lit
	if len(body) >= 2 && body[0] == '"' && body[len(body)-1] == '"' {
		body = body[1 : len(body)-1]
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			switch body[i+1] {
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case '"':
				b.WriteByte('"')
				i++
				continue
			}
		}
		b.WriteByte(body[i])
	}
	return b.String()
}

// decodeNumber narrows a matched numeric literal to int64 when it has
// no fractional part, or when decoding as float64 and truncating to
// int64 round-trips exactly.
func decodeNumber(lit string, hasFrac bool) interface{} {
	if !hasFrac {
		return parseInt(lit)
	}
	f := parseFloat(lit)
	if t := float64(int64(f)); t == f {
		return int64(f)
	}
	return f
}

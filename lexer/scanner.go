package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var eof = rune(0)

// Tokenize runs a full tokenization pass over src and returns the token
// sequence. The result is never empty: its last element is always exactly
// one EOF token, so Tokenize(lang, "") returns [EOF]. Tokenize never fails;
// unrecognized characters degrade to single-character OPERATOR tokens.
func Tokenize(lang *Language, src string) []Token {
	s := NewScanner(lang, strings.NewReader(src))
	var toks []Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

// Scanner is a streaming lexical scanner for one dialect. Each Scanner owns
// its cursor state for a single pass; scanners on independent inputs are
// safe to run concurrently.
type Scanner struct {
	lang        *Language
	reader      *bufio.Reader
	position    Position
	eof         bool
	bufferIndex int
	bufferSize  int
	buffer      [64]struct {
		ch       rune
		position Position
	}
}

// NewScanner returns a new instance of Scanner reading from reader.
func NewScanner(lang *Language, reader io.Reader) *Scanner {
	return &Scanner{
		lang:     lang,
		reader:   bufio.NewReader(reader),
		position: Position{Line: 1, Column: 1},
	}
}

// read reads the next rune from the buffered reader.
// Returns rune(0) if an error occurs (or io.EOF is returned).
func (s *Scanner) read() (rune, Position) {
	// If we have unread characters then read them off the buffer first.
	if s.bufferSize > 0 {
		s.bufferSize--
		return s.curr()
	}

	ch, _, err := s.reader.ReadRune()
	if err != nil {
		ch = eof
	}

	// Save character and position to the buffer.
	s.bufferIndex = (s.bufferIndex + 1) % len(s.buffer)
	buffer := &s.buffer[s.bufferIndex]
	buffer.ch, buffer.position = ch, s.position

	// Update position. Only count EOF once.
	if ch == '\n' {
		s.position.Line++
		s.position.Column = 1
	} else if !s.eof {
		s.position.Column++
	}

	if ch == eof {
		s.eof = true
	}

	return s.curr()
}

// curr returns the last read character and position.
func (s *Scanner) curr() (rune, Position) {
	bufferIndex := (s.bufferIndex - s.bufferSize + len(s.buffer)) % len(s.buffer)
	buffer := &s.buffer[bufferIndex]
	return buffer.ch, buffer.position
}

// Unscan pushes the previously read character back onto the buffer.
func (s *Scanner) Unscan() {
	s.bufferSize++
}

// Scan returns the next token. After the end of input it keeps returning
// EOF tokens, so a consumer may safely over-read.
func (s *Scanner) Scan() Token {
	ch, pos := s.read()

	// Skip whitespace runs and line comments. Newlines are significant
	// and fall through to the classification below.
	for {
		if isWhitespace(ch) {
			s.skipWhitespace()
		} else if ch == '/' {
			if ch2, _ := s.read(); ch2 != '/' {
				s.Unscan()
				break
			}
			s.skipLineComment()
		} else {
			break
		}
		ch, pos = s.read()
	}

	switch {
	case ch == eof:
		return Token{Type: EOF, Pos: pos}
	case ch == '\n':
		return Token{Type: NEWLINE, Text: "\n", Pos: pos}
	case ch == '"' || ch == '\'':
		return s.scanString(ch, pos)
	case isDigit(ch):
		s.Unscan()
		return s.scanNumber()
	case isLetter(ch) || ch == '_':
		s.Unscan()
		return s.scanIdentifier()
	}

	switch ch {
	case '(':
		return Token{Type: LPAREN, Text: "(", Pos: pos}
	case ')':
		return Token{Type: RPAREN, Text: ")", Pos: pos}
	case '{':
		return Token{Type: LBRACE, Text: "{", Pos: pos}
	case '}':
		return Token{Type: RBRACE, Text: "}", Pos: pos}
	case '[':
		return Token{Type: LBRACKET, Text: "[", Pos: pos}
	case ']':
		return Token{Type: RBRACKET, Text: "]", Pos: pos}
	case ',':
		return Token{Type: COMMA, Text: ",", Pos: pos}
	case ';':
		return Token{Type: SEMICOLON, Text: ";", Pos: pos}
	case ':':
		return Token{Type: COLON, Text: ":", Pos: pos}
	case '.':
		return Token{Type: DOT, Text: ".", Pos: pos}
	case '@':
		return Token{Type: AT, Text: "@", Pos: pos}
	case '#':
		return Token{Type: HASH, Text: "#", Pos: pos}
	case '$':
		return Token{Type: DOLLAR, Text: "$", Pos: pos}
	}

	// Two-character operators take priority over single-character handling.
	ch2, _ := s.read()
	if tok, ok := s.lang.twoChar(ch, ch2); ok {
		return Token{Type: tok, Text: string(ch) + string(ch2), Pos: pos}
	}
	s.Unscan()

	if ch == '=' {
		return Token{Type: ASSIGN, Text: "=", Pos: pos}
	}

	// Catch-all: the scanner has no reject state. The parser sees an
	// unexpected OPERATOR token and reports the error with its position.
	return Token{Type: OPERATOR, Text: string(ch), Pos: pos}
}

// skipWhitespace consumes contiguous space, tab and carriage-return
// characters.
func (s *Scanner) skipWhitespace() {
	for {
		if ch, _ := s.read(); !isWhitespace(ch) {
			s.Unscan()
			break
		}
	}
}

// skipLineComment consumes characters up to, but not including, the next
// newline or the end of input.
func (s *Scanner) skipLineComment() {
	for {
		if ch, _ := s.read(); ch == '\n' || ch == eof {
			s.Unscan()
			break
		}
	}
}

// scanString consumes a quoted literal, decoding backslash escapes. The
// opening and closing quotes are not part of the token text. An
// unterminated literal ends at the end of input with whatever accumulated.
func (s *Scanner) scanString(quote rune, pos Position) Token {
	var buf bytes.Buffer
	for {
		ch, _ := s.read()
		if ch == eof {
			s.Unscan()
			break
		}
		if ch == quote {
			break
		}
		if ch == '\\' {
			esc, _ := s.read()
			if esc == eof {
				s.Unscan()
				break
			}
			switch esc {
			case 'n':
				buf.WriteRune('\n')
			case 't':
				buf.WriteRune('\t')
			case '\\':
				buf.WriteRune('\\')
			default:
				// Unknown escapes, including escaped quotes, pass
				// through without the backslash.
				buf.WriteRune(esc)
			}
			continue
		}
		buf.WriteRune(ch)
	}
	return Token{Type: STRING, Text: buf.String(), Pos: pos}
}

// scanNumber consumes a numeric literal: digits with at most one decimal
// point, optionally followed by a scientific-notation suffix. A second '.'
// ends the run and is left for the next token.
func (s *Scanner) scanNumber() Token {
	ch, pos := s.read()

	var buf bytes.Buffer
	buf.WriteRune(ch)

	dot := false
	for {
		ch, _ = s.read()
		if isDigit(ch) {
			buf.WriteRune(ch)
		} else if ch == '.' && !dot {
			dot = true
			buf.WriteRune(ch)
		} else {
			break
		}
	}

	if ch == 'e' || ch == 'E' {
		s.scanExponent(ch, &buf)
	} else {
		s.Unscan()
	}

	// The accumulated text is always a valid float at this point.
	value, _ := strconv.ParseFloat(buf.String(), 64)
	return Token{Type: NUMBER, Text: buf.String(), Value: value, Pos: pos}
}

// scanExponent consumes the already-read e/E marker and the exponent that
// follows it. The marker is only kept when a digit, or a sign and a digit,
// comes next; otherwise everything is pushed back so that "10e" lexes as a
// number followed by an identifier rather than a malformed literal.
func (s *Scanner) scanExponent(marker rune, buf *bytes.Buffer) {
	ch, _ := s.read()
	switch {
	case isDigit(ch):
		buf.WriteRune(marker)
		buf.WriteRune(ch)
	case ch == '+' || ch == '-':
		ch2, _ := s.read()
		if !isDigit(ch2) {
			s.Unscan()
			s.Unscan()
			s.Unscan()
			return
		}
		buf.WriteRune(marker)
		buf.WriteRune(ch)
		buf.WriteRune(ch2)
	default:
		s.Unscan()
		s.Unscan()
		return
	}

	for {
		ch, _ := s.read()
		if !isDigit(ch) {
			s.Unscan()
			break
		}
		buf.WriteRune(ch)
	}
}

// scanIdentifier consumes a maximal run of identifier characters, then
// classifies the result against the dialect's keyword table. Keyword
// matching is case-insensitive; the token keeps the original casing.
func (s *Scanner) scanIdentifier() Token {
	ch, pos := s.read()

	var buf bytes.Buffer
	buf.WriteRune(ch)

	for {
		ch, _ = s.read()
		if !isLetter(ch) && !isDigit(ch) && ch != '_' {
			s.Unscan()
			break
		}
		buf.WriteRune(ch)
	}

	text := buf.String()
	if tok, ok := s.lang.Keywords[strings.ToLower(text)]; ok {
		return Token{Type: tok, Text: text, Pos: pos}
	}
	return Token{Type: IDENTIFIER, Text: text, Pos: pos}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

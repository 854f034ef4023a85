package lexer

// TokenType identifies the lexical class of a token.
type TokenType int

// Token types shared by the Synapse and Quantum-Net dialects.
const (
	// Special tokens
	EOF TokenType = iota
	NEWLINE

	// Literals
	IDENTIFIER
	NUMBER
	STRING

	// OPERATOR is the single-character fallback for anything the scanner
	// does not recognize. The lexer never rejects input; the parser decides
	// whether an OPERATOR token is a syntax error.
	OPERATOR

	// Delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	DOT       // .
	AT        // @
	HASH      // #
	DOLLAR    // $

	// Operators
	ASSIGN   // =
	ARROW    // ->
	DARROW   // =>
	PIPE     // |>
	PARALLEL // ||
	CASCADE  // >>

	// Keywords common to both dialects
	LET
	FUNCTION
	RETURN
	IF
	ELSE
	FOR
	WHILE
	MEASURE
	TRUE
	FALSE

	// Synapse keywords
	EXPERIMENT
	RUN
	CONST
	IN
	IMPORT
	UNCERTAIN
	PROPAGATE
	OBSERVE
	NULL

	// Quantum-Net keywords
	NETWORK
	NODE
	LINK
	CHANNEL
	PROTOCOL
	SEND
	RECEIVE
	ENTANGLE
	WAIT
)

// Position specifies the line and character position of a token.
// Line and Column are both 1-based.
type Position struct {
	Line   int
	Column int
}

// Token is an immutable lexical unit produced by one tokenization pass.
// Text holds the unescaped payload for STRING tokens, the original-case
// text for identifiers and keywords, and the raw character(s) otherwise;
// it is empty for EOF. Value is set only for NUMBER tokens.
type Token struct {
	Type  TokenType
	Text  string
	Value float64
	Pos   Position
}

var tokens = [...]string{
	EOF:     "EOF",
	NEWLINE: "NEWLINE",

	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	OPERATOR:   "OPERATOR",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	DOT:       ".",
	AT:        "@",
	HASH:      "#",
	DOLLAR:    "$",

	ASSIGN:   "=",
	ARROW:    "->",
	DARROW:   "=>",
	PIPE:     "|>",
	PARALLEL: "||",
	CASCADE:  ">>",

	LET:      "let",
	FUNCTION: "function",
	RETURN:   "return",
	IF:       "if",
	ELSE:     "else",
	FOR:      "for",
	WHILE:    "while",
	MEASURE:  "measure",
	TRUE:     "true",
	FALSE:    "false",

	EXPERIMENT: "experiment",
	RUN:        "run",
	CONST:      "const",
	IN:         "in",
	IMPORT:     "import",
	UNCERTAIN:  "uncertain",
	PROPAGATE:  "propagate",
	OBSERVE:    "observe",
	NULL:       "null",

	NETWORK:  "network",
	NODE:     "node",
	LINK:     "link",
	CHANNEL:  "channel",
	PROTOCOL: "protocol",
	SEND:     "send",
	RECEIVE:  "receive",
	ENTANGLE: "entangle",
	WAIT:     "wait",
}

// String returns the string representation of the token type.
func (tok TokenType) String() string {
	if tok >= 0 && tok < TokenType(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

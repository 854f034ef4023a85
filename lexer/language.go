package lexer

// Operator is a two-character operator entry in a dialect's operator table.
type Operator struct {
	First  rune
	Second rune
	Type   TokenType
}

// Language describes a dialect of the DSL family: its reserved words and
// its two-character operators. Definitions are built once at package init
// and never mutated, so they are safe to share across concurrent scanners.
type Language struct {
	Name string

	// Keywords maps the lowercase spelling of each reserved word to its
	// token type. Lookups are case-insensitive; tokens keep the original
	// casing from the source.
	Keywords map[string]TokenType

	// Operators is checked in order, before single-character fallback.
	Operators []Operator
}

func (l *Language) twoChar(first, second rune) (TokenType, bool) {
	for _, op := range l.Operators {
		if op.First == first && op.Second == second {
			return op.Type, true
		}
	}
	return 0, false
}

var twoCharOperators = []Operator{
	{'-', '>', ARROW},
	{'=', '>', DARROW},
	{'|', '>', PIPE},
	{'|', '|', PARALLEL},
	{'>', '>', CASCADE},
}

var sharedKeywords = map[string]TokenType{
	"let":      LET,
	"function": FUNCTION,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"measure":  MEASURE,
	"true":     TRUE,
	"false":    FALSE,
}

func keywordTable(extra map[string]TokenType) map[string]TokenType {
	table := make(map[string]TokenType, len(sharedKeywords)+len(extra))
	for word, tok := range sharedKeywords {
		table[word] = tok
	}
	for word, tok := range extra {
		table[word] = tok
	}
	return table
}

// Synapse is the general scientific-computing dialect.
var Synapse = &Language{
	Name: "synapse",
	Keywords: keywordTable(map[string]TokenType{
		"experiment": EXPERIMENT,
		"run":        RUN,
		"const":      CONST,
		"in":         IN,
		"import":     IMPORT,
		"uncertain":  UNCERTAIN,
		"propagate":  PROPAGATE,
		"observe":    OBSERVE,
		"null":       NULL,
	}),
	Operators: twoCharOperators,
}

// QuantumNet is the network-description dialect.
var QuantumNet = &Language{
	Name: "quantum-net",
	Keywords: keywordTable(map[string]TokenType{
		"network":  NETWORK,
		"node":     NODE,
		"link":     LINK,
		"channel":  CHANNEL,
		"protocol": PROTOCOL,
		"send":     SEND,
		"receive":  RECEIVE,
		"entangle": ENTANGLE,
		"wait":     WAIT,
	}),
	Operators: twoCharOperators,
}

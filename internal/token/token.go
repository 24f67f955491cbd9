package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string      // exact source text
	Literal interface{} // parsed value (string, int64, float64, bool)
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	// Identifiers and literals
	IDENT  = "IDENT"
	INT    = "INT"
	FLOAT  = "FLOAT"
	STRING = "STRING"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	BANG     = "!"
	EQ       = "=="
	NOT_EQ   = "!="

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	LBRACKET  = "["
	RBRACKET  = "]"

	// Keywords
	LET       = "LET"
	BRANCH    = "BRANCH"
	POT       = "POT"
	MERGE     = "MERGE"
	SELECT    = "SELECT"
	ABORT     = "ABORT"
	PRINT     = "PRINT"
	INPUT     = "INPUT"
	LISTPUSH  = "LISTPUSH"
	SETINSERT = "SETINSERT"
	TRUE      = "TRUE"
	FALSE     = "FALSE"
)

var keywords = map[string]TokenType{
	"let":       LET,
	"branch":    BRANCH,
	"pot":       POT,
	"merge":     MERGE,
	"select":    SELECT,
	"abort":     ABORT,
	"print":     PRINT,
	"input":     INPUT,
	"listpush":  LISTPUSH,
	"setinsert": SETINSERT,
	"true":      TRUE,
	"false":     FALSE,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

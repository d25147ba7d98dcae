package parser

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// maxCoordDigits bounds a numeric coordinate component.
const maxCoordDigits = 3

// Lexer tokenizes a single command line.
type Lexer struct {
	line string
	pos  int
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	// Initialize all to error
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	// Whitespace
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['-'] = DashToken
	chTab[','] = Comma

	// Digits
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}

	// Letters
	for c := byte('a'); c <= 'z'; c++ {
		chTab[c] = Alpha
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
	}
}

// NewLexer creates a new lexer for one line of input.
func NewLexer(line string) *Lexer {
	return &Lexer{line: line}
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the line.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		return &Token{Type: EOLToken, Column: l.pos + 1}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		return &Token{Type: NoToken}
	case DashToken:
		return &Token{Type: DashToken, Text: "-", Column: symbolStart + 1}
	case Alpha:
		return l.gatherAlpha(symbolStart)
	case Digit:
		return l.gatherNumeric(symbolStart)
	default:
		return &Token{Type: ErrorToken, Text: string(ch), Column: symbolStart + 1}
	}
}

// gatherAlpha collects a run of letters and digits and classifies it as a
// square, a square pair or a keyword.
func (l *Lexer) gatherAlpha(symbolStart int) *Token {
	for {
		t := chTab[l.currentChar()]
		if t != Alpha && t != Digit {
			break
		}
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	tok := &Token{Text: text, Column: symbolStart + 1}

	lower := strings.ToLower(text)
	if sq, ok := chess.ParseSquare(lower); ok {
		tok.Type = SquareToken
		tok.Square = sq
		return tok
	}
	if len(lower) == 4 {
		from, okFrom := chess.ParseSquare(lower[:2])
		to, okTo := chess.ParseSquare(lower[2:])
		if okFrom && okTo {
			tok.Type = PairToken
			tok.Square = from
			tok.To = to
			return tok
		}
	}
	tok.Type = WordToken
	tok.Text = lower
	return tok
}

// gatherNumeric collects a "file,rank" coordinate. Components are not
// range checked here; the engine rejects squares off the board.
func (l *Lexer) gatherNumeric(symbolStart int) *Token {
	file, ok := l.gatherDigits(symbolStart)
	if !ok || l.currentChar() != ',' {
		return l.errorFrom(symbolStart)
	}
	l.advance()

	rankStart := l.pos
	if chTab[l.currentChar()] != Digit {
		return l.errorFrom(symbolStart)
	}
	rank, ok := l.gatherDigits(rankStart)
	if !ok {
		return l.errorFrom(symbolStart)
	}

	return &Token{
		Type:   CoordToken,
		Text:   l.line[symbolStart:l.pos],
		Square: chess.C(file, rank),
		Column: symbolStart + 1,
	}
}

// gatherDigits reads digits starting at start, where the first digit may
// already have been consumed.
func (l *Lexer) gatherDigits(start int) (int, bool) {
	for chTab[l.currentChar()] == Digit {
		l.advance()
	}
	digits := l.line[start:l.pos]
	if len(digits) > maxCoordDigits {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	return n, err == nil
}

// errorFrom skips the rest of a malformed symbol and reports it.
func (l *Lexer) errorFrom(symbolStart int) *Token {
	for {
		t := chTab[l.currentChar()]
		if l.pos >= len(l.line) || t == Whitespace || t == DashToken {
			break
		}
		l.advance()
	}
	return &Token{Type: ErrorToken, Text: l.line[symbolStart:l.pos], Column: symbolStart + 1}
}

// Tokens returns all tokens on the line, excluding the final EOLToken.
func (l *Lexer) Tokens() []*Token {
	var tokens []*Token
	for {
		tok := l.NextToken()
		if tok.Type == EOLToken {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

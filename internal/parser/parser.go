package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CommandKind identifies what the player asked for.
type CommandKind int

const (
	EmptyCmd CommandKind = iota // blank line
	MoveCmd                     // move the piece on From to To
	MovesCmd                    // list legal destinations from From
	UndoCmd
	BoardCmd
	NewCmd
	StatsCmd
	HistoryCmd
	GamesCmd // list recorded games
	HelpCmd
	QuitCmd
)

var commandKindNames = [...]string{
	EmptyCmd:   "empty",
	MoveCmd:    "move",
	MovesCmd:   "moves",
	UndoCmd:    "undo",
	BoardCmd:   "board",
	NewCmd:     "new",
	StatsCmd:   "stats",
	HistoryCmd: "history",
	GamesCmd:   "games",
	HelpCmd:    "help",
	QuitCmd:    "quit",
}

// String returns the command name.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "unknown"
}

// Command is one parsed line of player input.
type Command struct {
	Kind CommandKind
	From chess.Coord
	To   chess.Coord
	Raw  string
}

// keywords maps command words and their abbreviations.
var keywords = map[string]CommandKind{
	"undo":    UndoCmd,
	"u":       UndoCmd,
	"moves":   MovesCmd,
	"m":       MovesCmd,
	"board":   BoardCmd,
	"show":    BoardCmd,
	"new":     NewCmd,
	"reset":   NewCmd,
	"stats":   StatsCmd,
	"history": HistoryCmd,
	"games":   GamesCmd,
	"help":    HelpCmd,
	"h":       HelpCmd,
	"quit":    QuitCmd,
	"q":       QuitCmd,
	"exit":    QuitCmd,
}

// ParseCommand parses a single line of input.
// Errors are *errors.ParseError values wrapping errors.ErrBadCommand.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	tokens := NewLexer(line).Tokens()
	cmd := Command{Raw: line}
	if len(tokens) == 0 {
		return cmd, nil
	}

	first := tokens[0]
	var rest []*Token
	switch first.Type {
	case WordToken:
		kind, ok := keywords[first.Text]
		if !ok {
			return cmd, parseError(line, first, "a square or command")
		}
		cmd.Kind = kind
		rest = tokens[1:]
		if kind == MovesCmd {
			if len(rest) == 0 {
				return cmd, &errors.ParseError{
					Err:      errors.ErrBadCommand,
					Input:    line,
					Column:   len(line) + 1,
					Expected: "a square",
				}
			}
			if !rest[0].IsSquare() {
				return cmd, parseError(line, rest[0], "a square")
			}
			cmd.From = rest[0].Square
			rest = rest[1:]
		}

	case PairToken:
		cmd.Kind = MoveCmd
		cmd.From, cmd.To = first.Square, first.To
		rest = tokens[1:]

	case SquareToken, CoordToken:
		cmd.Kind = MoveCmd
		cmd.From = first.Square
		rest = tokens[1:]
		if len(rest) > 0 && rest[0].Type == DashToken {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return cmd, &errors.ParseError{
				Err:      errors.ErrBadCommand,
				Input:    line,
				Column:   len(line) + 1,
				Expected: "a destination square",
			}
		}
		if !rest[0].IsSquare() {
			return cmd, parseError(line, rest[0], "a destination square")
		}
		cmd.To = rest[0].Square
		rest = rest[1:]

	default:
		return cmd, parseError(line, first, "a square or command")
	}

	if len(rest) > 0 {
		return cmd, parseError(line, rest[0], "end of command")
	}
	return cmd, nil
}

func parseError(line string, tok *Token, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrBadCommand,
		Input:    line,
		Column:   tok.Column,
		Expected: expected,
		Got:      tok.Text,
	}
}

// Parser reads commands line by line.
type Parser struct {
	reader  *bufio.Reader
	lineNum uint
	eof     bool
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// Next reads and parses the next line. It returns io.EOF once the input
// is exhausted. A malformed line yields a *errors.ParseError and the
// parser stays usable.
func (p *Parser) Next() (Command, error) {
	if p.eof {
		return Command{}, io.EOF
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return Command{}, errors.Wrap(err, "reading command")
		}
		p.eof = true
		if line == "" {
			return Command{}, io.EOF
		}
	}
	p.lineNum++
	return ParseCommand(line)
}

// LineNumber returns the number of lines read so far.
func (p *Parser) LineNumber() uint {
	return p.lineNum
}

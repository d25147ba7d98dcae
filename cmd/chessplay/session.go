package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/parser"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const helpText = `Commands:
  e2 e4, e2e4, e2-e4   move the piece on e2 to e4
  6,6 6,4              the same move as file,rank (a8 is 0,0)
  moves e2             show where the piece on e2 can go
  undo                 take back the last move
  board                draw the board
  history              list the moves played
  new                  start a new game
  stats                show recorded results
  games                list recorded games
  quit                 leave`

// Session holds everything needed to play games from one input stream.
type Session struct {
	cfg   *config.Config
	board *engine.Board
	store *storage.Storage
	out   io.Writer
	log   *log.Logger

	gameID  uuid.UUID
	started time.Time
	games   int

	// finished collects every game played when JSON output is on and is
	// written as one array when the session ends.
	finished *output.JSONWriter
}

// NewSession creates a session that starts a new game. store may be nil.
func NewSession(cfg *config.Config, store *storage.Storage) *Session {
	s := &Session{
		cfg:   cfg,
		board: engine.NewBoard(),
		store: store,
		out:   cfg.OutputFile,
		log:   log.New(cfg.LogFile, "", log.LstdFlags|log.Lmsgprefix),
	}
	if cfg.Display.JSONFormat {
		s.finished = output.NewJSONWriter(cfg.OutputFile)
	}
	s.startGame()
	return s
}

// Run reads commands until quit or end of input. The game in progress is
// recorded before returning and, with JSON output, every game of the
// session is written as {"games": [...]}.
func (s *Session) Run() error {
	defer s.flushFinished()

	p := parser.NewParser(s.cfg.InputFile)
	s.render(nil)

	for {
		cmd, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *errors.ParseError
			if stderrors.As(err, &pe) {
				s.logf(config.Commands, "line %d: %v", p.LineNumber(), err)
				fmt.Fprintf(s.out, "Unrecognised input: %v (type 'help' for commands)\n", err)
				continue
			}
			s.finishGame()
			return err
		}

		s.logf(config.Commands, "line %d: %s %q", p.LineNumber(), cmd.Kind, cmd.Raw)
		if cmd.Kind == parser.QuitCmd {
			break
		}
		s.dispatch(cmd)
	}

	s.finishGame()
	return nil
}

// dispatch executes a single command.
func (s *Session) dispatch(cmd parser.Command) {
	switch cmd.Kind {
	case parser.EmptyCmd:
	case parser.MoveCmd:
		s.move(cmd.From, cmd.To)
	case parser.MovesCmd:
		s.showMoves(cmd.From)
	case parser.UndoCmd:
		s.undo()
	case parser.BoardCmd:
		s.render(nil)
	case parser.HistoryCmd:
		s.showHistory()
	case parser.NewCmd:
		s.finishGame()
		s.startGame()
		fmt.Fprintln(s.out, "New game.")
		s.render(nil)
	case parser.StatsCmd:
		s.showStats()
	case parser.GamesCmd:
		s.showGames()
	case parser.HelpCmd:
		fmt.Fprintln(s.out, helpText)
	}
}

func (s *Session) move(from, to chess.Coord) {
	result, err := s.board.Move(from, to)
	if err != nil {
		s.logf(config.Commands, "rejected: %v", err)
		var me *errors.MoveError
		if stderrors.As(err, &me) {
			fmt.Fprintf(s.out, "%s %s.\n", output.InvalidMoveMessage, describeRejection(me.Err))
		} else {
			fmt.Fprintln(s.out, output.InvalidMoveMessage)
		}
		return
	}

	s.logf(config.Commands, "%v-%v: %v", from, to, result)
	if s.cfg.Display.ShowBoardAfterMove {
		s.render(nil)
	}
	if msg := output.MoveStatus(result, s.board); msg != "" {
		fmt.Fprintln(s.out, msg)
	}
	if s.board.GameOver() {
		s.logf(config.Events, "game over after %d plies: %s", s.board.Ply(), output.ResultString(s.board))
		fmt.Fprintln(s.out, output.GameOverHint())
	}
}

// describeRejection turns a move rejection into a short reason.
func describeRejection(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrGameOver):
		return "The game is over"
	case stderrors.Is(err, errors.ErrOutOfBounds):
		return "That square is off the board"
	case stderrors.Is(err, errors.ErrEmptySquare):
		return "There is no piece there"
	case stderrors.Is(err, errors.ErrWrongTurn):
		return "It is not that side's turn"
	case stderrors.Is(err, errors.ErrUnreachable):
		return "That piece cannot move there"
	case stderrors.Is(err, errors.ErrSelfCheck):
		return "That would leave the king in check"
	}
	return "That move is not allowed"
}

func (s *Session) showMoves(from chess.Coord) {
	p, ok := s.board.PieceAt(from)
	if !ok {
		fmt.Fprintf(s.out, "No piece on %v.\n", from)
		return
	}

	dests := s.board.LegalMoves(from)
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.String()
	}
	s.render(dests)
	if len(names) == 0 {
		fmt.Fprintf(s.out, "%v %v on %v has no legal moves.\n", p.Colour, p.Kind, from)
		return
	}
	fmt.Fprintf(s.out, "%v %v on %v can move to: %s\n", p.Colour, p.Kind, from, strings.Join(names, " "))
}

func (s *Session) undo() {
	ok := s.board.Undo()
	s.logf(config.Commands, "undo: %v", ok)
	fmt.Fprintln(s.out, output.UndoStatus(ok))
	if ok && s.cfg.Display.ShowBoardAfterMove {
		s.render(nil)
	}
}

func (s *Session) showHistory() {
	rec := output.NewGameRecord(s.gameID.String(), s.board)
	var w output.GameWriter
	if s.cfg.Display.JSONFormat {
		w = output.NewJSONWriterSingle(s.out)
	} else {
		w = output.NewTextWriter(s.out, s.cfg.Display.MaxLineLength)
	}
	if err := w.WriteGame(rec); err != nil {
		fmt.Fprintf(s.out, "Error writing history: %v\n", err)
	}
	w.Close() //nolint:errcheck // single-game writers have nothing buffered
}

func (s *Session) showStats() {
	if s.store == nil {
		fmt.Fprintln(s.out, "Statistics are disabled (use -db or -memdb).")
		return
	}
	stats, err := s.store.LoadStats()
	if err != nil {
		s.logf(config.Events, "%v", err)
		fmt.Fprintf(s.out, "Error loading statistics: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Games: %d  White wins: %d  Black wins: %d  Draws: %d  Unfinished: %d\n",
		stats.GamesPlayed, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.Unfinished)
	fmt.Fprintf(s.out, "Average length: %.1f plies\n", stats.AveragePlies())
}

// showGames lists the recorded games, oldest first.
func (s *Session) showGames() {
	if s.store == nil {
		fmt.Fprintln(s.out, "Statistics are disabled (use -db or -memdb).")
		return
	}
	games, err := s.store.ListGames()
	if err != nil {
		s.logf(config.Events, "%v", err)
		fmt.Fprintf(s.out, "Error listing games: %v\n", err)
		return
	}
	if len(games) == 0 {
		fmt.Fprintln(s.out, "No games recorded.")
		return
	}
	for i, g := range games {
		fmt.Fprintf(s.out, "%d. %s %s %s, %d plies\n", i+1,
			g.FinishedAt.Format(time.DateTime), shortID(g.ID), g.Outcome, g.Plies)
		ow := output.NewOutputWriter(s.out, s.cfg.Display.MaxLineLength)
		for _, m := range g.Moves {
			ow.Write(m)
		}
		ow.Finish()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (s *Session) render(marks []chess.Coord) {
	output.RenderBoard(s.out, s.board, s.cfg.Display, marks)
}

// startGame resets the board under a fresh game ID.
func (s *Session) startGame() {
	s.board.Initialize()
	s.gameID = uuid.New()
	s.started = time.Now()
	s.games++
	s.log.SetPrefix(fmt.Sprintf("[game %s] ", s.gameID))
	s.logf(config.Events, "new game %d", s.games)
}

// finishGame records the current game if any move was played.
func (s *Session) finishGame() {
	if s.board.Ply() == 0 {
		return
	}
	summary := summarize(s.gameID, s.started, s.board)
	s.logf(config.Events, "finished: %s in %d plies", summary.Outcome, summary.Plies)
	if s.finished != nil {
		s.finished.WriteGame(output.NewGameRecord(summary.ID, s.board)) //nolint:errcheck // buffered until flush
	}
	if s.store == nil {
		return
	}
	if _, err := s.store.RecordGame(summary); err != nil {
		s.logf(config.Events, "%v", err)
		fmt.Fprintf(s.out, "Error recording game: %v\n", err)
	}
}

// summarize converts the board's final state for storage.
func summarize(id uuid.UUID, started time.Time, b *engine.Board) storage.GameSummary {
	rec := output.NewGameRecord(id.String(), b)
	moves := make([]string, len(rec.Moves))
	for i, m := range rec.Moves {
		moves[i] = m.Notation()
	}

	outcome := storage.Unfinished
	if b.GameOver() {
		switch b.Winner() {
		case chess.White:
			outcome = storage.WhiteWon
		case chess.Black:
			outcome = storage.BlackWon
		default:
			outcome = storage.Draw
		}
	}

	return storage.GameSummary{
		ID:        rec.ID,
		Outcome:   outcome,
		Plies:     rec.PlyCount,
		Moves:     moves,
		StartedAt: started,
	}
}

// flushFinished writes the session's games as one JSON array.
func (s *Session) flushFinished() {
	if s.finished == nil {
		return
	}
	if err := s.finished.Close(); err != nil {
		s.logf(config.Events, "%v", err)
		fmt.Fprintf(s.out, "Error writing games: %v\n", err)
	}
}

func (s *Session) logf(level int, format string, args ...any) {
	if s.cfg.Verbosity >= level {
		s.log.Printf(format, args...)
	}
}

package worker

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// Replay plays item's moves through the move pipeline on a fresh board and
// classifies the final position. Replay stops at the first rejected move;
// the result then describes the position before it.
func Replay(ctx context.Context, item WorkItem) ProcessResult {
	result := ProcessResult{Game: item.Game, Index: item.Index}

	board, err := startingBoard(item.Game)
	if err != nil {
		result.Err = err
		return result
	}
	result.Board = board

	for _, m := range item.Game.Moves {
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}
		if _, err := engine.PerformMove(board, m.From, m.To); err != nil {
			result.Err = err
			break
		}
	}

	result.Outcome = engine.UpdateBoardState(board)
	result.Draws = engine.AnalyzeDraws(board)
	return result
}

// startingBoard builds the board a game is replayed on.
func startingBoard(game *parser.GameRecord) (*chess.Board, error) {
	if game.Setup == "" {
		return engine.NewGame(), nil
	}
	return engine.NewBoardFromPlacement(game.Setup)
}

// NewReplayFunc returns a ProcessFunc that replays games and logs each result.
func NewReplayFunc(logger zerolog.Logger) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		result := Replay(ctx, item)

		event := logger.Debug()
		if result.Err != nil {
			event = logger.Warn().Err(result.Err)
		}
		event.
			Int("game", item.Game.Index).
			Str("file", item.Game.File).
			Int("line", item.Game.Line).
			Int("moves", len(item.Game.Moves)).
			Stringer("outcome", result.Outcome).
			Msg("game replayed")

		return result
	}
}

// Runner replays batches of games on a worker pool.
type Runner struct {
	Workers     int
	BufferSize  int
	StopOnError bool
	Logger      zerolog.Logger
}

// Run replays games concurrently and returns the results ordered by game
// index. With StopOnError set, games still queued after the first rejection
// are skipped and have no result.
func (r *Runner) Run(ctx context.Context, games []*parser.GameRecord) []ProcessResult {
	pool := NewPoolWithOptions(NewReplayFunc(r.Logger),
		WithWorkers(r.Workers), WithBufferSize(r.BufferSize))
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, game := range games {
			if pool.IsStopped() || ctx.Err() != nil {
				return
			}
			pool.Submit(WorkItem{Game: game, Index: i})
		}
	}()

	var results []ProcessResult
	for result := range pool.Results() {
		if result.Err != nil && r.StopOnError {
			pool.Stop()
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	r.Logger.Info().
		Int("games", len(games)).
		Int("replayed", len(results)).
		Int("workers", pool.NumWorkers()).
		Msg("batch finished")
	return results
}

package generator

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"tradecoach/internal/models"
)

// SimulationRequest configures a batch of independent random runs.
type SimulationRequest struct {
	Runs    int
	Workers int
	Seed    uint64
}

// SimulationReport aggregates a batch of runs.
type SimulationReport struct {
	Runs                    int                        `json:"runs"`
	Workers                 int                        `json:"workers"`
	Decisions               int                        `json:"decisions"`
	MeanDecisions           float64                    `json:"meanDecisions"`
	ViolationRate           float64                    `json:"violationRate"`
	PositiveRateViolating   float64                    `json:"positiveRateViolating"`
	PositiveRateDisciplined float64                    `json:"positiveRateDisciplined"`
	MeanProfitLoss          float64                    `json:"meanProfitLoss"`
	MeanTotalTrades         float64                    `json:"meanTotalTrades"`
	Emotions                map[models.EmotionType]int `json:"emotions"`
	Duration                time.Duration              `json:"duration"`
}

// tally is one worker's partial counts.
type tally struct {
	runs, decisions, violations int
	violatingWins, disciplined  int
	disciplinedWins, trades     int
	profitLoss                  float64
	emotions                    map[models.EmotionType]int
}

func (t *tally) add(res *models.ScenarioResult) {
	if t.emotions == nil {
		t.emotions = make(map[models.EmotionType]int)
	}
	st := res.TraderState
	t.runs++
	t.profitLoss += st.Performance.ProfitLoss
	t.trades += st.Performance.TotalTrades
	t.emotions[st.CurrentEmotionalState.Primary]++
	for _, d := range st.Decisions {
		t.decisions++
		win := d.Outcome == models.OutcomePositive
		if d.ViolatesStrategy {
			t.violations++
			if win {
				t.violatingWins++
			}
		} else {
			t.disciplined++
			if win {
				t.disciplinedWins++
			}
		}
	}
}

func (t *tally) merge(o tally) {
	t.runs += o.runs
	t.decisions += o.decisions
	t.violations += o.violations
	t.violatingWins += o.violatingWins
	t.disciplined += o.disciplined
	t.disciplinedWins += o.disciplinedWins
	t.trades += o.trades
	t.profitLoss += o.profitLoss
	if t.emotions == nil {
		t.emotions = make(map[models.EmotionType]int)
	}
	for e, n := range o.emotions {
		t.emotions[e] += n
	}
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// Simulate runs req.Runs random generations spread over req.Workers
// goroutines and aggregates them. Each worker owns a generator seeded from
// req.Seed and its index, so a fixed seed and worker count reproduce the
// same report. opts.Rand is ignored.
func Simulate(ctx context.Context, opts Options, req SimulationRequest) (*SimulationReport, error) {
	if req.Runs <= 0 {
		return &SimulationReport{Emotions: map[models.EmotionType]int{}}, nil
	}
	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > req.Runs {
		workers = req.Runs
	}
	base := req.Seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}

	start := time.Now()
	partials := make([]tally, workers)
	group, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w
		wopts := opts
		wopts.Rand = NewRand(base + uint64(w)*0x9e3779b9)
		gen, err := New(wopts)
		if err != nil {
			return nil, err
		}
		group.Go(func() error {
			for i := w; i < req.Runs; i += workers {
				res, err := gen.GenerateRandom(gctx)
				if err != nil {
					return err
				}
				partials[w].add(res)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var total tally
	for _, p := range partials {
		total.merge(p)
	}
	return &SimulationReport{
		Runs:                    total.runs,
		Workers:                 workers,
		Decisions:               total.decisions,
		MeanDecisions:           ratio(total.decisions, total.runs),
		ViolationRate:           ratio(total.violations, total.decisions),
		PositiveRateViolating:   ratio(total.violatingWins, total.violations),
		PositiveRateDisciplined: ratio(total.disciplinedWins, total.disciplined),
		MeanProfitLoss:          total.profitLoss / float64(total.runs),
		MeanTotalTrades:         ratio(total.trades, total.runs),
		Emotions:                total.emotions,
		Duration:                time.Since(start),
	}, nil
}

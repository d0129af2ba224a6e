package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/lvyanru/startupradar/internal/domain/entity"
	"github.com/lvyanru/startupradar/internal/metrics"
)

// Source is where the pipeline reads the delimited text from
type Source interface {
	Identity() string
	Read(ctx context.Context) ([]byte, error)
}

// Pipeline turns source text into a dataset
type Pipeline struct {
	conv   Converter
	logger *slog.Logger
	now    func() time.Time
}

// NewPipeline creates a pipeline converting amounts with the given multiplier
func NewPipeline(multiplier float64, logger *slog.Logger) (*Pipeline, error) {
	conv, err := NewConverter(multiplier)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		conv:   conv,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Load reads the source and builds the dataset. A read failure is logged and
// yields an empty dataset whose report carries the failure.
func (p *Pipeline) Load(ctx context.Context, src Source) *entity.Dataset {
	start := p.now()
	defer func() {
		metrics.LoadDuration.Observe(time.Since(start).Seconds())
	}()

	raw, err := src.Read(ctx)
	if err != nil {
		p.logger.Error("failed to read dataset source",
			"source", src.Identity(),
			"error", err,
		)
		metrics.Loads.WithLabelValues("source_error").Inc()
		return &entity.Dataset{
			Source:   src.Identity(),
			LoadedAt: p.now(),
			Report:   entity.IngestReport{SourceError: err.Error()},
		}
	}

	ds := p.Build(src.Identity(), string(raw))

	result := "ok"
	if ds.Empty() {
		result = "empty"
	}
	metrics.Loads.WithLabelValues(result).Inc()

	p.logger.Info("dataset loaded",
		"source", ds.Source,
		"rows", len(ds.Rows),
		"startups", len(ds.Startups),
		"funding_rounds", len(ds.FundingRounds),
		"investors", len(ds.Investors),
		"skipped", len(ds.Report.Skips),
		"duration", time.Since(start).String(),
	)

	return ds
}

// Build runs the three ingestion stages over text. It has no side effects
// besides metrics, and the same text always yields the same collections.
func (p *Pipeline) Build(source, text string) *entity.Dataset {
	rows, report := ParseRows(text)
	if len(report.MissingColumns) > 0 {
		p.logger.Warn("source header lacks expected columns",
			"source", source,
			"missing", report.MissingColumns,
		)
	}

	startups, startupSkips := BuildStartups(rows)
	rounds, roundSkips := BuildFundingRounds(rows, startups, p.conv)
	investors, investorSkips := AggregateInvestors(rows, p.conv)

	report.Skips = make([]entity.Skip, 0, len(startupSkips)+len(roundSkips)+len(investorSkips))
	report.Skips = append(report.Skips, startupSkips...)
	report.Skips = append(report.Skips, roundSkips...)
	report.Skips = append(report.Skips, investorSkips...)
	report.Skips = append(report.Skips, amountSkips(rows, p.conv)...)

	metrics.RowsParsed.Add(float64(len(rows)))
	for _, s := range report.Skips {
		metrics.RowsSkipped.WithLabelValues(string(s.Stage), string(s.Reason)).Inc()
	}

	return &entity.Dataset{
		Source:        source,
		LoadedAt:      p.now(),
		Startups:      startups,
		FundingRounds: rounds,
		Investors:     investors,
		Rows:          rows,
		Report:        report,
	}
}

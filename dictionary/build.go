package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/internal/options"
	"github.com/arloliu/ctxdict/logger"
	"github.com/arloliu/ctxdict/record"
	"github.com/arloliu/ctxdict/section"
	"github.com/arloliu/ctxdict/trie"
)

// BuildStats describes a finished build.
type BuildStats struct {
	Phrases      int // phrase records written
	Translations int // translation records written
	Examples     int // example records written
	Nodes        int // trie nodes written, root included
	MaxDepth     int // deepest open path while building

	SourceSentences int
	TargetSentences int
	// ReferencedSentences is the number of distinct sentence ids used by at
	// least one example.
	ReferencedSentences uint64

	Trailer  section.Trailer
	Bytes    int64  // total file size
	Checksum uint64 // xxHash64 of the whole file
	Duration time.Duration
}

func (s BuildStats) summary() logger.BuildSummary {
	return logger.BuildSummary{
		Phrases:             s.Phrases,
		Nodes:               s.Nodes,
		SourceSentences:     s.SourceSentences,
		TargetSentences:     s.TargetSentences,
		ReferencedSentences: s.ReferencedSentences,
		Bytes:               s.Bytes,
		Checksum:            s.Checksum,
		Duration:            s.Duration,
	}
}

// Build compiles a dictionary file.
//
// Parameters:
//   - phrases: phrase stream, one record per line, sorted ascending by the
//     unsigned bytes of the source phrase (see record.ParsePhrase)
//   - src: source corpus, one sentence per line
//   - trg: target corpus, line-aligned with src
//   - out: destination of the dictionary file
//
// Returns:
//   - BuildStats: statistics of the written file
//   - error: the first failure; errors from the phrase stream carry its
//     1-based line number. Nothing written to out is usable after an error.
func Build(phrases, src, trg io.Reader, out io.Writer, opts ...BuildOption) (BuildStats, error) {
	cfg := defaultBuildConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return BuildStats{}, err
	}

	start := time.Now()
	b := &builder{cfg: cfg, w: codec.NewWriter(out), referenced: roaring.New()}
	stats, err := b.run(phrases, src, trg)
	if closeErr := b.w.Close(); err == nil {
		err = closeErr
	}
	stats.Duration = time.Since(start)

	cfg.logger.LogBuild(context.Background(), stats.summary(), err)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

type builder struct {
	cfg        *buildConfig
	w          *codec.Writer
	src, trg   *record.Corpus
	referenced *roaring.Bitmap
}

func (b *builder) scanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, b.cfg.maxLineSize)), b.cfg.maxLineSize)

	return sc
}

func (b *builder) run(phrases, src, trg io.Reader) (BuildStats, error) {
	var stats BuildStats

	// Offset 0 is never a record, so it can serve as the null pointer.
	b.w.WriteUint8(0)

	srcPtr, srcCorpus, err := record.EncodeCorpus(b.w, b.scanner(src))
	if err != nil {
		return stats, fmt.Errorf("source corpus: %w", err)
	}
	trgPtr, trgCorpus, err := record.EncodeCorpus(b.w, b.scanner(trg))
	if err != nil {
		return stats, fmt.Errorf("target corpus: %w", err)
	}
	b.src, b.trg = srcCorpus, trgCorpus
	stats.SourceSentences = srcCorpus.NumSentences()
	stats.TargetSentences = trgCorpus.NumSentences()
	if stats.SourceSentences != stats.TargetSentences {
		b.cfg.logger.Warn("corpora are not line-aligned",
			"source_sentences", stats.SourceSentences,
			"target_sentences", stats.TargetSentences,
		)
	}

	tb := trie.NewBuilder(b.w)
	sc := b.scanner(phrases)
	line := 0
	for sc.Scan() {
		line++
		p, err := record.ParsePhrase(sc.Text())
		if err != nil {
			return stats, fmt.Errorf("phrase line %d: %w", line, err)
		}
		if err := b.checkExamples(&p); err != nil {
			return stats, fmt.Errorf("phrase line %d: %w", line, err)
		}

		ptr := p.Encode(b.w)
		if err := tb.Add([]byte(p.Text), ptr, p.Weight); err != nil {
			return stats, fmt.Errorf("phrase line %d: %w", line, err)
		}

		stats.Translations += len(p.Translations)
		for i := range p.Translations {
			stats.Examples += len(p.Translations[i].Examples)
		}
		if b.cfg.progressEvery > 0 && line%b.cfg.progressEvery == 0 {
			b.cfg.logger.LogBuildProgress(context.Background(), line, int64(b.w.Pos())) //nolint:gosec
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("phrase line %d: %w", line+1, err)
	}

	root, err := tb.Finish()
	if err != nil {
		return stats, err
	}
	ts := tb.Stats()
	stats.Phrases, stats.Nodes, stats.MaxDepth = ts.Phrases, ts.Nodes, ts.MaxDepth

	stats.Trailer = section.Trailer{Root: root, SourceCorpus: srcPtr, TargetCorpus: trgPtr}
	b.w.WriteBytes(stats.Trailer.Bytes())
	if err := b.w.Flush(); err != nil {
		return stats, err
	}

	stats.Bytes = int64(b.w.Pos()) //nolint:gosec
	stats.Checksum = b.w.Sum64()
	stats.ReferencedSentences = b.referenced.GetCardinality()

	return stats, nil
}

// checkExamples records the sentences referenced by p and, when enabled,
// rejects examples outside the corpora.
func (b *builder) checkExamples(p *record.Phrase) error {
	for i := range p.Translations {
		t := &p.Translations[i]
		for _, e := range t.Examples {
			if b.cfg.validateExamples {
				if err := b.src.CheckSpan(e.Source()); err != nil {
					return fmt.Errorf("%w: %s of %q: source %w", errs.ErrInvalidExample, e, t.Text, err)
				}
				if err := b.trg.CheckSpan(e.Target()); err != nil {
					return fmt.Errorf("%w: %s of %q: target %w", errs.ErrInvalidExample, e, t.Text, err)
				}
			}
			b.referenced.Add(e.SentenceID)
		}
	}

	return nil
}

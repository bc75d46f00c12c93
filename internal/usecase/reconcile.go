package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shelfcheck/backend/internal/domain"
)

// ReconcileConfig holds configuration for the batch reconciliation driver
type ReconcileConfig struct {
	Workers            int
	EnableDebugLogging bool
}

// ReconcileService pairs captured images with user-supplied entries, runs
// extraction, comparison and verdict aggregation per pair, and persists one
// verification record per pair. Pair processing is stateless, so pairs may
// run sequentially or across workers with no coordination beyond the record
// store.
type ReconcileService struct {
	source     domain.ImageSource
	extractor  domain.Extractor
	comparator domain.Comparator
	verdicts   *VerdictService
	records    domain.RecordRepository

	workers            int
	enableDebugLogging bool
}

// NewReconcileService creates a new reconciliation driver with dependencies
func NewReconcileService(
	source domain.ImageSource,
	extractor domain.Extractor,
	comparator domain.Comparator,
	verdicts *VerdictService,
	records domain.RecordRepository,
	config ReconcileConfig,
) *ReconcileService {
	workers := config.Workers
	if workers < 1 {
		workers = 1
	}

	return &ReconcileService{
		source:             source,
		extractor:          extractor,
		comparator:         comparator,
		verdicts:           verdicts,
		records:            records,
		workers:            workers,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Run reconciles every captured image against its positional user entry:
// the Nth image in listing order pairs with the Nth entry. A count mismatch
// is a configuration error and aborts the batch before any collaborator
// call. A collaborator failure on one pair is recorded as a failed record
// and the batch continues.
func (s *ReconcileService) Run(ctx context.Context, entries []domain.FieldSet) (domain.BatchSummary, error) {
	images, err := s.source.List()
	if err != nil {
		return domain.BatchSummary{}, fmt.Errorf("listing captures: %w", err)
	}

	if len(images) != len(entries) {
		return domain.BatchSummary{}, fmt.Errorf("%w: %d images, %d entries",
			domain.ErrPairCountMismatch, len(images), len(entries))
	}

	log.Printf("[RECONCILE] Starting batch: %d pairs, %d workers", len(images), s.workers)

	type pair struct {
		image string
		entry domain.FieldSet
	}

	pairs := make(chan pair)
	results := make([]domain.VerificationRecord, len(images))
	index := make(map[string]int, len(images))
	for i, img := range images {
		index[img] = i
	}

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range pairs {
				record := s.processPair(ctx, p.image, p.entry)
				results[index[p.image]] = record
			}
		}()
	}

feed:
	for i, img := range images {
		select {
		case <-ctx.Done():
			break feed
		case pairs <- pair{image: img, entry: entries[i]}:
		}
	}
	close(pairs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return domain.BatchSummary{}, err
	}

	var summary domain.BatchSummary
	for _, record := range results {
		if err := s.records.Append(ctx, record); err != nil {
			return summary, fmt.Errorf("persisting record %q: %w", record.ID, err)
		}

		summary.Total++
		switch {
		case record.Failed():
			summary.Failed++
		case record.Verdict == domain.VerdictApproved:
			summary.Approved++
		default:
			summary.Disapproved++
		}

		log.Printf("[RECONCILE] Processed %s: %s", record.ImageFile, recordOutcome(record))
	}

	return summary, nil
}

// processPair runs extraction, comparison and verdict aggregation for one
// image/entry pair. Collaborator failures are folded into the record rather
// than returned, so one bad pair never aborts the batch.
func (s *ReconcileService) processPair(ctx context.Context, image string, entry domain.FieldSet) domain.VerificationRecord {
	record := domain.VerificationRecord{
		ID:        image,
		ImageFile: image,
		User:      entry,
		CreatedAt: time.Now(),
	}

	data, err := s.source.Read(image)
	if err != nil {
		record.Err = fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err).Error()
		return record
	}

	extracted, err := s.extractor.ExtractProductInfo(ctx, data)
	if err != nil {
		record.Err = fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err).Error()
		return record
	}
	record.Extracted = extracted

	if s.enableDebugLogging {
		log.Printf("[RECONCILE] %s extracted %d fields", image, len(extracted))
	}

	comparison, err := s.comparator.Compare(ctx, entry, extracted)
	if err != nil {
		record.Err = fmt.Errorf("%w: %v", domain.ErrComparisonFailed, err).Error()
		return record
	}

	verdict, adjusted := s.verdicts.Compute(entry, extracted, comparison)
	record.Comparison = adjusted
	record.Verdict = verdict

	return record
}

func recordOutcome(record domain.VerificationRecord) string {
	if record.Failed() {
		return "failed (" + record.Err + ")"
	}
	return string(record.Verdict)
}

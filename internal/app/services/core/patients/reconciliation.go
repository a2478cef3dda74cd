package patients

import (
	"context"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	skipReasonBlankIdentifier     = "identifier is blank"
	skipReasonDuplicateIdentifier = "identifier repeated in the same file"
)

// CsvRecord is a parsed row with its zero-based position in the file body, the same
// index validation uses in field names.
type CsvRecord struct {
	Row    int
	Record requests.PatientCsv
}

type ExistingRecord struct {
	CsvRecord
	Patient *fhir_dto.Patient
}

// Reconciliation splits a batch by registry presence. New and Existing keep input order
// and never contain a record with a blank identifier.
type Reconciliation struct {
	New      []CsvRecord
	Existing []ExistingRecord
	Skipped  []responses.SkippedRecord
}

type ReconcilerOptions struct {
	Concurrency   int
	RatePerSecond float64
	LookupTimeout time.Duration
	FailFast      bool
}

type Reconciler struct {
	patientFhirClient contracts.PatientFhirClient
	limiter           *rate.Limiter
	options           ReconcilerOptions
	log               *zap.Logger
}

func ReconcilerOptionsFromConfig(internalConfig *config.InternalConfig) ReconcilerOptions {
	return ReconcilerOptions{
		Concurrency:   internalConfig.Import.LookupConcurrency,
		RatePerSecond: internalConfig.Import.LookupRatePerSecond,
		LookupTimeout: time.Duration(internalConfig.Import.LookupTimeoutInSeconds) * time.Second,
		FailFast:      internalConfig.Import.FailFast,
	}
}

func NewReconciler(patientFhirClient contracts.PatientFhirClient, options ReconcilerOptions, logger *zap.Logger) *Reconciler {
	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}
	if options.LookupTimeout <= 0 {
		options.LookupTimeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if options.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(options.RatePerSecond), options.Concurrency)
	}

	return &Reconciler{
		patientFhirClient: patientFhirClient,
		limiter:           limiter,
		options:           options,
		log:               logger,
	}
}

type lookupResult struct {
	patient *fhir_dto.Patient
	found   bool
	err     error
}

func (r *Reconciler) Reconcile(ctx context.Context, records []requests.PatientCsv) (*Reconciliation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	result := &Reconciliation{}

	candidates := make([]CsvRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, record := range records {
		row := i
		identifier := strings.TrimSpace(record.Identifier)
		if identifier == "" {
			result.Skipped = append(result.Skipped, responses.SkippedRecord{Row: row, Reason: skipReasonBlankIdentifier})
			continue
		}
		if _, ok := seen[identifier]; ok {
			result.Skipped = append(result.Skipped, responses.SkippedRecord{Row: row, Identifier: identifier, Reason: skipReasonDuplicateIdentifier})
			continue
		}
		seen[identifier] = struct{}{}
		record.Identifier = identifier
		candidates = append(candidates, CsvRecord{Row: row, Record: record})
	}

	lookups := make([]lookupResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.Concurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			if r.limiter != nil {
				if err := r.limiter.Wait(gctx); err != nil {
					return err
				}
			}

			lookupCtx, cancel := context.WithTimeout(gctx, r.options.LookupTimeout)
			defer cancel()

			patient, found, err := r.patientFhirClient.FindPatientByIdentifier(lookupCtx, constvars.PatientIdentifierSystem, candidate.Record.Identifier)
			if err != nil {
				r.log.Warn("Reconciler.Reconcile lookup failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingPatientIdentifierKey, candidate.Record.Identifier),
					zap.Error(err),
				)
				if r.options.FailFast {
					return err
				}
			}
			lookups[i] = lookupResult{patient: patient, found: found, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, candidate := range candidates {
		lookup := lookups[i]
		switch {
		case lookup.err != nil:
			result.Skipped = append(result.Skipped, responses.SkippedRecord{
				Row:        candidate.Row,
				Identifier: candidate.Record.Identifier,
				Reason:     lookup.err.Error(),
			})
		case lookup.found:
			result.Existing = append(result.Existing, ExistingRecord{CsvRecord: candidate, Patient: lookup.patient})
		default:
			result.New = append(result.New, candidate)
		}
	}

	r.log.Info("Reconciler.Reconcile finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingExistingCountKey, len(result.Existing)),
		zap.Int(constvars.LoggingNewCountKey, len(result.New)),
		zap.Int(constvars.LoggingSkippedCountKey, len(result.Skipped)),
	)
	return result, nil
}

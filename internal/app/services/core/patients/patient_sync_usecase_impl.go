package patients

import (
	"bytes"
	"context"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/dto/responses"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/mappers"
	"patient-sync-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// SyncCollaborators are the optional infrastructure pieces of a bulk import.
// A nil field switches that step off.
type SyncCollaborators struct {
	LockerService        contracts.LockerService
	Storage              contracts.Storage
	ImportJobRepository  contracts.ImportJobRepository
	ImportEventPublisher contracts.ImportEventPublisher
}

type patientSyncUsecase struct {
	Reconciler         *Reconciler
	BatchSubmitter     *BatchSubmitter
	CitizenshipService contracts.CitizenshipService
	SyncCollaborators
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewPatientSyncUsecase(
	reconciler *Reconciler,
	batchSubmitter *BatchSubmitter,
	citizenshipService contracts.CitizenshipService,
	collaborators SyncCollaborators,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientSyncUsecase {
	return &patientSyncUsecase{
		Reconciler:         reconciler,
		BatchSubmitter:     batchSubmitter,
		CitizenshipService: citizenshipService,
		SyncCollaborators:  collaborators,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *patientSyncUsecase) UploadPatients(ctx context.Context, fileName string, payload []byte) (*responses.ImportSummary, error) {
	requestID := utils.RequestIDFromContext(ctx)
	job := &models.ImportJob{
		ID:        utils.NewFhirResourceID(),
		FileName:  fileName,
		Checksum:  utils.ChecksumSHA256(payload),
		Status:    constvars.ImportJobStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	uc.Log.Info("patientSyncUsecase.UploadPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingImportJobIDKey, job.ID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	if timeout := uc.InternalConfig.Import.TimeoutInSeconds; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	delimiter := utils.DelimiterFromString(uc.InternalConfig.Import.CsvDelimiter, constvars.CitizenshipCsvDelimiter)
	records, err := utils.ParsePatientsCsv(bytes.NewReader(payload), delimiter)
	if err != nil {
		uc.Log.Error("patientSyncUsecase.UploadPatients error parsing CSV",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	job.Total = len(records)

	violations := utils.ValidatePatientsCsv(records)
	if len(violations) > 0 {
		uc.Log.Error("patientSyncUsecase.UploadPatients CSV validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingImportJobIDKey, job.ID),
			zap.Int(constvars.LoggingViolationCountKey, len(violations)),
		)
		job.Violations = violations
		uc.finishJob(ctx, job, constvars.ImportJobStatusRejected, nil)
		return nil, exceptions.ErrCsvValidation(violations)
	}

	if uc.LockerService != nil {
		lockKey := constvars.ImportLockKeyPrefix + job.Checksum
		locked, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, time.Duration(uc.InternalConfig.Import.LockTTLInSeconds)*time.Second)
		if err != nil {
			return nil, exceptions.ErrImportLockAcquire(err, lockKey)
		}
		if !locked {
			uc.Log.Warn("patientSyncUsecase.UploadPatients import already running",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
			)
			return nil, exceptions.ErrImportInProgress(nil, lockKey)
		}
		defer func() {
			if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
				uc.Log.Error("patientSyncUsecase.UploadPatients error releasing lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(err),
				)
			}
		}()
	}

	if uc.Storage != nil {
		objectName := constvars.ImportArchiveObjectPrefix + job.ID + ".csv"
		archiveKey, err := uc.Storage.PutObject(ctx, uc.InternalConfig.Import.ArchiveBucketName, objectName, payload, constvars.MIMETextCSV)
		if err != nil {
			uc.Log.Error("patientSyncUsecase.UploadPatients error archiving upload",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		job.ArchiveKey = archiveKey
	}

	if uc.ImportJobRepository != nil {
		if err := uc.ImportJobRepository.Insert(ctx, job); err != nil {
			uc.Log.Error("patientSyncUsecase.UploadPatients error recording import job",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	summary, err := uc.synchronize(ctx, records)
	if err != nil {
		uc.Log.Error("patientSyncUsecase.UploadPatients synchronization failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingImportJobIDKey, job.ID),
			zap.Error(err),
		)
		uc.finishJob(ctx, job, constvars.ImportJobStatusFailed, err)
		return nil, err
	}

	summary.JobID = job.ID
	summary.FileName = fileName
	job.Created = summary.Created
	job.Updated = summary.Updated
	job.Skipped = len(summary.Skipped)
	uc.finishJob(ctx, job, constvars.ImportJobStatusSucceeded, nil)

	utils.LogBusinessEvent(uc.Log, "patients_synchronized", requestID,
		zap.String(constvars.LoggingImportJobIDKey, job.ID),
		zap.Int(constvars.LoggingNewCountKey, summary.Created),
		zap.Int(constvars.LoggingExistingCountKey, summary.Updated),
		zap.Int(constvars.LoggingSkippedCountKey, len(summary.Skipped)),
	)
	return summary, nil
}

// synchronize runs reconcile, map and submit. Creates are sent before updates.
func (uc *patientSyncUsecase) synchronize(ctx context.Context, records []requests.PatientCsv) (*responses.ImportSummary, error) {
	reconciliation, err := uc.Reconciler.Reconcile(ctx, records)
	if err != nil {
		return nil, err
	}

	citizenships := uc.CitizenshipService.Lookup()
	managingOrganization := uc.InternalConfig.FHIR.ManagingOrganization

	creates := make([]*fhir_dto.Patient, 0, len(reconciliation.New))
	for _, record := range reconciliation.New {
		creates = append(creates, mappers.BuildFhirPatientFromCsv(record.Record, citizenships, managingOrganization))
	}

	updates := make([]*fhir_dto.Patient, 0, len(reconciliation.Existing))
	for _, existing := range reconciliation.Existing {
		updates = append(updates, buildReplacementPatient(existing, citizenships, managingOrganization))
	}

	createResult, err := uc.BatchSubmitter.SubmitCreates(ctx, creates)
	if err != nil {
		return nil, err
	}
	updateResult, err := uc.BatchSubmitter.SubmitUpdates(ctx, updates)
	if err != nil {
		return nil, err
	}

	return &responses.ImportSummary{
		Total:         len(records),
		Created:       createResult.Count,
		Updated:       updateResult.Count,
		Skipped:       reconciliation.Skipped,
		CreateEntries: createResult.Entries,
		UpdateEntries: updateResult.Entries,
	}, nil
}

// buildReplacementPatient maps the row onto the registry id it replaces. Marital status and
// foreign extensions are not part of the file, so they are carried over from the stored record.
func buildReplacementPatient(existing ExistingRecord, citizenships mappers.CitizenshipLookup, managingOrganization string) *fhir_dto.Patient {
	patient := mappers.BuildFhirPatientFromCsv(existing.Record, citizenships, managingOrganization)
	if existing.Patient == nil {
		return patient
	}
	patient.ID = existing.Patient.ID
	patient.MaritalStatus = existing.Patient.MaritalStatus
	patient.Extension = existing.Patient.Extension
	return patient
}

// finishJob records the outcome and announces it. Neither step can change the result
// the caller already has, so failures are only logged.
func (uc *patientSyncUsecase) finishJob(ctx context.Context, job *models.ImportJob, status string, cause error) {
	ctx = context.WithoutCancel(ctx)
	requestID := utils.RequestIDFromContext(ctx)
	finishedAt := time.Now().UTC()
	job.Status = status
	job.FinishedAt = &finishedAt
	if cause != nil {
		job.ErrorMessage = cause.Error()
	}

	if uc.ImportJobRepository != nil {
		var err error
		if status == constvars.ImportJobStatusRejected {
			err = uc.ImportJobRepository.Insert(ctx, job)
		} else {
			err = uc.ImportJobRepository.Update(ctx, job)
		}
		if err != nil {
			uc.Log.Error("patientSyncUsecase.finishJob error saving import job",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingImportJobIDKey, job.ID),
				zap.Error(err),
			)
		}
	}

	if uc.ImportEventPublisher != nil {
		eventType := constvars.ImportEventTypeCompleted
		if status != constvars.ImportJobStatusSucceeded {
			eventType = constvars.ImportEventTypeFailed
		}
		err := uc.ImportEventPublisher.Publish(ctx, models.ImportEvent{
			Type:       eventType,
			JobID:      job.ID,
			FileName:   job.FileName,
			Status:     status,
			Created:    job.Created,
			Updated:    job.Updated,
			Skipped:    job.Skipped,
			OccurredAt: finishedAt,
		})
		if err != nil {
			uc.Log.Error("patientSyncUsecase.finishJob error publishing import event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingImportJobIDKey, job.ID),
				zap.Error(err),
			)
		}
	}
}

func (uc *patientSyncUsecase) FindImportJobByID(ctx context.Context, jobID string) (*models.ImportJob, error) {
	if uc.ImportJobRepository == nil {
		return nil, exceptions.ErrImportJobNotFound(nil, jobID)
	}

	job, err := uc.ImportJobRepository.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, exceptions.ErrImportJobNotFound(nil, jobID)
	}
	return job, nil
}

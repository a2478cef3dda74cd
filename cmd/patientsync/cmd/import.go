package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"patient-sync-service/internal/app/services/core/patients"
	"patient-sync-service/internal/app/services/fhir_spark"
	bundleFhir "patient-sync-service/internal/app/services/fhir_spark/bundle"
	patientFhir "patient-sync-service/internal/app/services/fhir_spark/patients"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Args:  cobra.ExactArgs(1),
	Short: "Validate, reconcile and submit a patient CSV to the registry",
	Long: `Runs the bulk import workflow once against the configured registry.

Lock, archive, audit and event publishing are skipped; only the registry is
contacted. The summary is written to stdout as JSON.

patientsync import ./patients.csv`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	env := loadEnvironment()
	path := args[0]

	payload, err := os.ReadFile(path)
	if err != nil {
		console.WithError(err).Error("cannot read import file")
		return err
	}

	citizenships, err := loadCitizenships(cmd, env)
	if err != nil {
		console.WithError(err).Error("cannot load citizenship table")
		return err
	}

	fhirClient := fhir_spark.NewClient(
		env.internalConfig.FHIR.BaseUrl,
		env.internalConfig.FHIR.BearerToken,
		time.Duration(env.internalConfig.FHIR.RequestTimeoutInSeconds)*time.Second,
	)
	patientFhirClient := patientFhir.NewPatientFhirClient(fhirClient, env.log)
	usecase := patients.NewPatientSyncUsecase(
		patients.NewReconciler(patientFhirClient, patients.ReconcilerOptionsFromConfig(env.internalConfig), env.log),
		patients.NewBatchSubmitter(bundleFhir.NewBundleFhirClient(fhirClient, env.log), env.log),
		citizenships,
		patients.SyncCollaborators{},
		env.internalConfig,
		env.log,
	)

	console.WithFields(logrus.Fields{"file": path, "registry": env.internalConfig.FHIR.BaseUrl}).Info("import started")
	summary, err := usecase.UploadPatients(cmd.Context(), filepath.Base(path), payload)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			for _, violation := range customErr.Errors {
				console.WithField("field", violation.Field).Warn(violation.Message)
			}
			console.WithField(constvars.LoggingStatusCodeKey, customErr.StatusCode).Error(customErr.ClientMessage)
			return err
		}
		console.WithError(err).Error("import failed")
		return err
	}

	console.WithFields(logrus.Fields{
		"job_id":  summary.JobID,
		"total":   summary.Total,
		"created": summary.Created,
		"updated": summary.Updated,
		"skipped": len(summary.Skipped),
	}).Info("import finished")

	output, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

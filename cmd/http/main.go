package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/delivery/http/controllers"
	"patient-sync-service/internal/app/delivery/http/middlewares"
	"patient-sync-service/internal/app/delivery/http/routers"
	"patient-sync-service/internal/app/drivers/database"
	"patient-sync-service/internal/app/drivers/logger"
	"patient-sync-service/internal/app/drivers/messaging"
	"patient-sync-service/internal/app/drivers/storage"
	"patient-sync-service/internal/app/services/core/citizenship"
	"patient-sync-service/internal/app/services/core/medications"
	"patient-sync-service/internal/app/services/core/observations"
	"patient-sync-service/internal/app/services/core/organization"
	"patient-sync-service/internal/app/services/core/patients"
	"patient-sync-service/internal/app/services/fhir_spark"
	bundleFhir "patient-sync-service/internal/app/services/fhir_spark/bundle"
	medicationFhir "patient-sync-service/internal/app/services/fhir_spark/medications"
	observationFhir "patient-sync-service/internal/app/services/fhir_spark/observations"
	organizationFhir "patient-sync-service/internal/app/services/fhir_spark/organizations"
	patientFhir "patient-sync-service/internal/app/services/fhir_spark/patients"
	"patient-sync-service/internal/app/services/shared/importjobs"
	"patient-sync-service/internal/app/services/shared/importqueue"
	"patient-sync-service/internal/app/services/shared/locker"
	"patient-sync-service/internal/app/services/shared/ratelimiter"
	"patient-sync-service/internal/app/services/shared/redis"
	minioStorage "patient-sync-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if driverConfig.MongoDB.Enabled {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if driverConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Import.ArchiveBucketName)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = bootstrapingTheApp(ctx, bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Registry
	fhirClient := fhir_spark.NewClient(
		internalConfig.FHIR.BaseUrl,
		internalConfig.FHIR.BearerToken,
		time.Duration(internalConfig.FHIR.RequestTimeoutInSeconds)*time.Second,
	)
	patientFhirClient := patientFhir.NewPatientFhirClient(fhirClient, log)
	observationFhirClient := observationFhir.NewObservationFhirClient(fhirClient, log)
	organizationFhirClient := organizationFhir.NewOrganizationFhirClient(fhirClient, log)
	medicationFhirClient := medicationFhir.NewMedicationFhirClient(fhirClient, log)
	bundleFhirClient := bundleFhir.NewBundleFhirClient(fhirClient, log)

	// Citizenship
	citizenshipService := citizenship.NewCitizenshipService(internalConfig.Resources.CitizenshipCsvFilename, log)
	err := citizenshipService.Initialize(ctx)
	if err != nil {
		return err
	}
	citizenshipWorker := citizenship.NewWorker(log, citizenshipService, internalConfig.Resources.CitizenshipReloadCronSpec)
	citizenshipWorker.Start(ctx)
	bootstrap.WorkerStop = citizenshipWorker.Stop

	// Import infrastructure
	var collaborators patients.SyncCollaborators
	httpMiddlewares := middlewares.NewMiddlewares(log, internalConfig)
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		collaborators.LockerService = locker.NewLockService(redisRepository, log)
		if internalConfig.Import.QuotaPerMinute > 0 || internalConfig.Import.QuotaPerDay > 0 {
			httpMiddlewares.ImportQuota = ratelimiter.NewImportQuota(redisRepository, log, internalConfig)
		}
	}
	if bootstrap.Minio != nil {
		collaborators.Storage = minioStorage.NewMinioStorage(bootstrap.Minio, log)
	}
	if bootstrap.MongoDB != nil {
		collaborators.ImportJobRepository = importjobs.NewImportJobMongoRepository(
			bootstrap.MongoDB,
			bootstrap.DriverConfig.MongoDB.DbName,
			internalConfig.Import.JobsCollectionName,
		)
	}
	if bootstrap.RabbitMQ != nil {
		importQueue, err := importqueue.NewService(bootstrap.RabbitMQ, log, internalConfig.Import.EventsQueueName)
		if err != nil {
			return err
		}
		collaborators.ImportEventPublisher = importQueue
	}

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientFhirClient, citizenshipService, internalConfig, log)
	patientSyncUsecase := newPatientSyncUsecase(patientFhirClient, bundleFhirClient, citizenshipService, collaborators, internalConfig, log)

	// Observation, Organization, Medication
	observationUsecase := observations.NewObservationUsecase(observationFhirClient, patientFhirClient, log)
	organizationUsecase := organization.NewOrganizationUsecase(organizationFhirClient, log)
	medicationUsecase := medications.NewMedicationUsecase(medicationFhirClient, log)

	routers.SetupRoutes(bootstrap.Router, internalConfig, httpMiddlewares, routers.Controllers{
		Patient:      controllers.NewPatientController(log, patientUsecase, patientSyncUsecase),
		Observation:  controllers.NewObservationController(log, observationUsecase),
		Organization: controllers.NewOrganizationController(log, organizationUsecase),
		Medication:   controllers.NewMedicationController(log, medicationUsecase),
		Citizenship:  controllers.NewCitizenshipController(log, citizenshipService),
	})
	return nil
}

func newPatientSyncUsecase(
	patientFhirClient contracts.PatientFhirClient,
	bundleFhirClient contracts.BundleFhirClient,
	citizenshipService contracts.CitizenshipService,
	collaborators patients.SyncCollaborators,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.PatientSyncUsecase {
	reconciler := patients.NewReconciler(patientFhirClient, patients.ReconcilerOptionsFromConfig(internalConfig), log)
	return patients.NewPatientSyncUsecase(
		reconciler,
		patients.NewBatchSubmitter(bundleFhirClient, log),
		citizenshipService,
		collaborators,
		internalConfig,
		log,
	)
}

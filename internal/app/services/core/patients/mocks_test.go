package patients

import (
	"context"
	"net/url"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/fhir_dto"
	"patient-sync-service/internal/pkg/mappers"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockPatientFhirClient struct {
	mock.Mock
}

func (m *mockPatientFhirClient) CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*fhir_dto.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientFhirClient) UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*fhir_dto.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientFhirClient) DeletePatientByID(ctx context.Context, patientID string) error {
	return m.Called(ctx, patientID).Error(0)
}

func (m *mockPatientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, bool, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*fhir_dto.Patient)
	return patient, args.Bool(1), args.Error(2)
}

func (m *mockPatientFhirClient) FindPatientByIdentifier(ctx context.Context, system, value string) (*fhir_dto.Patient, bool, error) {
	args := m.Called(ctx, system, value)
	patient, _ := args.Get(0).(*fhir_dto.Patient)
	return patient, args.Bool(1), args.Error(2)
}

func (m *mockPatientFhirClient) SearchPatients(ctx context.Context, params url.Values) ([]fhir_dto.Patient, error) {
	args := m.Called(ctx, params)
	patients, _ := args.Get(0).([]fhir_dto.Patient)
	return patients, args.Error(1)
}

type mockBundleFhirClient struct {
	mock.Mock
}

func (m *mockBundleFhirClient) PostTransactionBundle(ctx context.Context, bundle *fhir_dto.FHIRBundle) (*fhir_dto.FHIRBundle, error) {
	args := m.Called(ctx, bundle)
	response, _ := args.Get(0).(*fhir_dto.FHIRBundle)
	return response, args.Error(1)
}

type mockLockerService struct {
	mock.Mock
}

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) PutObject(ctx context.Context, bucketName, objectName string, payload []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucketName, objectName, payload, contentType)
	return args.String(0), args.Error(1)
}

type mockImportJobRepository struct {
	mock.Mock
}

func (m *mockImportJobRepository) Insert(ctx context.Context, job *models.ImportJob) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockImportJobRepository) Update(ctx context.Context, job *models.ImportJob) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockImportJobRepository) FindByID(ctx context.Context, jobID string) (*models.ImportJob, error) {
	args := m.Called(ctx, jobID)
	job, _ := args.Get(0).(*models.ImportJob)
	return job, args.Error(1)
}

type mockImportEventPublisher struct {
	mock.Mock
}

func (m *mockImportEventPublisher) Publish(ctx context.Context, event models.ImportEvent) error {
	return m.Called(ctx, event).Error(0)
}

type staticCitizenships map[string]models.CitizenshipEntry

func (s staticCitizenships) Get(code string) (models.CitizenshipEntry, bool) {
	entry, ok := s[code]
	return entry, ok
}

type fakeCitizenshipService struct {
	table staticCitizenships
}

func (f *fakeCitizenshipService) Initialize(ctx context.Context) error { return nil }

func (f *fakeCitizenshipService) Reload(ctx context.Context) (int, error) { return len(f.table), nil }

func (f *fakeCitizenshipService) Get(code string) (models.CitizenshipEntry, bool) {
	return f.table.Get(code)
}

func (f *fakeCitizenshipService) Lookup() mappers.CitizenshipLookup { return f.table }

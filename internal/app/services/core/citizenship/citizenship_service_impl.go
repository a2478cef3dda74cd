package citizenship

import (
	"context"
	"os"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/exceptions"
	"patient-sync-service/internal/pkg/mappers"
	"patient-sync-service/internal/pkg/utils"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

type citizenshipService struct {
	filename string
	Log      *zap.Logger

	table    atomic.Pointer[Table]
	reloadMu sync.Mutex
}

func NewCitizenshipService(filename string, logger *zap.Logger) contracts.CitizenshipService {
	return &citizenshipService{
		filename: filename,
		Log:      logger,
	}
}

func (s *citizenshipService) Initialize(ctx context.Context) error {
	if s.table.Load() != nil {
		return nil
	}
	_, err := s.Reload(ctx)
	return err
}

// Reload parses the source into a fresh table before swapping it in, so a
// failed reload keeps serving the previous table.
func (s *citizenshipService) Reload(ctx context.Context) (int, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("citizenshipService.Reload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, s.filename),
	)

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	file, err := os.Open(s.filename)
	if err != nil {
		s.Log.Error("citizenshipService.Reload error opening source",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCitizenshipTableLoad(err, s.filename)
	}
	defer file.Close()

	table, err := ParseTable(file, s.Log)
	if err != nil {
		s.Log.Error("citizenshipService.Reload error parsing source",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCitizenshipTableLoad(err, s.filename)
	}

	s.table.Store(table)

	s.Log.Info("citizenshipService.Reload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCitizenshipCountKey, table.Len()),
	)
	return table.Len(), nil
}

func (s *citizenshipService) Get(code string) (models.CitizenshipEntry, bool) {
	return s.table.Load().Get(code)
}

func (s *citizenshipService) Lookup() mappers.CitizenshipLookup {
	return s.table.Load()
}

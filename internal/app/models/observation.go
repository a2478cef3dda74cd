package models

import (
	"patient-sync-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

// ObservationKind carries the fixed coding of a laboratory measurement.
// MinValue and MaxValue document the normal range and are not enforced.
type ObservationKind struct {
	Key      string
	System   string
	Code     string
	Name     string
	Unit     string
	MinValue float64
	MaxValue float64
}

var (
	Hemoglobin = ObservationKind{
		Key:      "hemoglobin",
		System:   constvars.LoincCodingSystem,
		Code:     "718-7",
		Name:     "Hemoglobin [Mass/volume] in Blood",
		Unit:     "g/dL",
		MinValue: 133.0,
		MaxValue: 167.0,
	}
	RedBloodCellCount = ObservationKind{
		Key:      "red-blood-cell-count",
		System:   constvars.LoincCodingSystem,
		Code:     "789-8",
		Name:     "Erythrocytes [#/volume] in Blood by Automated count (RBCs)",
		Unit:     "10*6/uL",
		MinValue: 4.5,
		MaxValue: 5.7,
	}
	WhiteBloodCellCount = ObservationKind{
		Key:      "white-blood-cell-count",
		System:   constvars.LoincCodingSystem,
		Code:     "6690-2",
		Name:     "Leukocytes [#/volume] in Blood by Automated count (WBCs)",
		Unit:     "10*3/uL",
		MinValue: 4.0,
		MaxValue: 10.0,
	}
)

var observationKinds = map[string]ObservationKind{
	Hemoglobin.Key:          Hemoglobin,
	RedBloodCellCount.Key:   RedBloodCellCount,
	WhiteBloodCellCount.Key: WhiteBloodCellCount,
}

func ObservationKindByKey(key string) (ObservationKind, bool) {
	kind, ok := observationKinds[key]
	return kind, ok
}

// WithinNormalRange reports whether value lies inside [MinValue, MaxValue].
func (k ObservationKind) WithinNormalRange(value float64) bool {
	return value >= k.MinValue && value <= k.MaxValue
}

type ObservationBase struct {
	ID        string
	Kind      ObservationKind
	Value     float64
	Effective time.Time
}

func NewObservation(kind ObservationKind, value float64, effective time.Time) ObservationBase {
	return ObservationBase{
		ID:        uuid.NewString(),
		Kind:      kind,
		Value:     value,
		Effective: effective,
	}
}

func NewHemoglobin(value float64, effective time.Time) ObservationBase {
	return NewObservation(Hemoglobin, value, effective)
}

func NewRedBloodCellCount(value float64, effective time.Time) ObservationBase {
	return NewObservation(RedBloodCellCount, value, effective)
}

func NewWhiteBloodCellCount(value float64, effective time.Time) ObservationBase {
	return NewObservation(WhiteBloodCellCount, value, effective)
}

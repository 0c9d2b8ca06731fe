package service

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CarrierAggregator recomputes the family-wide carrier percentage and
// writes it back onto every member row.
type CarrierAggregator interface {
	Recompute(ctx context.Context, db *gorm.DB, familyID uuid.UUID) (float64, error)
}

type carrierAggregator struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	classifier  *CarrierClassifier
}

func NewCarrierAggregator(log *logrus.Logger, patientRepo repository.PatientRepository, classifier *CarrierClassifier) CarrierAggregator {
	return &carrierAggregator{
		log:         log,
		patientRepo: patientRepo,
		classifier:  classifier,
	}
}

// Recompute runs against whatever handle it is given; membership mutations
// pass their open transaction so the member read, the classification and
// the fan-out write commit or roll back together. The member rows are read
// FOR UPDATE so concurrent enrollments into the same family serialize.
func (a *carrierAggregator) Recompute(ctx context.Context, db *gorm.DB, familyID uuid.UUID) (float64, error) {
	members, err := a.patientRepo.FindByFamilyIDForUpdate(ctx, db, familyID)
	if err != nil {
		a.log.Warnf("Failed to load family members for recompute: %+v", err)
		return 0, err
	}

	if len(members) == 0 {
		return 0, nil
	}

	carriers := 0
	for i := range members {
		if a.classifier.IsCarrier(&members[i]) {
			carriers++
		}
	}

	// round(100 * carriers / total) half-up to 2 decimals
	percentage, _ := decimal.NewFromInt(int64(carriers)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(len(members))), 2).
		Float64()

	if err := a.patientRepo.UpdateCarrierPercentageByFamily(ctx, db, familyID, percentage); err != nil {
		a.log.Warnf("Failed to store carrier percentage: %+v", err)
		return 0, err
	}

	return percentage, nil
}

package service

import (
	"strings"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
)

// VariantMarker ties a tracked variant name to the substring that flags it
// in a patient's genetic panel text.
type VariantMarker struct {
	Variant string
	Marker  string
}

// DefaultVariantMarkers are the transcript reference accessions reported by
// the exam analyzer for the tracked BRCA variants.
var DefaultVariantMarkers = []VariantMarker{
	{Variant: "BRCA1", Marker: "NM_007294"},
	{Variant: "BRCA2", Marker: "NM_000059"},
}

// CarrierClassifier decides whether a patient counts as a genetic-risk
// carrier. Classification only looks at the patient's own diagnostic
// fields, never at other rows.
type CarrierClassifier struct {
	markers []VariantMarker
}

func NewCarrierClassifier(markers []VariantMarker) *CarrierClassifier {
	if len(markers) == 0 {
		markers = DefaultVariantMarkers
	}
	return &CarrierClassifier{markers: markers}
}

// IsCarrier reports true when the patient has a prior diagnosis or the
// genetic panel mentions any tracked variant marker.
func (c *CarrierClassifier) IsCarrier(patient *entity.Patient) bool {
	if patient.PriorDiagnosis {
		return true
	}
	if patient.GeneticPanel == nil {
		return false
	}
	for _, m := range c.markers {
		if strings.Contains(*patient.GeneticPanel, m.Marker) {
			return true
		}
	}
	return false
}

// DetectedVariants lists the variant names whose markers appear in the
// patient's panel text.
func (c *CarrierClassifier) DetectedVariants(patient *entity.Patient) []string {
	if patient.GeneticPanel == nil {
		return nil
	}
	var variants []string
	for _, m := range c.markers {
		if strings.Contains(*patient.GeneticPanel, m.Marker) {
			variants = append(variants, m.Variant)
		}
	}
	return variants
}

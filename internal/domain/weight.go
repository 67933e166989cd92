package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeightMethod describes how a set of statistical expansion weights was
// derived (e.g. "GREG estimation on 2021 census margins"). Methods are
// global — not owned by any trip — and identified by ShortName for humans,
// ID for machines.
type WeightMethod struct {
	ID          uuid.UUID `json:"id"`
	ShortName   string    `json:"shortName"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// Weight pairs a statistical expansion weight with the method that produced
// it. The method is held by reference and shared across every weighted
// object produced by the same weighting run; it is never copied.
type Weight struct {
	Weight float64       `json:"weight"`
	Method *WeightMethod `json:"method"`
}

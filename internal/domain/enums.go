package domain

import (
	"fmt"
	"strings"
)

// Status is the preparation/delivery progress of a lesson. The string values
// are the wire values shared with the remote spreadsheet endpoint.
type Status string

const (
	StatusToPrepare     Status = "Preparar"
	StatusInPreparation Status = "Preparando"
	StatusDelivered     Status = "Entregue"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusToPrepare, StatusInPreparation, StatusDelivered}

var statusAliases = map[string]Status{
	"preparar":       StatusToPrepare,
	"to-prepare":     StatusToPrepare,
	"to_prepare":     StatusToPrepare,
	"todo":           StatusToPrepare,
	"preparando":     StatusInPreparation,
	"in-preparation": StatusInPreparation,
	"in_preparation": StatusInPreparation,
	"preparing":      StatusInPreparation,
	"entregue":       StatusDelivered,
	"delivered":      StatusDelivered,
	"done":           StatusDelivered,
}

// ParseStatus accepts a wire value (case-insensitive) or one of the English
// aliases and returns the canonical Status.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the three canonical values.
func (s Status) Valid() bool {
	switch s {
	case StatusToPrepare, StatusInPreparation, StatusDelivered:
		return true
	}
	return false
}

// Next returns the status that follows s, wrapping back to ToPrepare.
func (s Status) Next() Status {
	switch s {
	case StatusToPrepare:
		return StatusInPreparation
	case StatusInPreparation:
		return StatusDelivered
	default:
		return StatusToPrepare
	}
}

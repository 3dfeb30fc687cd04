package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Urgency values accepted on purchase requests
const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

const detailsDateLayout = "2006-01-02"

// PurchaseDetails is the details variant for purchase requests.
type PurchaseDetails struct {
	ItemDescription string          `json:"item_description"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	Currency        string          `json:"currency"`
	Vendor          string          `json:"vendor"`
	Urgency         string          `json:"urgency"`
}

// LeaveDetails is the details variant for leave requests.
type LeaveDetails struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// OvertimeDetails is the details variant for overtime requests.
type OvertimeDetails struct {
	Date   string `json:"date"`
	Hours  int    `json:"hours"`
	Reason string `json:"reason"`
}

// ValidateDetails checks that raw matches the details shape declared by
// requestType. Shape validation at the creation boundary is deliberately
// stricter than accepting arbitrary payloads: the stored details always
// parse back into the variant for their type.
func ValidateDetails(requestType string, raw json.RawMessage) error {
	switch requestType {
	case RequestTypePurchase:
		var d PurchaseDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return fmt.Errorf("malformed purchase details: %w", err)
		}
		if d.ItemDescription == "" {
			return fmt.Errorf("purchase details require item_description")
		}
		if d.EstimatedCost.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("purchase details require a positive estimated_cost")
		}
		if d.Currency == "" {
			return fmt.Errorf("purchase details require currency")
		}
		if d.Urgency != UrgencyLow && d.Urgency != UrgencyNormal && d.Urgency != UrgencyHigh {
			return fmt.Errorf("purchase urgency must be low, normal, or high")
		}
		return nil
	case RequestTypeLeave:
		var d LeaveDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return fmt.Errorf("malformed leave details: %w", err)
		}
		if d.LeaveType == "" {
			return fmt.Errorf("leave details require leave_type")
		}
		start, err := time.Parse(detailsDateLayout, d.StartDate)
		if err != nil {
			return fmt.Errorf("leave start_date must be YYYY-MM-DD")
		}
		end, err := time.Parse(detailsDateLayout, d.EndDate)
		if err != nil {
			return fmt.Errorf("leave end_date must be YYYY-MM-DD")
		}
		if end.Before(start) {
			return fmt.Errorf("leave end_date must not precede start_date")
		}
		return nil
	case RequestTypeOvertime:
		var d OvertimeDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return fmt.Errorf("malformed overtime details: %w", err)
		}
		if _, err := time.Parse(detailsDateLayout, d.Date); err != nil {
			return fmt.Errorf("overtime date must be YYYY-MM-DD")
		}
		if d.Hours <= 0 {
			return fmt.Errorf("overtime hours must be a positive integer")
		}
		return nil
	default:
		return fmt.Errorf("unknown request type: %s", requestType)
	}
}

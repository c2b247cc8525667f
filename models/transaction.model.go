package models

import (
	"time"

	"gorm.io/datatypes"
)

// TransactionStatuses are the accepted payment states.
var TransactionStatuses = []string{"pending", "completed", "failed"}

// IsValidTransactionStatus reports whether s is one of TransactionStatuses.
func IsValidTransactionStatus(s string) bool {
	for _, ts := range TransactionStatuses {
		if s == ts {
			return true
		}
	}
	return false
}

// Transaction is an enrollment payment. Its primary key deliberately
// aliases the enrollment id: one payment per enrollment, never rekeyed.
// The foreign key over the shared id is declared on the Enrollment side
// so the constraint is generated on this table.
type Transaction struct {
	ID              uint           `json:"transaction_id" gorm:"primaryKey"`
	Reference       string         `json:"reference" gorm:"uniqueIndex;not null"`
	Method          *string        `json:"method"`
	Amount          float64        `json:"amount" gorm:"default:0"`
	Status          string         `json:"status" gorm:"default:'pending'"`
	GatewayResponse datatypes.JSON `json:"gateway_response"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

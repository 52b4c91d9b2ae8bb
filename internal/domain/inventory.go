package domain

import "time"

const (
	MovementIn  = "in"
	MovementOut = "out"
)

type InventoryMovement struct {
	ID           uint      `json:"id"`
	ProductID    uint      `json:"product_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int       `json:"quantity"`
	Reason       string    `json:"reason"`
	ReferenceID  *uint     `json:"reference_id"`
	CreatedAt    time.Time `json:"created_at"`
}

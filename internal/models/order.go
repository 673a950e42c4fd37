package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Number is the public order identifier shared with the client.
	Number string `gorm:"size:36;uniqueIndex;not null" json:"number"`

	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	Total float64 `json:"total"`

	// pending_payment | paid | fulfilled | cancelled
	Status string `gorm:"size:20;default:'pending_payment'" json:"status"`

	// PaymentPreferenceID and PaymentURL come from the payment provider.
	PaymentPreferenceID string `gorm:"size:100" json:"payment_preference_id"`
	PaymentURL          string `gorm:"size:512" json:"payment_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `json:"order_id"`

	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

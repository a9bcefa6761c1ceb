package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ShippingAddress is the delivery address captured on an order.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// ShippingForm is the raw checkout form as the storefront collects it.
// ToAddress builds the shipping address record from it.
type ShippingForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// ToAddress converts the form into a ShippingAddress, concatenating the
// first and last names into fullName and renaming the street field.
func (f ShippingForm) ToAddress() ShippingAddress {
	return ShippingAddress{
		FullName: f.FirstName + " " + f.LastName,
		Street:   f.Address,
		City:     f.City,
		State:    f.State,
		ZipCode:  f.ZipCode,
		Country:  f.Country,
		Phone:    f.Phone,
	}
}

// Order is an immutable record of a placed order. Items, total and tax are
// captured at creation time and never recomputed; only Status and UpdatedAt
// change afterwards.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	Tax             float64         `json:"tax"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	TrackingNumber  string          `json:"trackingNumber"`
}

// CheckoutRequest is the payload for placing an order. Total and tax are
// accepted for compatibility with older storefront clients but the server
// recomputes both from the current catalogue prices.
type CheckoutRequest struct {
	Items           []CartItem      `json:"items" validate:"required,min=1"`
	Total           float64         `json:"total"`
	Tax             float64         `json:"tax"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
}

// OrderStatusRequest is the payload for an admin status transition.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

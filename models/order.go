package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending   OrderStatus = "Pending"   // Order placed, awaiting dispatch
	OrderStatusShipped   OrderStatus = "Shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "Cancelled" // Cancelled before delivery

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "Pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "Paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "Failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "Refunded" // Money returned to customer
)

// orderTransitions is the closed set of legal status moves. Delivered and
// Cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped: {OrderStatusDelivered, OrderStatusCancelled},
}

// ParseOrderStatus maps a raw string onto the closed status set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// CanTransition reports whether an order may move from one status to another.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	TotalAmount   float64       `gorm:"not null" json:"total_amount"`
	PaymentMethod string        `gorm:"size:50" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(30);default:'Pending'" json:"payment_status"`
	OrderStatus   OrderStatus   `gorm:"type:VARCHAR(30);default:'Pending'" json:"order_status"`

	ShippingAddressID *uint    `json:"shipping_address_id"`
	ShippingAddress   *Address `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`
	TrackingNumber    string   `gorm:"size:100" json:"tracking_number"`

	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem snapshots a product's name and price at the moment the order was
// placed. ProductID is nullable so deleting a product detaches the row
// instead of destroying order history.
type OrderItem struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint  `gorm:"not null;index" json:"order_id"`
	ProductID *uint `json:"product_id"`

	ProductName string  `gorm:"size:200;not null" json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	Subtotal    float64 `gorm:"not null" json:"subtotal"`
}

type Payment struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`

	TransactionID string        `gorm:"size:120" json:"transaction_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Mode          string        `gorm:"size:50" json:"mode"`
	Status        PaymentStatus `gorm:"type:VARCHAR(30)" json:"status"`
	PaidAt        *time.Time    `json:"paid_at"`
}

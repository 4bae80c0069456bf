package entities

import "time"

// The client/order tables below are a relational skeleton for a future
// order-management feature. They are migrated but no procedure touches
// them yet; keep them in sync with the admin team before wiring anything.

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusAssigned   OrderStatus = "assigned"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Client is a paying customer of the agency.
type Client struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	TotalOrders int
	TotalPaid   int
	IsBlocked   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order is a booked engagement between a client and a talent.
type Order struct {
	ID          int64
	OrderNumber string
	ClientID    int64
	TalentID    int64
	TalentType  string // model, voice, creator, writer
	ServiceType string
	Price       int
	Status      OrderStatus
	AdminNotes  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderMessage is a chat message attached to an order.
type OrderMessage struct {
	ID            int64
	OrderID       int64
	SenderType    string // admin, talent, client
	Message       string
	AttachmentURL string
	CreatedAt     time.Time
}

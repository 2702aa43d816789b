package domain

import "time"

type NotificationType string

const (
	NotifBookingCreated   NotificationType = "booking_created"
	NotifPaymentConfirmed NotificationType = "payment_confirmed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifRefundRequired   NotificationType = "refund_required"
	NotifRefundCompleted  NotificationType = "refund_completed"
	NotifCheckedOut       NotificationType = "checked_out"
)

type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	IsRead    bool             `json:"is_read"`
	Data      any              `json:"data,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time        `json:"created_at"`
}

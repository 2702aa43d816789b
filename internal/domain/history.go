package domain

import "time"

// HistoryEvent tags an entry in a booking's status history. The history is
// the system of record for "who did what, when" and is append-only.
type HistoryEvent string

const (
	EventCreated          HistoryEvent = "created"
	EventPaymentConfirmed HistoryEvent = "payment_confirmed"
	EventCheckedIn        HistoryEvent = "checked_in"
	EventCheckedOut       HistoryEvent = "checked_out"
	EventCancelled        HistoryEvent = "cancelled"
	EventRefundCompleted  HistoryEvent = "refund_completed"
)

type HistoryEntry struct {
	Event        HistoryEvent  `json:"event"`
	Timestamp    time.Time     `json:"timestamp"`
	Actor        string        `json:"actor"`
	Reason       string        `json:"reason,omitempty"`
	Reference    string        `json:"reference,omitempty"`
	PaymentShift PaymentStatus `json:"payment_shift,omitempty"`
}

// AppendHistory returns the log with one more entry. The slice is never
// mutated in place so earlier reads stay valid.
func AppendHistory(log []HistoryEntry, e HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(log)+1)
	out = append(out, log...)
	return append(out, e)
}

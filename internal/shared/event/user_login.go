package event

import "time"

const UserLoginDestination string = "user_login"
const UserLoginConsumerAudit string = "user_login_audit"

// UserLoginMessage is one login attempt outcome. EventID deduplicates
// redeliveries.
type UserLoginMessage struct {
	EventID   string    `json:"event_id"`
	UserID    int64     `json:"user_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

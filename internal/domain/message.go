package domain

import "time"

type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

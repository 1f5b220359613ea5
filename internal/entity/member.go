package entity

import "time"

type Member struct {
	MemberID   int64     `json:"member_id"`
	MemberName string    `json:"member_name"`
	Email      string    `json:"email"`
	JoinDate   time.Time `json:"join_date"`
}

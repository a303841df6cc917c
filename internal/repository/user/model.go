package user

import "time"

type UserDB struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

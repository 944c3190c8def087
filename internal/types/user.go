package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleEncoder = "encoder"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Role      string    `gorm:"not null;column:role" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }

func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Name: u.Name, IsAdmin: u.Role == RoleAdmin}
}

// Actor is the caller identity passed explicitly into every store and
// ledger operation. SystemActor stands in for seeded/batch writes with no
// authenticated caller.
type Actor struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	IsAdmin bool      `json:"is_admin"`
}

func SystemActor() Actor {
	return Actor{ID: uuid.Nil, Name: "System", IsAdmin: true}
}

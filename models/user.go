package models

import "time"

const USER_STATUS_AVAILABLE = 0
const USER_STATUS_BLOCKED = 1

// User representa uma conta no sistema. A autenticação é mínima de
// propósito: o produto é o assistente de busca, não o cadastro.
type User struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Email     string     `gorm:"not null;unique" json:"email" form:"email"`
	Password  string     `gorm:"not null" json:"password,omitempty" form:"password"`
	Status    int        `gorm:"default:0" json:"status"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (user User) MissingFields() string {
	if user.Name == "" {
		return "name"
	} else if user.Email == "" {
		return "email"
	} else if user.Password == "" {
		return "password"
	}
	return ""
}

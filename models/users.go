package models

import "time"

type Users struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uk_email" json:"email"`
	FirstName string    `gorm:"column:first_name;type:varchar(150);not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(150);not null" json:"last_name"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"` // bcrypt
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

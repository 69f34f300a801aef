package model

import "time"

type AdminModel struct {
	AdminID           int        `gorm:"primaryKey;autoIncrement;column:admin_id" json:"admin_id"`
	AdminUsername     string     `gorm:"type:varchar(50);uniqueIndex;not null;column:admin_username" json:"admin_username"`
	AdminPasswordHash string     `gorm:"type:varchar(255);not null;column:admin_password_hash" json:"-"`
	AdminFullName     string     `gorm:"type:varchar(100);column:admin_full_name" json:"admin_full_name"`
	AdminLastLogin    *time.Time `gorm:"column:admin_last_login" json:"admin_last_login,omitempty"`
	AdminCreatedAt    time.Time  `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string { return "admins" }

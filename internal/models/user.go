package models

import (
	"time"
)

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	EmailAddress string     `gorm:"column:email_address;type:varchar(255);not null" json:"email_address"`
	APIKeyHash   string     `gorm:"column:api_key_hash;type:char(64);uniqueIndex;not null" json:"-"`
	DateCreated  time.Time  `gorm:"column:date_created;autoCreateTime" json:"date_created"`
	DateModified *time.Time `gorm:"column:date_modified" json:"date_modified"`

	// Relations
	Tasks []Task `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

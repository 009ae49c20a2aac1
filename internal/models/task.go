package models

import (
	"time"
)

type Task struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	UserID       uint64     `gorm:"not null;index" json:"-"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`
	DateCreated  time.Time  `gorm:"column:date_created;autoCreateTime" json:"date_created"`
	DateModified *time.Time `gorm:"column:date_modified" json:"date_modified"`
}

// Package domain contains the persisted models of diagpage.
package domain

import "time"

// FaultRecord is the persisted trace of a rendered diagnostic page. It keeps
// just enough of the request and the error to locate the failure later, the
// full page itself is ephemeral and never stored.
type FaultRecord struct {
	Id        uint64    `gorm:"primaryKey;autoIncrement;column:id"`
	CreatedAt time.Time `gorm:"column:created_at;index"`

	RequestId  string `gorm:"column:request_id"`
	Method     string `gorm:"column:method"`
	Path       string `gorm:"column:path"`
	StatusCode int    `gorm:"column:status_code"`

	Title   string `gorm:"column:title"`
	Message string `gorm:"column:message"`
}

package models

import "time"

// ModuleProgress states
const (
	EstadoPendiente  = "Pendiente"
	EstadoCompletado = "Completado"
)

// ModuleProgress tracks one student's completion of one module. Rows are
// created lazily the first time the student marks the module complete.
type ModuleProgress struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"userId" gorm:"uniqueIndex:idx_progress_user_module;not null"`
	ModuleID        uint       `json:"moduleId" gorm:"uniqueIndex:idx_progress_user_module;not null"`
	Estado          string     `json:"estado" gorm:"not null;default:'Pendiente'"`
	FechaCompletado *time.Time `json:"fechaCompletado"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

package models

import "time"

// ScheduleEvent is a class-schedule entry, optionally tied to a course.
// Any DOCENTE may manage any event; scheduling is shared across teachers.
type ScheduleEvent struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Titulo          string    `json:"titulo" gorm:"not null"`
	Descripcion     string    `json:"descripcion"`
	FechaHoraInicio time.Time `json:"fechaHoraInicio" gorm:"not null"`
	FechaHoraFin    time.Time `json:"fechaHoraFin" gorm:"not null"`
	CourseID        *uint     `json:"courseId" gorm:"index"`
	Curso           *Course   `json:"curso,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

package models

import "time"

// Course levels
const (
	NivelInicial    = "Inicial"
	NivelIntermedio = "Intermedio"
	NivelAvanzado   = "Avanzado"
)

// Course represents a course taught by a DOCENTE user
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Titulo      string    `json:"titulo" gorm:"not null"`
	Descripcion string    `json:"descripcion" gorm:"not null"`
	Nivel       string    `json:"nivel" gorm:"not null;default:'Inicial'"`
	DocenteID   uint      `json:"docenteId" gorm:"index;not null"`
	Docente     *User     `json:"docente,omitempty" gorm:"foreignKey:DocenteID"`
	Modulos     []Module  `json:"modulos,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

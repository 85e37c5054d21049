package models

import "time"

// Module represents a content unit within a course, shown ascending by Orden
type Module struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Titulo           string    `json:"titulo" gorm:"not null"`
	Descripcion      string    `json:"descripcion" gorm:"not null"`
	DuracionEstimada *string   `json:"duracionEstimada"`
	VideoURL         *string   `json:"videoUrl"`
	Orden            int       `json:"orden" gorm:"not null;default:1"`
	CourseID         uint      `json:"courseId" gorm:"index;not null"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

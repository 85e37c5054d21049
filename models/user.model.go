package models

import "time"

// Roles gating write access: DOCENTE manages courses/modules/schedule,
// ESTUDIANTE enrolls and tracks completion.
const (
	RoleDocente    = "DOCENTE"
	RoleEstudiante = "ESTUDIANTE"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nombre    string    `json:"nombre" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Rol       string    `json:"rol" gorm:"not null;default:'ESTUDIANTE'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the fields safe to serialize after register/login.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":     u.ID,
		"nombre": u.Nombre,
		"email":  u.Email,
		"rol":    u.Rol,
	}
}

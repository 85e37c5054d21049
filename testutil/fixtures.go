package testutil

import (
	"testing"
	"time"

	"aula/database"
	"aula/middleware"
	"aula/models"

	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext behind every seeded user's hash
const TestPassword = "secret123"

// SeedUser creates a user with the given role and returns it
func SeedUser(tb testing.TB, nombre, email, rol string) *models.User {
	tb.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Nombre:   nombre,
		Email:    email,
		Password: string(hash),
		Rol:      rol,
	}
	if err := database.Database.Db.Create(user).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return user
}

// Token issues a valid JWT for the user
func Token(tb testing.TB, user *models.User) string {
	tb.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Rol)
	if err != nil {
		tb.Fatalf("sign token: %v", err)
	}
	return token
}

// SeedCourse creates a course owned by the given teacher
func SeedCourse(tb testing.TB, docenteID uint, titulo string) *models.Course {
	tb.Helper()

	course := &models.Course{
		Titulo:      titulo,
		Descripcion: "descripción de " + titulo,
		Nivel:       models.NivelInicial,
		DocenteID:   docenteID,
	}
	if err := database.Database.Db.Create(course).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return course
}

// SeedModule creates a module in the given course
func SeedModule(tb testing.TB, courseID uint, titulo string, orden int) *models.Module {
	tb.Helper()

	module := &models.Module{
		Titulo:      titulo,
		Descripcion: "descripción de " + titulo,
		Orden:       orden,
		CourseID:    courseID,
	}
	if err := database.Database.Db.Create(module).Error; err != nil {
		tb.Fatalf("seed module: %v", err)
	}
	return module
}

// SeedEnrollment enrolls a student in a course
func SeedEnrollment(tb testing.TB, userID, courseID uint) *models.Enrollment {
	tb.Helper()

	enrollment := &models.Enrollment{UserID: userID, CourseID: courseID}
	if err := database.Database.Db.Create(enrollment).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
	return enrollment
}

// SeedEvent creates a schedule event, optionally tied to a course
func SeedEvent(tb testing.TB, titulo string, inicio time.Time, courseID *uint) *models.ScheduleEvent {
	tb.Helper()

	event := &models.ScheduleEvent{
		Titulo:          titulo,
		FechaHoraInicio: inicio,
		FechaHoraFin:    inicio.Add(time.Hour),
		CourseID:        courseID,
	}
	if err := database.Database.Db.Create(event).Error; err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return event
}

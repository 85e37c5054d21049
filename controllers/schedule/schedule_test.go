package scheduleController_test

import (
	"net/http"
	"testing"
	"time"

	"aula/database"
	"aula/models"
	"aula/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEventsAscendingByStart(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	course := testutil.SeedCourse(t, teacher.ID, "Álgebra")

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	testutil.SeedEvent(t, "Tercera clase", base.Add(48*time.Hour), &course.ID)
	testutil.SeedEvent(t, "Primera clase", base, &course.ID)
	testutil.SeedEvent(t, "Segunda clase", base.Add(24*time.Hour), nil)

	resp := testutil.Request(t, app, http.MethodGet, "/api/schedule", testutil.Token(t, teacher), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []models.ScheduleEvent
	testutil.DecodeBody(t, resp, &events)
	require.Len(t, events, 3)
	assert.Equal(t, "Primera clase", events[0].Titulo)
	assert.Equal(t, "Segunda clase", events[1].Titulo)
	assert.Equal(t, "Tercera clase", events[2].Titulo)

	require.NotNil(t, events[0].Curso)
	assert.Equal(t, "Álgebra", events[0].Curso.Titulo)
	assert.Nil(t, events[1].Curso)
}

func TestCreateEventTeacherOnly(t *testing.T) {
	app := testutil.SetupApp(t)
	student := testutil.SeedUser(t, "Sol", "sol@example.com", models.RoleEstudiante)

	resp := testutil.Request(t, app, http.MethodPost, "/api/schedule", testutil.Token(t, student), map[string]string{
		"titulo":          "Clase pirata",
		"fechaHoraInicio": "2026-09-01T10:00:00Z",
		"fechaHoraFin":    "2026-09-01T11:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateEvent(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	otherTeacher := testutil.SeedUser(t, "Beto", "beto@example.com", models.RoleDocente)
	course := testutil.SeedCourse(t, teacher.ID, "Álgebra")

	// Scheduling is shared: a teacher may schedule against another teacher's
	// course.
	resp := testutil.Request(t, app, http.MethodPost, "/api/schedule", testutil.Token(t, otherTeacher), map[string]interface{}{
		"titulo":          "Clase conjunta",
		"descripcion":     "Repaso general",
		"fechaHoraInicio": "2026-09-01T10:00:00Z",
		"fechaHoraFin":    "2026-09-01T11:30:00Z",
		"courseId":        course.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var event models.ScheduleEvent
	testutil.DecodeBody(t, resp, &event)
	require.NotNil(t, event.CourseID)
	assert.Equal(t, course.ID, *event.CourseID)
	assert.True(t, event.FechaHoraFin.After(event.FechaHoraInicio))
}

func TestCreateEventValidation(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	token := testutil.Token(t, teacher)

	endBeforeStart := testutil.Request(t, app, http.MethodPost, "/api/schedule", token, map[string]string{
		"titulo":          "Clase imposible",
		"fechaHoraInicio": "2026-09-01T11:00:00Z",
		"fechaHoraFin":    "2026-09-01T10:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, endBeforeStart.StatusCode)

	badTimestamp := testutil.Request(t, app, http.MethodPost, "/api/schedule", token, map[string]string{
		"titulo":          "Clase rota",
		"fechaHoraInicio": "no es una fecha",
		"fechaHoraFin":    "2026-09-01T10:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, badTimestamp.StatusCode)

	unknownCourse := testutil.Request(t, app, http.MethodPost, "/api/schedule", token, map[string]interface{}{
		"titulo":          "Clase huérfana",
		"fechaHoraInicio": "2026-09-01T10:00:00Z",
		"fechaHoraFin":    "2026-09-01T11:00:00Z",
		"courseId":        999,
	})
	assert.Equal(t, http.StatusNotFound, unknownCourse.StatusCode)
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	event := testutil.SeedEvent(t, "Clase original", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), nil)
	token := testutil.Token(t, teacher)

	updated := testutil.Request(t, app, http.MethodPut, "/api/schedule/1", token, map[string]string{
		"titulo":          "Clase reprogramada",
		"fechaHoraInicio": "2026-09-02T10:00:00Z",
		"fechaHoraFin":    "2026-09-02T11:00:00Z",
	})
	require.Equal(t, http.StatusOK, updated.StatusCode)

	var stored models.ScheduleEvent
	require.NoError(t, database.Database.Db.First(&stored, event.ID).Error)
	assert.Equal(t, "Clase reprogramada", stored.Titulo)

	missing := testutil.Request(t, app, http.MethodDelete, "/api/schedule/999", token, nil)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	deleted := testutil.Request(t, app, http.MethodDelete, "/api/schedule/1", token, nil)
	require.Equal(t, http.StatusOK, deleted.StatusCode)

	var count int64
	database.Database.Db.Model(&models.ScheduleEvent{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

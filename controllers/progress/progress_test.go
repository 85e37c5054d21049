package progressController_test

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

func TestCompleteModule(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	student := testutil.SeedUser(t, "Sol", "sol@example.com", models.RoleEstudiante)
	course := testutil.SeedCourse(t, teacher.ID, "Álgebra")
	module := testutil.SeedModule(t, course.ID, "Módulo uno", 1)
	token := testutil.Token(t, student)

	missing := testutil.Request(t, app, http.MethodPost, "/api/modules/999/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	asTeacher := testutil.Request(t, app, http.MethodPost, "/api/modules/1/complete", testutil.Token(t, teacher), nil)
	assert.Equal(t, http.StatusForbidden, asTeacher.StatusCode)

	before := time.Now().Add(-time.Second)
	first := testutil.Request(t, app, http.MethodPost, "/api/modules/1/complete", token, nil)
	require.Equal(t, http.StatusOK, first.StatusCode)

	var progress models.ModuleProgress
	testutil.DecodeBody(t, first, &progress)
	assert.Equal(t, models.EstadoCompletado, progress.Estado)
	require.NotNil(t, progress.FechaCompletado)
	assert.True(t, progress.FechaCompletado.After(before))

	// Re-completing is idempotent: still one row, timestamp refreshed.
	firstStamp := *progress.FechaCompletado
	second := testutil.Request(t, app, http.MethodPost, "/api/modules/1/complete", token, nil)
	require.Equal(t, http.StatusOK, second.StatusCode)

	var count int64
	database.Database.Db.Model(&models.ModuleProgress{}).
		Where("user_id = ? AND module_id = ?", student.ID, module.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var again models.ModuleProgress
	testutil.DecodeBody(t, second, &again)
	require.NotNil(t, again.FechaCompletado)
	assert.False(t, again.FechaCompletado.Before(firstStamp))
}

// The worked scenario: a teacher builds a two-module course, the student
// enrolls and completes the first module, and the summary reports 50%.
func TestMyProgressScenario(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	student := testutil.SeedUser(t, "Sol", "sol@example.com", models.RoleEstudiante)
	teacherToken := testutil.Token(t, teacher)
	studentToken := testutil.Token(t, student)

	created := testutil.Request(t, app, http.MethodPost, "/api/courses", teacherToken, map[string]string{
		"titulo":      "Álgebra",
		"descripcion": "Curso de álgebra",
		"nivel":       models.NivelInicial,
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)
	var course models.Course
	testutil.DecodeBody(t, created, &course)

	for _, titulo := range []string{"Módulo uno", "Módulo dos"} {
		resp := testutil.Request(t, app, http.MethodPost, "/api/courses/1/modules", teacherToken, map[string]string{
			"titulo":      titulo,
			"descripcion": "Contenido de " + titulo,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	enroll := testutil.Request(t, app, http.MethodPost, "/api/courses/1/enroll", studentToken, nil)
	require.Equal(t, http.StatusCreated, enroll.StatusCode)

	complete := testutil.Request(t, app, http.MethodPost, "/api/modules/1/complete", studentToken, nil)
	require.Equal(t, http.StatusOK, complete.StatusCode)

	resp := testutil.Request(t, app, http.MethodGet, "/api/my-progress", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		Cursos []struct {
			CursoID      uint   `json:"cursoId"`
			CursoTitulo  string `json:"cursoTitulo"`
			TotalModulos int    `json:"totalModulos"`
			Completados  int    `json:"completados"`
			Porcentaje   int    `json:"porcentaje"`
		} `json:"cursos"`
		Resumen struct {
			TotalCursos       int `json:"totalCursos"`
			TotalModulos      int `json:"totalModulos"`
			Completados       int `json:"completados"`
			PorcentajeGeneral int `json:"porcentajeGeneral"`
		} `json:"resumen"`
	}
	testutil.DecodeBody(t, resp, &summary)

	require.Len(t, summary.Cursos, 1)
	assert.Equal(t, course.ID, summary.Cursos[0].CursoID)
	assert.Equal(t, "Álgebra", summary.Cursos[0].CursoTitulo)
	assert.Equal(t, 2, summary.Cursos[0].TotalModulos)
	assert.Equal(t, 1, summary.Cursos[0].Completados)
	assert.Equal(t, 50, summary.Cursos[0].Porcentaje)

	assert.Equal(t, 1, summary.Resumen.TotalCursos)
	assert.Equal(t, 2, summary.Resumen.TotalModulos)
	assert.Equal(t, 1, summary.Resumen.Completados)
	assert.Equal(t, 50, summary.Resumen.PorcentajeGeneral)
}

func TestMyProgressRounding(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	student := testutil.SeedUser(t, "Sol", "sol@example.com", models.RoleEstudiante)
	course := testutil.SeedCourse(t, teacher.ID, "Álgebra")
	testutil.SeedModule(t, course.ID, "Uno", 1)
	testutil.SeedModule(t, course.ID, "Dos", 2)
	testutil.SeedModule(t, course.ID, "Tres", 3)
	testutil.SeedEnrollment(t, student.ID, course.ID)
	token := testutil.Token(t, student)

	complete := testutil.Request(t, app, http.MethodPost, "/api/modules/1/complete", token, nil)
	require.Equal(t, http.StatusOK, complete.StatusCode)

	resp := testutil.Request(t, app, http.MethodGet, "/api/my-progress", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		Cursos []struct {
			Porcentaje int `json:"porcentaje"`
		} `json:"cursos"`
		Resumen struct {
			PorcentajeGeneral int `json:"porcentajeGeneral"`
		} `json:"resumen"`
	}
	testutil.DecodeBody(t, resp, &summary)
	require.Len(t, summary.Cursos, 1)
	assert.Equal(t, 33, summary.Cursos[0].Porcentaje, "1 of 3 rounds to 33")

	// 2 of 3 rounds up to 67.
	complete = testutil.Request(t, app, http.MethodPost, "/api/modules/2/complete", token, nil)
	require.Equal(t, http.StatusOK, complete.StatusCode)
	resp = testutil.Request(t, app, http.MethodGet, "/api/my-progress", token, nil)
	testutil.DecodeBody(t, resp, &summary)
	assert.Equal(t, 67, summary.Cursos[0].Porcentaje)
	assert.Equal(t, 67, summary.Resumen.PorcentajeGeneral)
}

func TestMyProgressEmptyCourse(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	student := testutil.SeedUser(t, "Sol", "sol@example.com", models.RoleEstudiante)
	course := testutil.SeedCourse(t, teacher.ID, "Curso vacío")
	testutil.SeedEnrollment(t, student.ID, course.ID)

	resp := testutil.Request(t, app, http.MethodGet, "/api/my-progress", testutil.Token(t, student), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		Cursos []struct {
			TotalModulos int `json:"totalModulos"`
			Porcentaje   int `json:"porcentaje"`
		} `json:"cursos"`
	}
	testutil.DecodeBody(t, resp, &summary)
	require.Len(t, summary.Cursos, 1)
	assert.Equal(t, 0, summary.Cursos[0].TotalModulos)
	assert.Equal(t, 0, summary.Cursos[0].Porcentaje, "no division by zero on empty courses")
}

func TestMyProgressForTeacherIsZero(t *testing.T) {
	app := testutil.SetupApp(t)
	teacher := testutil.SeedUser(t, "Ana", "ana@example.com", models.RoleDocente)
	testutil.SeedCourse(t, teacher.ID, "Álgebra")

	resp := testutil.Request(t, app, http.MethodGet, "/api/my-progress", testutil.Token(t, teacher), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		Cursos  []interface{} `json:"cursos"`
		Resumen struct {
			TotalCursos       int `json:"totalCursos"`
			PorcentajeGeneral int `json:"porcentajeGeneral"`
		} `json:"resumen"`
	}
	testutil.DecodeBody(t, resp, &summary)
	assert.Empty(t, summary.Cursos)
	assert.Equal(t, 0, summary.Resumen.TotalCursos)
	assert.Equal(t, 0, summary.Resumen.PorcentajeGeneral)
}

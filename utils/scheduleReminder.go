package utils

import (
	"aula/database"
	"aula/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeScheduleReminder starts the daily job that emails enrolled
// students about classes starting within the next 24 hours.
func InitializeScheduleReminder() {
	c := cron.New()

	// Daily at 8 AM server time
	c.AddFunc("0 8 * * *", func() {
		log.Println("[SCHEDULE-REMINDER] Running daily class reminder check...")
		ProcessUpcomingEvents()
	})

	c.Start()
	log.Println("[SCHEDULE-REMINDER] Schedule reminder started - runs daily at 8 AM")
}

// ProcessUpcomingEvents finds events starting within 24h and notifies the
// students enrolled in the event's course. Events without a course have no
// audience and are skipped.
func ProcessUpcomingEvents() {
	db := database.Database.Db
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	var events []models.ScheduleEvent
	err := db.
		Where("course_id IS NOT NULL").
		Where("fecha_hora_inicio BETWEEN ? AND ?", now, tomorrow).
		Find(&events).Error
	if err != nil {
		log.Printf("[SCHEDULE-REMINDER] Error fetching upcoming events: %v", err)
		return
	}

	log.Printf("[SCHEDULE-REMINDER] Found %d events starting within 24h", len(events))

	for _, event := range events {
		var userIDs []uint
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", *event.CourseID).Pluck("user_id", &userIDs).Error; err != nil {
			log.Printf("[SCHEDULE-REMINDER] Error fetching enrollments for course %d: %v", *event.CourseID, err)
			continue
		}
		if len(userIDs) == 0 {
			continue
		}

		var students []models.User
		if err := db.Where("id IN ?", userIDs).Find(&students).Error; err != nil {
			log.Printf("[SCHEDULE-REMINDER] Error fetching students: %v", err)
			continue
		}

		fecha := event.FechaHoraInicio.Format("02/01/2006 15:04")
		for _, student := range students {
			SendEventReminderEmail(student.Email, student.Nombre, event.Titulo, fecha)
		}
		log.Printf("[SCHEDULE-REMINDER] Sent %d reminders for event %d", len(students), event.ID)
	}
}

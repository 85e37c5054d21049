package models

import "time"

// Enrollment links a student to a course. The composite unique index is the
// storage-layer guarantee that a concurrent duplicate enroll cannot produce
// two rows; the handler check only exists for the friendly error message.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID  uint      `json:"courseId" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

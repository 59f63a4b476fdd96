package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is a catalog entry taught by one or more faculty members
type Course struct {
	ID         uuid.UUID  `json:"_id"`
	Program    Program    `json:"program"`
	Dept       Department `json:"dept"`
	Year       int        `json:"year"`
	Sem        int        `json:"sem"`
	CourseCode string     `json:"courseCode"`
	CourseName string     `json:"courseName"`
	CourseType CourseType `json:"courseType"`
	Faculty    []string   `json:"faculty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CourseFilter narrows a course listing; zero values are ignored
type CourseFilter struct {
	Program    Program
	Dept       Department
	Year       int
	Sem        int
	CourseType CourseType
	CourseCode string
}

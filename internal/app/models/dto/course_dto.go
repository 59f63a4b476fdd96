package dto

import "github.com/necfeedback/coursefeedback/internal/app/models"

// CourseRequest represents course creation and update data
type CourseRequest struct {
	Program    models.Program    `json:"program" binding:"required,program"`
	Dept       models.Department `json:"dept" binding:"required,dept"`
	Year       int               `json:"year" binding:"required,min=1,max=4"`
	Sem        int               `json:"sem" binding:"required,min=1,max=8"`
	CourseCode string            `json:"courseCode" binding:"required,coursecode"`
	CourseName string            `json:"courseName" binding:"required"`
	CourseType string            `json:"courseType" binding:"required,coursetype"`
	Faculty    []string          `json:"faculty" binding:"required,min=1,dive,required"`
}

// CourseListQuery represents the optional filters of the course listing
type CourseListQuery struct {
	Program    string `form:"program"`
	Dept       string `form:"dept"`
	Year       int    `form:"year" binding:"omitempty,min=1,max=4"`
	Sem        int    `form:"sem" binding:"omitempty,min=1,max=8"`
	CourseType string `form:"courseType"`
}

// CourseMessageResponse wraps a course with a status message
type CourseMessageResponse struct {
	Message string         `json:"message" example:"Course added successfully"`
	Course  *models.Course `json:"course,omitempty"`
}

// CourseRowData carries the field values reported for one batch row.
// Year and Sem hold ints for normalized rows and raw strings for rejected input.
type CourseRowData struct {
	ID         string      `json:"_id,omitempty"`
	Program    string      `json:"program"`
	Dept       string      `json:"dept"`
	Year       interface{} `json:"year"`
	Sem        interface{} `json:"sem"`
	CourseCode string      `json:"courseCode"`
	CourseName string      `json:"courseName"`
	CourseType string      `json:"courseType"`
	Faculty    []string    `json:"faculty"`
}

// RejectedCourseRow is a batch row that was not persisted
type RejectedCourseRow struct {
	CourseRowData
	Reason string `json:"message"`
}

// CourseBatchResponse is the outcome of a course batch upload
type CourseBatchResponse struct {
	Message  string              `json:"message" example:"Course batch uploaded successfully"`
	Accepted []CourseRowData     `json:"success"`
	Rejected []RejectedCourseRow `json:"error"`
}

package models

import "strings"

// RoleType defines the account role carried in access tokens
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// Program is the degree program a course belongs to
type Program string

const (
	ProgramBE    Program = "BE"
	ProgramBTech Program = "BTECH"
)

// Programs lists the accepted programs
var Programs = []Program{ProgramBE, ProgramBTech}

// Department is the offering department of a course
type Department string

const (
	DeptCSE   Department = "CSE"
	DeptIT    Department = "IT"
	DeptAIDS  Department = "AIDS"
	DeptECE   Department = "ECE"
	DeptEEE   Department = "EEE"
	DeptMECH  Department = "MECH"
	DeptCIVIL Department = "CIVIL"
)

// Departments lists the accepted departments
var Departments = []Department{DeptCSE, DeptIT, DeptAIDS, DeptECE, DeptEEE, DeptMECH, DeptCIVIL}

// CourseType selects the feedback question set that applies to a course
type CourseType string

const (
	CourseTypeTheory     CourseType = "theory"
	CourseTypePractical  CourseType = "practical"
	CourseTypeIntegrated CourseType = "integrated"
)

// CourseTypes lists the accepted course types
var CourseTypes = []CourseType{CourseTypeTheory, CourseTypePractical, CourseTypeIntegrated}

// Year and semester bounds
const (
	MinYear     = 1
	MaxYear     = 4
	MinSemester = 1
	MaxSemester = 8
)

// IsValid reports whether p is a known program
func (p Program) IsValid() bool {
	for _, v := range Programs {
		if p == v {
			return true
		}
	}
	return false
}

// IsValid reports whether d is a known department
func (d Department) IsValid() bool {
	for _, v := range Departments {
		if d == v {
			return true
		}
	}
	return false
}

// IsValid reports whether t is a known course type
func (t CourseType) IsValid() bool {
	for _, v := range CourseTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseCourseType lower-cases and trims s before matching it against the known course types
func ParseCourseType(s string) (CourseType, bool) {
	t := CourseType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

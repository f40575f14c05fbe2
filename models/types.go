package models

// User roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleMaster  = "master"
)

// Request types
//
// The `validate` tags are the full request schema per endpoint: required
// fields must be present, everything else is optional.

type LoginRequest struct {
	User string `json:"user" validate:"required"`
	Pass string `json:"pass" validate:"required"`
}

type RegisterRequest struct {
	Type      string `json:"type" validate:"required"`
	Name      string `json:"name" validate:"required"`
	User      string `json:"user"`
	Pass      string `json:"pass"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	ClassCode string `json:"classCode"`
}

type CreateClassRequest struct {
	Name      string `json:"name" validate:"required"`
	TeacherID string `json:"teacherId" validate:"required"`
	Theme     string `json:"theme"`
}

type JoinClassRequest struct {
	Code string `json:"code" validate:"required"`
}

type CreateHistoryRequest struct {
	Type        string `json:"type" validate:"required"`
	UserID      string `json:"userId"`
	StudentName string `json:"studentName"`
	Theme       string `json:"theme"`
	Score       *int   `json:"score"`
	Total       *int   `json:"total"`
	Percentage  *int   `json:"percentage"`
	Details     string `json:"details"`
}

// Response types

type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type CreateClassResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

type CreateHistoryResponse struct {
	Msg string `json:"msg"`
}

// Domain types
//
// JSON keys mirror the column names so records serialize as the same
// key-value pairs the storage layer holds. That includes users.password:
// login and register responses expose the bcrypt hash. Documented current
// behavior, not something to build on.

type User struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	DOB      *string `json:"dob"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	ClassID  *string `json:"class_id"`
}

type Class struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Theme     *string `json:"theme"`
	TeacherID string  `json:"teacher_id"`
	CreatedAt string  `json:"created_at"`
}

// HistoryRecord is immutable once written. StudentName is copied at write
// time so the display value survives later user changes.
type HistoryRecord struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	UserID      *string `json:"user_id"`
	StudentName *string `json:"student_name_snapshot"`
	Theme       *string `json:"theme"`
	Score       *int    `json:"score"`
	Total       *int    `json:"total"`
	Percentage  *int    `json:"percentage"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
	Details     *string `json:"details"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

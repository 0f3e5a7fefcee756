package models

// StudentScore is one row of the per-student average score report.
type StudentScore struct {
	FullName        string   `json:"full_name" db:"full_name"`
	AverageScore    *float64 `json:"average_score" db:"average_score"` // nil when no submission is graded yet
	SubmissionCount int64    `json:"submission_count" db:"submission_count"`
}

// InstructorRevenue is one row of the per-instructor sales report.
type InstructorRevenue struct {
	FullName     string `json:"full_name" db:"full_name"`
	TotalSales   int64  `json:"total_sales" db:"total_sales"`
	TotalRevenue int64  `json:"total_revenue" db:"total_revenue"`
}

package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	Users       *UserRepository
	Courses     *CourseRepository
	Modules     *ModuleRepository
	Enrollments *EnrollmentRepository
	Assignments *AssignmentRepository
	Submissions *SubmissionRepository
	Analytics   *AnalyticsRepository
}

// NewRepositories initializes all repositories over the same connection
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(conn),
		Courses:     NewCourseRepository(conn),
		Modules:     NewModuleRepository(conn),
		Enrollments: NewEnrollmentRepository(conn),
		Assignments: NewAssignmentRepository(conn),
		Submissions: NewSubmissionRepository(conn),
		Analytics:   NewAnalyticsRepository(conn),
	}
}

// WithTx returns a set of repositories that all run inside tx.
func (r *Repositories) WithTx(tx pgx.Tx) *Repositories {
	return NewRepositories(tx)
}

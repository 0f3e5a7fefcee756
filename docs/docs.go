// Package docs holds the Swagger 2.0 document served at /swagger/index.html.
// Keep it in step with the swag annotations on the controllers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analytics/instructor-revenue": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Instructor revenue",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.InstructorRevenue"}}}
                }
            }
        },
        "/analytics/student-scores": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Student average scores",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.StudentScore"}}}
                }
            }
        },
        "/assignments/{id}/submissions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Submit homework",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Assignment ID", "name": "id", "in": "path", "required": true},
                    {"description": "Submission", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SubmissionResponse"}},
                    "400": {"description": "Unknown assignment or student", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/": {
            "get": {
                "description": "Returns courses with min_price <= price <= max_price, most expensive first.",
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses by price",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Minimum price", "name": "min_price", "in": "query"},
                    {"type": "integer", "default": 100000, "description": "Maximum price", "name": "max_price", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CourseResponse"}}},
                    "400": {"description": "Non-integer price", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates the course and its modules in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a course",
                "parameters": [
                    {"description": "Course information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CourseResponse"}},
                    "400": {"description": "Invalid body or unknown instructor", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get a course",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CourseResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}/assignments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Instructors may only add assignments to their own courses.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create an assignment",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Assignment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateAssignmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AssignmentResponse"}},
                    "400": {"description": "Invalid body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Not the course instructor", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}/enrollments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Enroll a student",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Student", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EnrollRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.EnrollmentResponse"}},
                    "400": {"description": "Unknown student or course", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}/modules": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List course modules",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ModuleResponse"}}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/modules/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["modules"],
                "summary": "Delete a module",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Module ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Module deleted"},
                    "403": {"description": "Admins only", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Module not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/submissions/{id}/grade": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "The score must lie within 0..max_score of the assignment.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Grade a submission",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "Submission ID", "name": "id", "in": "path", "required": true},
                    {"description": "Score", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GradeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmissionResponse"}},
                    "400": {"description": "Score out of range", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Not the course instructor", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Submission not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}}
                }
            },
            "post": {
                "description": "Creates a user. Role defaults to student.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "User created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Email already registered, invalid role or invalid body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Marks the user inactive. The record stays readable.",
                "tags": ["users"],
                "summary": "Deactivate a user",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "User deactivated"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Admins only", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{id}/enrollments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List a user's enrollments",
                "parameters": [
                    {"minimum": 1, "type": "integer", "format": "int64", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.EnrollmentResponse"}}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AssignmentResponse": {
            "type": "object",
            "properties": {
                "course_id": {"type": "integer"},
                "due_date": {"type": "string"},
                "id": {"type": "integer"},
                "max_score": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "dto.CourseResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string", "example": "2025-04-23T12:01:05Z"},
                "description": {"type": "string"},
                "id": {"type": "integer", "example": 1},
                "instructor_id": {"type": "integer"},
                "price": {"type": "integer", "example": 1500},
                "title": {"type": "string", "example": "Go for Backend Developers"}
            }
        },
        "dto.CreateAssignmentRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "due_date": {"type": "string", "example": "2025-06-01T00:00:00Z"},
                "max_score": {"type": "integer", "minimum": 0, "example": 100},
                "title": {"type": "string", "maxLength": 150, "example": "Final Project"}
            }
        },
        "dto.CreateCourseRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "description": {"type": "string", "example": "From zero to production services"},
                "instructor_id": {"type": "integer", "example": 1},
                "module_titles": {"type": "array", "items": {"type": "string"}},
                "price": {"type": "integer", "minimum": 0, "maximum": 2147483647, "example": 1500},
                "title": {"type": "string", "maxLength": 200, "example": "Go for Backend Developers"}
            }
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["email", "full_name"],
            "properties": {
                "email": {"type": "string", "example": "anna@lms.local"},
                "full_name": {"type": "string", "maxLength": 100, "example": "Anna Smith"},
                "role": {"type": "string", "example": "student"}
            }
        },
        "dto.EnrollRequest": {
            "type": "object",
            "required": ["student_id"],
            "properties": {
                "student_id": {"type": "integer", "example": 2}
            }
        },
        "dto.EnrollmentResponse": {
            "type": "object",
            "properties": {
                "course_id": {"type": "integer"},
                "enrolled_at": {"type": "string", "example": "2025-04-23T12:01:05Z"},
                "id": {"type": "integer"},
                "status": {"type": "string", "example": "active"},
                "user_id": {"type": "integer"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "details": {},
                "field": {"type": "string", "example": "email"},
                "message": {"type": "string", "example": "User not found"},
                "severity": {"type": "string", "example": "ERROR"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "User not found"},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "success": {"type": "boolean", "example": false},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.GradeRequest": {
            "type": "object",
            "required": ["score"],
            "properties": {
                "score": {"type": "integer", "example": 95}
            }
        },
        "dto.ModuleResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "course_id": {"type": "integer"},
                "id": {"type": "integer"},
                "order_index": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "dto.SubmissionResponse": {
            "type": "object",
            "properties": {
                "assignment_id": {"type": "integer"},
                "content": {"type": "string"},
                "id": {"type": "integer"},
                "score": {"type": "integer"},
                "student_id": {"type": "integer"},
                "submitted_at": {"type": "string"}
            }
        },
        "dto.SubmitRequest": {
            "type": "object",
            "required": ["content", "student_id"],
            "properties": {
                "content": {"type": "string", "example": "https://github.com/anna/final"},
                "student_id": {"type": "integer", "example": 2}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "anna@lms.local"},
                "full_name": {"type": "string", "example": "Anna Smith"},
                "id": {"type": "integer", "example": 1},
                "is_active": {"type": "boolean", "example": true},
                "role": {"type": "string", "example": "student"}
            }
        },
        "models.InstructorRevenue": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "total_revenue": {"type": "integer"},
                "total_sales": {"type": "integer"}
            }
        },
        "models.StudentScore": {
            "type": "object",
            "properties": {
                "average_score": {"type": "number"},
                "full_name": {"type": "string"},
                "submission_count": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "LMS API",
	Description:      "API for a learning management system: users, courses, enrollments, assignments and grading.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

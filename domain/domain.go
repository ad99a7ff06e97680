package domain

import (
	"math/rand/v2"
	"time"

	"github.com/bxcodec/faker/v4"
)

type Employee struct {
	ID          int
	FullName    string
	Email       string
	JobPosition string
	Department  string
	Salary      int
	HiredAt     time.Time
}

// Headers is the column layout matching Employee.Row.
var Headers = []string{"№", "Full name", "Email", "Position", "Department", "Salary", "Hired"}

var jobPositions = []string{
	"Software Engineer",
	"Backend Developer",
	"Frontend Developer",
	"DevOps Engineer",
	"QA Engineer",
	"Project Manager",
}

var departments = []string{"IT", "Finance", "HR", "Marketing", "Management"}

// GenerateEmployees creates n employees with random data.
func GenerateEmployees(n int) []Employee {
	now := time.Now()
	employees := make([]Employee, n)

	for i := range n {
		employees[i] = Employee{
			ID:          i + 1,
			FullName:    faker.Name(),
			Email:       faker.Email(),
			JobPosition: jobPositions[rand.IntN(len(jobPositions))],
			Department:  departments[rand.IntN(len(departments))],
			Salary:      1000 + rand.IntN(90)*50,
			HiredAt:     now.AddDate(0, 0, -rand.IntN(3650)),
		}
	}

	return employees
}

// Row returns the employee's cells in Headers order.
func (e Employee) Row() []any {
	return []any{e.ID, e.FullName, e.Email, e.JobPosition, e.Department, e.Salary, e.HiredAt.Format(time.DateOnly)}
}

// Rows converts employees into table rows.
func Rows(employees []Employee) [][]any {
	rows := make([][]any, len(employees))
	for i, e := range employees {
		rows[i] = e.Row()
	}
	return rows
}

package employee

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/bxcodec/faker/v4"
	"github.com/orayew2002/rast-attendance/domain"
)

// Column headers of the roster workbook, in the order Sample writes them.
const (
	ColSeq      = "S#"
	ColCode     = "CODE"
	ColName     = "NAME"
	ColOvertime = "Overtime Hours"
	ColAbsent   = "ABSENT DAYS"
)

// headers defines the column layout for the roster table.
var headers = []string{ColSeq, ColCode, ColName, ColOvertime, ColAbsent}

// Sample returns n made-up roster rows, handy as a fill-in template.
func Sample(n int) []domain.Employee {
	employees := make([]domain.Employee, n)
	for i := range n {
		absent := ""
		if rand.IntN(3) == 0 {
			absent = strconv.Itoa(rand.IntN(3) + 1)
		}
		employees[i] = domain.Employee{
			Seq:           strconv.Itoa(i + 1),
			Code:          fmt.Sprintf("EMP%03d", i+1),
			Name:          faker.Name(),
			OvertimeHours: rand.IntN(5) * 4,
			AbsentDays:    absent,
		}
	}
	return employees
}

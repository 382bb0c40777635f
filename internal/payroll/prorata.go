package payroll

import (
	"errors"
	"fmt"
)

var ErrInvalidStartDay = errors.New("start day must be between 1 and days in month")

// ProRataSalary pays a partial first month at the fixed 30-day daily rate
// for each day from startDay through the end of the month.
func ProRataSalary(monthlySalary float64, startDay, daysInMonth int) (float64, error) {
	daysWorked, err := daysWorkedFrom(startDay, daysInMonth)
	if err != nil {
		return 0, err
	}
	return Round2(monthlySalary / DaysPerMonth * float64(daysWorked)), nil
}

// ProRataSalaryActualDays is ProRataSalary with the daily rate taken over
// the real length of the month.
func ProRataSalaryActualDays(monthlySalary float64, startDay, daysInMonth int) (float64, error) {
	daysWorked, err := daysWorkedFrom(startDay, daysInMonth)
	if err != nil {
		return 0, err
	}
	return Round2(monthlySalary / float64(daysInMonth) * float64(daysWorked)), nil
}

func daysWorkedFrom(startDay, daysInMonth int) (int, error) {
	if startDay < 1 || startDay > daysInMonth {
		return 0, fmt.Errorf("%w: got day %d of %d", ErrInvalidStartDay, startDay, daysInMonth)
	}
	return daysInMonth - startDay + 1, nil
}

package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid payroll period")
	ErrNoEmployees   = errors.New("no employees matched the payroll run")
)

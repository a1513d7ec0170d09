// Copyright (c) 2025 Hiringhook
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package query picks the SQL answer submitted for a registration number.
// The choice depends only on the parity of the number formed by the last two
// characters of the registration number: odd numbers get the salary report,
// even numbers get the product revenue report.
package query

import (
	"fmt"
	"strconv"

	apperrors "hiringhook/cli/internal/errors"
)

// Parity is the odd/even branch of a registration number.
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// Query is a selected SQL answer.
type Query struct {
	Parity Parity
	Title  string
	SQL    string
}

// SalaryAboveDepartmentAverage lists employees earning more than the average
// of their own department.
const SalaryAboveDepartmentAverage = `SELECT
    e.employee_id,
    e.employee_name,
    d.department_name,
    e.salary
FROM employees e
JOIN departments d ON e.department_id = d.department_id
WHERE e.salary > (
    SELECT AVG(salary)
    FROM employees
    WHERE department_id = e.department_id
)
ORDER BY e.salary DESC;
`

// ProductRevenueLastSixMonths reports per-product sales over the last six
// months for products that sold more than 100 units.
const ProductRevenueLastSixMonths = `SELECT
    p.product_name,
    c.category_name,
    SUM(s.quantity_sold) as total_sold,
    SUM(s.quantity_sold * p.unit_price) as total_revenue
FROM products p
JOIN categories c ON p.category_id = c.category_id
JOIN sales s ON p.product_id = s.product_id
WHERE s.sale_date >= DATE_SUB(CURDATE(), INTERVAL 6 MONTH)
GROUP BY p.product_id, p.product_name, c.category_name
HAVING total_sold > 100
ORDER BY total_revenue DESC;
`

var (
	oddQuery = Query{
		Parity: Odd,
		Title:  "Employees above department average salary",
		SQL:    SalaryAboveDepartmentAverage,
	}
	evenQuery = Query{
		Parity: Even,
		Title:  "Product revenue over the last six months",
		SQL:    ProductRevenueLastSixMonths,
	}
)

// LastTwoDigits parses the last two characters of regNo as an integer.
func LastTwoDigits(regNo string) (int, error) {
	if len(regNo) < 2 {
		return 0, apperrors.New(apperrors.QuerySelectionFailed,
			fmt.Sprintf("registration number %q is shorter than two characters", regNo))
	}
	n, err := strconv.Atoi(regNo[len(regNo)-2:])
	if err != nil {
		return 0, apperrors.Wrap(apperrors.QuerySelectionFailed,
			fmt.Sprintf("registration number %q does not end in two digits", regNo), err)
	}
	return n, nil
}

// ParityOf returns the parity of regNo's last two digits.
func ParityOf(regNo string) (Parity, error) {
	n, err := LastTwoDigits(regNo)
	if err != nil {
		return Even, err
	}
	if n%2 != 0 {
		return Odd, nil
	}
	return Even, nil
}

// Select returns the query for regNo.
func Select(regNo string) (Query, error) {
	p, err := ParityOf(regNo)
	if err != nil {
		return Query{}, err
	}
	if p == Odd {
		return oddQuery, nil
	}
	return evenQuery, nil
}

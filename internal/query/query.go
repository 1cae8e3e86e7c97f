// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package query holds the fixed reporting query submitted by the webhook task.
//
// The query answers: the highest salary credited to an employee, excluding payments
// made on the first day of any month, together with the employee's full name, age
// and department. It targets the MySQL dialect.
//
// Tables:
//   - DEPARTMENT (DEPARTMENT_ID, DEPARTMENT_NAME)
//   - EMPLOYEE (EMP_ID, FIRST_NAME, LAST_NAME, DOB, GENDER, DEPARTMENT)
//   - PAYMENTS (PAYMENT_ID, EMP_ID, AMOUNT, PAYMENT_TIME)
package query

import "strings"

const highestSalary = `SELECT p.AMOUNT AS highest_salary,
       CONCAT(e.FIRST_NAME, ' ', e.LAST_NAME) AS full_name,
       TIMESTAMPDIFF(YEAR, e.DOB, CURDATE()) AS age,
       d.DEPARTMENT_NAME
FROM PAYMENTS p
INNER JOIN EMPLOYEE e ON p.EMP_ID = e.EMP_ID
INNER JOIN DEPARTMENT d ON e.DEPARTMENT = d.DEPARTMENT_ID
WHERE DAY(p.PAYMENT_TIME) != 1
ORDER BY p.AMOUNT DESC
LIMIT 1`

// Text returns the query in its readable multi-line form.
func Text() string {
	return highestSalary
}

// SingleLine returns the query as transmitted: one line, single-spaced.
func SingleLine() string {
	return Collapse(Text())
}

// Collapse replaces every run of whitespace, newlines included, with a single
// space and trims both ends.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

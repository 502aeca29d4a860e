// Package dashboard holds the two operations the front-end calls: the greeting
// and the fixed set of dashboard KPI cards. Both are pure and safe for concurrent use.
package dashboard

import "fmt"

const greetingTemplate = "Hello, %s! You have been greeted by the backend!"

// Greet interpolates name into the greeting template. Any string is accepted,
// including the empty string, and is echoed verbatim.
func Greet(name string) string {
	return fmt.Sprintf(greetingTemplate, name)
}

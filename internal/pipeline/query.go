package pipeline

import "fmt"

// BuildQuery formats the persona and job into the literal query sentence
// scored against every candidate text.
func BuildQuery(persona, job string) string {
	return fmt.Sprintf("As a %s, %s", persona, job)
}

package grading

type Grader interface {
	Grade(submitted, expected string) Result
}

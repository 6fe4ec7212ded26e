package costpolicy

import (
	"errors"
	"fmt"
)

var ErrUnknownProblem = errors.New("unknown problem")

// Problem a named query of the public surface. Problems 4 to 6 were meant to
// model time and deadline constraints but there is no schedule data, so they
// run problem 3's policy. AliasOf reports that.
type Problem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Policy  Policy `json:"-"`
	AliasOf int    `json:"alias_of,omitempty"`
}

var problems = []Problem{
	{ID: 1, Title: "Shortest car route", Policy: Distance},
	{ID: 2, Title: "Cheapest route (car + metro)", Policy: Economy},
	{ID: 3, Title: "Cheapest route (all modes)", Policy: AllModes},
	{ID: 4, Title: "Cheapest route with time (simplified)", Policy: AllModes, AliasOf: 3},
	{ID: 5, Title: "Fastest route (simplified)", Policy: AllModes, AliasOf: 3},
	{ID: 6, Title: "Cheapest route with deadline (simplified)", Policy: AllModes, AliasOf: 3},
}

func Problems() []Problem {
	out := make([]Problem, len(problems))
	copy(out, problems)
	return out
}

func ProblemByID(id int) (Problem, error) {
	if id < 1 || id > len(problems) {
		return Problem{}, fmt.Errorf("%w: %d, want 1..%d", ErrUnknownProblem, id, len(problems))
	}
	return problems[id-1], nil
}

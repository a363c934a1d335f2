// Package verify runs the Pointed, Functor and Monad law checks over sample values.
package verify

import (
	"strconv"

	"justisgipson/monads/fperr"
	"justisgipson/monads/std"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of one law check on one sample.
type Result struct {
	Container string
	Law       string
	Sample    string
	Err       error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Report lists every check in the order it ran.
type Report struct {
	Results []Result
}

// Failed returns the results whose check reported a violation.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Suite is a named group of checks for one container type.
type Suite struct {
	Container string
	Checks    []Check
}

// Check runs one law against one sample.
type Check struct {
	Law    string
	Sample string
	Run    func() error
}

// Run executes the suites, logs every check and returns the violations as one *fperr.MultiError.
func Run(logger logrus.FieldLogger, suites ...Suite) (Report, error) {
	if len(suites) == 0 {
		suites = DefaultSuites()
	}
	var report Report
	errs := &fperr.MultiError{}
	for _, suite := range suites {
		log := logger.WithField("container", suite.Container)
		for _, c := range suite.Checks {
			err := c.Run()
			report.Results = append(report.Results, Result{
				Container: suite.Container,
				Law:       c.Law,
				Sample:    c.Sample,
				Err:       err,
			})
			entry := log.WithFields(logrus.Fields{"law": c.Law, "sample": c.Sample})
			if err != nil {
				entry.WithError(err).Error("law violated")
				errs.Append(err)
				continue
			}
			entry.Debug("law holds")
		}
	}
	return report, errs.ErrOrNil()
}

// DefaultSuites covers Identity[int], Identity[string] and Pair[int, int].
func DefaultSuites() []Suite {
	return []Suite{IdentityIntSuite(), IdentityStringSuite(), PairSuite()}
}

func IdentityIntSuite() Suite {
	const name = "Identity[int]"
	var of std.Constructor[int, std.Identity[int]] = std.NewIdentity[int]
	triple := func(x int) int { return x * 3 }
	minus3 := func(x int) int { return x - 3 }
	minus3M := func(x int) std.Identity[int] { return of(x - 3) }
	show := func(x int) std.Identity[string] { return std.NewIdentity(strconv.Itoa(x)) }

	s := Suite{Container: name}
	for _, x := range []int{5, 0, -12, 1 << 30} {
		sample := strconv.Itoa(x)
		m := of(x)
		s.Checks = append(s.Checks,
			Check{std.LawRoundTrip, sample, func() error { return std.CheckRoundTrip(name, x, of) }},
			Check{std.LawFunctorIdentity, sample, func() error { return std.CheckFunctorIdentity(name, m, of) }},
			Check{std.LawFunctorComposition, sample, func() error {
				return std.CheckFunctorComposition(name, m, triple, minus3, of, of)
			}},
			Check{std.LawLeftIdentity, sample, func() error { return std.CheckLeftIdentity(name, x, of, minus3M) }},
			Check{std.LawRightIdentity, sample, func() error { return std.CheckRightIdentity(name, m, of) }},
			Check{std.LawAssociativity, sample, func() error { return std.CheckAssociativity(name, m, minus3M, show) }},
		)
	}
	return s
}

func IdentityStringSuite() Suite {
	const name = "Identity[string]"
	var of std.Constructor[string, std.Identity[string]] = std.NewIdentity[string]
	length := func(s string) int { return len(s) }
	even := func(n int) bool { return n%2 == 0 }
	echo := func(s string) std.Identity[string] { return of(s + s) }
	count := func(s string) std.Identity[int] { return std.NewIdentity(len(s)) }

	s := Suite{Container: name}
	for _, x := range []string{"", "monad", "λ"} {
		sample := strconv.Quote(x)
		m := of(x)
		s.Checks = append(s.Checks,
			Check{std.LawRoundTrip, sample, func() error { return std.CheckRoundTrip(name, x, of) }},
			Check{std.LawFunctorIdentity, sample, func() error { return std.CheckFunctorIdentity(name, m, of) }},
			Check{std.LawFunctorComposition, sample, func() error {
				return std.CheckFunctorComposition(name, m, length, even, std.NewIdentity[int], std.NewIdentity[bool])
			}},
			Check{std.LawLeftIdentity, sample, func() error { return std.CheckLeftIdentity(name, x, of, echo) }},
			Check{std.LawRightIdentity, sample, func() error { return std.CheckRightIdentity(name, m, of) }},
			Check{std.LawAssociativity, sample, func() error { return std.CheckAssociativity(name, m, echo, count) }},
		)
	}
	return s
}

func PairSuite() Suite {
	const name = "Pair[int, int]"
	type unit = std.Tuple[int, int]
	var of std.Constructor[unit, std.Pair[int, int]] = std.PairOf[int, int]
	scale := func(t unit) unit { return std.NewTuple(t.V1*2, t.V2+3) }
	swap := func(t unit) unit { return t.Swap() }
	swapM := func(t unit) std.Pair[int, int] { return of(t.Swap()) }
	sum := func(t unit) std.Identity[int] { return std.NewIdentity(t.V1 + t.V2) }

	s := Suite{Container: name}
	for _, x := range []unit{std.NewTuple(1, 2), std.NewTuple(0, 0), std.NewTuple(-3, 7)} {
		sample := x.String()
		m := of(x)
		s.Checks = append(s.Checks,
			Check{std.LawRoundTrip, sample, func() error { return std.CheckRoundTrip(name, x, of) }},
			Check{std.LawFunctorIdentity, sample, func() error { return std.CheckFunctorIdentity(name, m, of) }},
			Check{std.LawFunctorComposition, sample, func() error {
				return std.CheckFunctorComposition(name, m, scale, swap, of, of)
			}},
			Check{std.LawLeftIdentity, sample, func() error { return std.CheckLeftIdentity(name, x, of, swapM) }},
			Check{std.LawRightIdentity, sample, func() error { return std.CheckRightIdentity(name, m, of) }},
			Check{std.LawAssociativity, sample, func() error { return std.CheckAssociativity(name, m, swapM, sum) }},
		)
	}
	return s
}

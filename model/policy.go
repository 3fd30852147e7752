package model

/*
IgnorePolicy selects how trials without a response are treated
*/
type IgnorePolicy string

const (
	Include IgnorePolicy = "include" // no-response is a class of its own
	Exclude IgnorePolicy = "exclude" // no-response trials are left out of the label set
)

/*
Validate checks the policy is one of Include or Exclude
*/
func (p IgnorePolicy) Validate() error {
	if p != Include && p != Exclude {
		return &InvalidPolicyError{string(p)}
	}
	return nil
}

/*
Classes returns the count of output classes the policy declares
*/
func (p IgnorePolicy) Classes() int {
	if p == Include {
		return 3
	}
	return 2
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *IgnorePolicy) UnmarshalText(b []byte) error {
	q := IgnorePolicy(b)
	if err := q.Validate(); err != nil {
		return err
	}
	*p = q
	return nil
}

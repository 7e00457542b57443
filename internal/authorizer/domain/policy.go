package domain

const (
	PolicyVersion = "2012-10-17"
	ActionInvoke  = "execute-api:Invoke"
)

// Statement is one entry of a Policy.
type Statement struct {
	Action   string
	Effect   Effect
	Resource []string
}

// Policy is the IAM-style document an API gateway enforces.
type Policy struct {
	Version   string
	Statement []Statement
}

// Policy renders the decision as a single-statement invoke policy.
func (d Decision) Policy() Policy {
	resource := d.Resource
	if resource == "" {
		resource = "*"
	}

	return Policy{
		Version: PolicyVersion,
		Statement: []Statement{{
			Action:   ActionInvoke,
			Effect:   d.Effect,
			Resource: []string{resource},
		}},
	}
}

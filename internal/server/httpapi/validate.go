package httpapi

import "regexp"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// rule is one declarative validation rule for a single request field.
// Checks run in order: required, email format, minimum length, enum
// membership. The first failing check contributes its message and stops
// evaluation for that field.
type rule struct {
	value string

	required    bool
	requiredMsg string

	email    bool
	emailMsg string

	minLen    int
	minLenMsg string

	enum    []string
	enumMsg string
}

// validate runs every rule and collects one message per failing field.
func validate(rules []rule) []string {
	var msgs []string
	for _, r := range rules {
		if msg, ok := r.check(); !ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

func (r rule) check() (string, bool) {
	if r.required && r.value == "" {
		return r.requiredMsg, false
	}
	if r.email && r.value != "" && !emailRegexp.MatchString(r.value) {
		return r.emailMsg, false
	}
	if r.minLen > 0 && len(r.value) < r.minLen {
		return r.minLenMsg, false
	}
	if len(r.enum) > 0 && r.value != "" {
		found := false
		for _, v := range r.enum {
			if r.value == v {
				found = true
				break
			}
		}
		if !found {
			return r.enumMsg, false
		}
	}
	return "", true
}

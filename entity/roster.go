package entity

import "strings"

// Roster is a named, ordered set of GitHub logins whose review the
// merge policy consults. Order is preserved everywhere a roster is
// listed to users.
type Roster struct {
	Name    string
	Members []string
}

// Contains reports whether login is a member of the roster.
func (r *Roster) Contains(login string) bool {
	for _, m := range r.Members {
		if m == login {
			return true
		}
	}
	return false
}

func (r *Roster) String() string {
	return r.Name + ": " + strings.Join(r.Members, ", ")
}

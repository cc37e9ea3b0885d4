package approval

import (
	"fmt"
	"strings"
)

// readyStatus is the fixed message rendered when both rosters pass.
const readyStatus = "All required approvals are in. This pull request is ready to merge."

// Render maps a verdict to the human-readable status block included in
// bot comments. A team missing approval and carrying blockers appears
// in both clauses.
func Render(v *Verdict) string {
	if v.Ready() {
		return readyStatus
	}

	var missing, blocked []string
	for _, tv := range []TeamVerdict{v.TeamA, v.TeamB} {
		if !tv.Ok {
			missing = append(missing, fmt.Sprintf(
				"%v (%v)", tv.Roster.Name, strings.Join(tv.Roster.Members, ", ")))
		}
		if len(tv.BlockedBy) > 0 {
			blocked = append(blocked, fmt.Sprintf(
				"%v (%v)", tv.Roster.Name, strings.Join(tv.BlockedBy, ", ")))
		}
	}

	var clauses []string
	if len(missing) > 0 {
		clauses = append(clauses, "Missing approval from: "+strings.Join(missing, "; "))
	}
	if len(blocked) > 0 {
		clauses = append(clauses, "Blocked by: "+strings.Join(blocked, "; "))
	}
	return strings.Join(clauses, "\n")
}

package pbx

import (
	"fmt"
	"strings"
)

// Verify checks the post-patch invariant: no declaration of any shape
// remains for a stale filename, and each addition appears as exactly one
// build-file declaration. It returns an error describing every violation
// found, or nil when the document satisfies the invariant.
func (d *Document) Verify(stale []string, adds []Addition) error {
	var problems []string

	for _, name := range stale {
		if buildFileEntryPattern(name).MatchString(d.content) {
			problems = append(problems, fmt.Sprintf("stale build-file entry for %s still present", name))
		}
		if fileRefEntryPattern(name).MatchString(d.content) {
			problems = append(problems, fmt.Sprintf("stale file reference for %s still present", name))
		}
		if phaseMembershipPattern(name).MatchString(d.content) {
			problems = append(problems, fmt.Sprintf("stale build-phase entry for %s still present", name))
		}
	}

	for _, add := range adds {
		n := len(buildFileEntryPattern(add.FileName).FindAllString(d.content, -1))
		if n != 1 {
			problems = append(problems, fmt.Sprintf("expected exactly one build-file entry for %s, found %d", add.FileName, n))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("document verification failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

package pbx

// ShapeCounts records how many declarations of each shape were removed for
// a single stale filename.
type ShapeCounts struct {
	BuildFiles   int
	FileRefs     int
	PhaseEntries int
}

// Total returns the combined number of removed declarations.
func (c ShapeCounts) Total() int {
	return c.BuildFiles + c.FileRefs + c.PhaseEntries
}

// RemovalReport maps each requested stale filename to the counts of removed
// declarations. A filename that matched nothing still appears with zero
// counts so callers can surface entries that were already absent.
type RemovalReport map[string]ShapeCounts

// Misses returns the stale filenames that matched no declaration at all.
func (r RemovalReport) Misses() []string {
	var misses []string
	for name, counts := range r {
		if counts.Total() == 0 {
			misses = append(misses, name)
		}
	}
	return misses
}

// RemoveStale deletes every declaration of the three known shapes for each
// given filename. A pattern that does not match is a no-op, not an error:
// an absent entry is already in the desired state. Removal is idempotent
// and order-insensitive across filenames.
func (d *Document) RemoveStale(filenames []string) RemovalReport {
	report := make(RemovalReport, len(filenames))

	for _, name := range filenames {
		var counts ShapeCounts

		d.content = buildFileEntryPattern(name).ReplaceAllStringFunc(d.content, func(string) string {
			counts.BuildFiles++
			return ""
		})
		d.content = fileRefEntryPattern(name).ReplaceAllStringFunc(d.content, func(string) string {
			counts.FileRefs++
			return ""
		})
		d.content = phaseMembershipPattern(name).ReplaceAllStringFunc(d.content, func(string) string {
			counts.PhaseEntries++
			return ""
		})

		report[name] = counts
	}

	return report
}

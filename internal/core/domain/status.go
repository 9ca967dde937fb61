package domain

// StatusInProgress is the label for any status code outside the known set.
const StatusInProgress = "In Progress"

var statusLabels = map[int]string{
	1: "Introduced",
	2: "Engrossed",
	3: "Enrolled",
	4: "Passed",
	5: "Vetoed",
	6: "Failed",
	7: "Override",
	8: "Chaptered",
}

// StatusLabel maps an upstream progress code to its display label.
// It is total: unknown codes yield StatusInProgress.
func StatusLabel(code int) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return StatusInProgress
}

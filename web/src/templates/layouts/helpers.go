package layouts

// CalculateTitle builds the document title for a page.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - VoxNote"
	}
	return "VoxNote - Meeting transcripts that write themselves"
}

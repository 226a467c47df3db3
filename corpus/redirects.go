package corpus

// OverwriteRedirects replaces redirect origins with their destinations and
// removes the duplicates that resolution creates, preserving first-occurrence
// order. Titles absent from redirects pass through unchanged.
func OverwriteRedirects(titles []string, redirects map[string]string) []string {
	seen := make(map[string]struct{}, len(titles))
	result := make([]string, 0, len(titles))
	for _, title := range titles {
		resolved := title
		if dest, ok := redirects[title]; ok && dest != "" {
			resolved = dest
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		result = append(result, resolved)
	}
	return result
}

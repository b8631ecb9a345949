package cfg

import "github.com/sahilm/fuzzy"

// Suggest returns up to max statement keys fuzzy-ranked against query,
// best match first. It returns nil when nothing matches or max is not
// positive.
func (s *Set) Suggest(query string, max int) []string {
	if max <= 0 {
		return nil
	}

	matches := fuzzy.Find(query, s.Keys())
	if len(matches) > max {
		matches = matches[:max]
	}

	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m.Str)
	}

	if len(keys) == 0 {
		return nil
	}

	return keys
}

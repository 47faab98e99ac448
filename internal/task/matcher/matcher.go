package matcher

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"task-manager-agent/internal/model"
	"task-manager-agent/pkg/llmprovider"
	pkgLog "task-manager-agent/pkg/log"
	"task-manager-agent/pkg/similarity"
)

const (
	// fuzzyThreshold is the minimum top score for a fuzzy match to win outright.
	fuzzyThreshold = 0.7

	// keywordThreshold is the minimum top score for a keyword match to win.
	keywordThreshold = 0.6

	// arbitrationFloor is the minimum fuzzy top score worth escalating to the LLM.
	arbitrationFloor = 0.4

	// substringBoost is the floor applied when one title contains the other.
	substringBoost = 0.8

	// importanceBoost is added when shared tokens include importance vocabulary.
	importanceBoost = 0.2

	// ambiguityGap is the score distance below which two top candidates are
	// considered indistinguishable.
	ambiguityGap = 0.2

	// DefaultMultiThreshold is the cutoff for FindMultipleMatches candidates.
	DefaultMultiThreshold = 0.4

	// maxMultipleMatches caps the candidate list returned for disambiguation.
	maxMultipleMatches = 5

	// maxArbitrationCandidates is how many fuzzy candidates the LLM sees.
	maxArbitrationCandidates = 3
)

// importanceWords carry extra weight when they appear in both the identifier
// and a title: users lean on them when referring to tasks indirectly.
var importanceWords = map[string]bool{
	"urgent":    true,
	"important": true,
	"high":      true,
	"priority":  true,
	"meeting":   true,
	"deadline":  true,
}

// Candidate pairs a task with a confidence score in [0, 1].
type Candidate struct {
	Task  model.Task
	Score float64
}

// Matcher resolves free-text task identifiers against stored task titles.
// Strategies run in strict priority order (exact, fuzzy, keyword, LLM
// arbitration); the first one clearing its threshold wins and later
// strategies never blend into its score.
type Matcher struct {
	l   pkgLog.Logger
	llm llmprovider.Completer
}

// New creates a Matcher. The completer may be nil, which disables LLM
// arbitration; the first three strategies still apply.
func New(l pkgLog.Logger, llm llmprovider.Completer) *Matcher {
	return &Matcher{l: l, llm: llm}
}

// FindBestMatch returns the task best matching identifier, or nil when no
// strategy clears its threshold. Matching never fails: LLM errors degrade
// to a nil result.
func (m *Matcher) FindBestMatch(ctx context.Context, identifier string, tasks []model.Task) *model.Task {
	needle := normalize(identifier)
	if needle == "" || len(tasks) == 0 {
		return nil
	}

	// Strategy 1: exact normalized-title match, short-circuits everything.
	for i := range tasks {
		if tasks[i].NormalizedTitle() == needle {
			m.l.Debugf(ctx, "matcher: exact match for %q -> %q", identifier, tasks[i].Title)
			return &tasks[i]
		}
	}

	// Strategy 2: fuzzy similarity with substring boost. A near-tie between
	// the top two candidates is not a silent pick: it defers to later
	// strategies and ultimately to disambiguation by the caller.
	fuzzy := m.rankFuzzy(needle, tasks)
	if picked := pickUnambiguous(fuzzy, fuzzyThreshold); picked != nil {
		m.l.Debugf(ctx, "matcher: fuzzy match for %q -> %q (score=%.2f)", identifier, picked.Title, fuzzy[0].Score)
		return picked
	}

	// Strategy 3: keyword overlap with importance boost.
	keyword := m.rankKeyword(needle, tasks)
	if picked := pickUnambiguous(keyword, keywordThreshold); picked != nil {
		m.l.Debugf(ctx, "matcher: keyword match for %q -> %q (score=%.2f)", identifier, picked.Title, keyword[0].Score)
		return picked
	}

	// Strategy 4: medium-confidence fuzzy candidates go to LLM arbitration.
	if len(fuzzy) > 0 && fuzzy[0].Score > arbitrationFloor {
		if picked := m.arbitrate(ctx, identifier, fuzzy); picked != nil {
			return picked
		}
	}

	return nil
}

// FindMultipleMatches returns the union of fuzzy and keyword candidates at or
// above threshold, deduplicated by task ID keeping the highest score, sorted
// descending and capped. Pass threshold <= 0 for the default.
func (m *Matcher) FindMultipleMatches(identifier string, tasks []model.Task, threshold float64) []Candidate {
	needle := normalize(identifier)
	if needle == "" || len(tasks) == 0 {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultMultiThreshold
	}

	best := make(map[string]Candidate)
	consider := func(c Candidate) {
		if c.Score < threshold {
			return
		}
		if prev, ok := best[c.Task.ID]; !ok || c.Score > prev.Score {
			best[c.Task.ID] = c
		}
	}

	for _, c := range m.rankFuzzy(needle, tasks) {
		consider(c)
	}
	for _, c := range m.rankKeyword(needle, tasks) {
		consider(c)
	}

	merged := make([]Candidate, 0, len(best))
	for _, c := range best {
		merged = append(merged, c)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > maxMultipleMatches {
		merged = merged[:maxMultipleMatches]
	}
	return merged
}

// IsAmbiguous reports whether the top two candidates are too close to pick
// one silently.
func IsAmbiguous(candidates []Candidate) bool {
	if len(candidates) < 2 {
		return false
	}
	return candidates[0].Score-candidates[1].Score < ambiguityGap
}

// pickUnambiguous returns the top candidate when it clears the threshold
// and is not in a near-tie with the runner-up.
func pickUnambiguous(candidates []Candidate, threshold float64) *model.Task {
	if len(candidates) == 0 || candidates[0].Score <= threshold {
		return nil
	}
	if IsAmbiguous(candidates) {
		return nil
	}
	t := candidates[0].Task
	return &t
}

// rankFuzzy scores every task by edit-distance similarity, sorted descending.
func (m *Matcher) rankFuzzy(needle string, tasks []model.Task) []Candidate {
	candidates := make([]Candidate, 0, len(tasks))
	for _, t := range tasks {
		candidates = append(candidates, Candidate{Task: t, Score: fuzzyScore(needle, t.NormalizedTitle())})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// rankKeyword scores every task by token overlap, sorted descending.
func (m *Matcher) rankKeyword(needle string, tasks []model.Task) []Candidate {
	candidates := make([]Candidate, 0, len(tasks))
	for _, t := range tasks {
		candidates = append(candidates, Candidate{Task: t, Score: keywordScore(needle, t.NormalizedTitle())})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// fuzzyScore is the similarity ratio, boosted to at least substringBoost when
// one string contains the other.
func fuzzyScore(needle, title string) float64 {
	score := similarity.Ratio(needle, title)
	if needle != "" && title != "" &&
		(strings.Contains(title, needle) || strings.Contains(needle, title)) {
		if score < substringBoost {
			score = substringBoost
		}
	}
	return score
}

// keywordScore is the Jaccard token overlap, boosted when the shared tokens
// include importance vocabulary. Capped at 1.0.
func keywordScore(needle, title string) float64 {
	score := similarity.TokenOverlap(needle, title)
	if score == 0 {
		return 0
	}

	needleTokens := similarity.Tokens(needle)
	for token := range similarity.Tokens(title) {
		if needleTokens[token] && importanceWords[token] {
			score += importanceBoost
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// arbitrate asks the LLM to pick among the top fuzzy candidates by ordinal.
// Any failure, a "none" answer, or an out-of-range ordinal yields nil.
func (m *Matcher) arbitrate(ctx context.Context, identifier string, fuzzy []Candidate) *model.Task {
	if m.llm == nil {
		return nil
	}

	top := fuzzy
	if len(top) > maxArbitrationCandidates {
		top = top[:maxArbitrationCandidates]
	}

	var sb strings.Builder
	sb.WriteString("A user referred to a task as: \"")
	sb.WriteString(identifier)
	sb.WriteString("\"\n\nCandidate tasks:\n")
	for i, c := range top {
		fmt.Fprintf(&sb, "%d. %s (priority: %s, status: %s, created: %s)\n",
			i+1, c.Task.Title, c.Task.Priority, c.Task.Status, c.Task.CreatedAt.Format("2006-01-02"))
	}
	sb.WriteString("\nWhich candidate does the user mean? Answer with the number only, or \"none\" if no candidate matches.")

	resp, err := m.llm.Complete(ctx, &llmprovider.Request{
		Prompt:      sb.String(),
		Temperature: 0,
		MaxTokens:   10,
	})
	if err != nil {
		m.l.Warnf(ctx, "matcher: LLM arbitration failed for %q, treating as no match: %v", identifier, err)
		return nil
	}

	choice := parseOrdinal(resp.Text, len(top))
	if choice < 0 {
		m.l.Debugf(ctx, "matcher: LLM arbitration declined for %q (answer=%q)", identifier, resp.Text)
		return nil
	}

	m.l.Infof(ctx, "matcher: LLM arbitration picked %q for %q", top[choice].Task.Title, identifier)
	t := top[choice].Task
	return &t
}

// parseOrdinal extracts a 1-based choice from the LLM answer and returns it
// 0-based, or -1 for "none", unparseable, or out-of-range answers.
func parseOrdinal(answer string, n int) int {
	cleaned := strings.ToLower(strings.TrimSpace(answer))
	if cleaned == "" || strings.Contains(cleaned, "none") {
		return -1
	}

	digits := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(digits) == 0 {
		return -1
	}

	choice, err := strconv.Atoi(digits[0])
	if err != nil || choice < 1 || choice > n {
		return -1
	}
	return choice - 1
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

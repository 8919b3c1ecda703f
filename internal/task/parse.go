package task

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/antopolskiy/cardboard-md/internal/date"
)

// Metadata token markers. Both the @-call syntax and the obsidian-tasks
// emoji syntax are recognized.
const (
	duePrefix       = "@due("
	completedPrefix = "@completed("
	dueEmoji        = "\U0001F4C5" // 📅
	completedEmoji  = "✅"     // ✅
)

// tabWidth is how many columns a tab counts for when comparing indentation.
const tabWidth = 4

// Parse turns a document's raw text into a Collection. Every recognizable
// checklist line becomes a Task; other lines are skipped. Parsing is total:
// there is no failure path, only lines that contribute nothing.
//
// fallbackDue, when non-nil, is applied to tasks whose line carries no
// explicit due date (the daily-note convention, where the hosting document
// implies the date).
func Parse(text, sourcePath string, fallbackDue *date.Day) Collection {
	lines := strings.Split(text, "\n")
	tasks, _ := parseBlock(lines, 0, -1, sourcePath, fallbackDue)
	return NewCollection(tasks)
}

// parseBlock parses consecutive tasks indented strictly deeper than
// parentIndent, starting at line index i. It returns the parsed tasks and
// the index of the first line it did not consume. Every iteration consumes
// at least one line, so the loop always terminates.
func parseBlock(lines []string, i, parentIndent int, sourcePath string, fallbackDue *date.Day) ([]*Task, int) {
	var out []*Task
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}
		indent := indentWidth(line)
		if indent <= parentIndent {
			break
		}
		t, ok := parseLine(line, sourcePath, i+1, fallbackDue)
		if !ok {
			// Not a checklist line: consume it verbatim as ignorable text.
			i++
			continue
		}
		t.Subtasks, i = parseBlock(lines, i+1, indent, sourcePath, fallbackDue)
		out = append(out, t)
	}
	return out, i
}

// indentWidth measures leading whitespace in columns, tabs counting for
// tabWidth.
func indentWidth(line string) int {
	w := 0
	for _, r := range line {
		switch r {
		case ' ':
			w++
		case '\t':
			w += tabWidth
		default:
			return w
		}
	}
	return w
}

// parseLine attempts to read one checklist line. ok is false when the line
// has no recognizable checkbox marker, in which case the whole attempt is
// rolled back and the caller treats the line as plain text.
func parseLine(line, sourcePath string, lineNo int, fallbackDue *date.Day) (*Task, bool) {
	rest, completed, ok := parseCheckbox(strings.TrimLeft(line, " \t"))
	if !ok {
		return nil, false
	}

	t := &Task{
		ID:         makeID(sourcePath, lineNo),
		Completed:  completed,
		SourcePath: sourcePath,
	}

	var titleWords, displayWords []string
	words := strings.Fields(rest)
	for j := 0; j < len(words); j++ {
		w := words[j]
		switch {
		case isTag(w):
			t.addTag(strings.TrimPrefix(w, "#"))
			displayWords = append(displayWords, w)

		case strings.HasPrefix(w, duePrefix) && strings.HasSuffix(w, ")"):
			arg := w[len(duePrefix) : len(w)-1]
			d, err := date.Parse(arg)
			if err != nil {
				// Malformed due dates stay in the title verbatim.
				titleWords = append(titleWords, w)
				displayWords = append(displayWords, w)
				continue
			}
			t.Due = &d

		case strings.HasPrefix(w, completedPrefix) && strings.HasSuffix(w, ")"):
			// Malformed timestamps are dropped; the checkbox still
			// decides completion.
			if ts, err := parseTimestamp(w[len(completedPrefix) : len(w)-1]); err == nil {
				t.CompletedAt = &ts
			}

		case w == dueEmoji && j+1 < len(words):
			d, err := date.Parse(words[j+1])
			if err != nil {
				titleWords = append(titleWords, w, words[j+1])
				displayWords = append(displayWords, w, words[j+1])
				j++
				continue
			}
			t.Due = &d
			j++

		case w == completedEmoji && j+1 < len(words):
			if ts, err := parseTimestamp(words[j+1]); err == nil {
				t.CompletedAt = &ts
			}
			j++

		default:
			titleWords = append(titleWords, w)
			displayWords = append(displayWords, w)
		}
	}

	t.Title = strings.Join(titleWords, " ")
	t.DisplayTitle = strings.Join(displayWords, " ")

	if t.Due == nil && fallbackDue != nil {
		d := *fallbackDue
		t.Due = &d
	}
	if !t.Completed {
		t.CompletedAt = nil
	}
	return t, true
}

// parseCheckbox recognizes a "- [ ] " style marker ('-', '*' or '+' bullets,
// 'x' or 'X' for checked) and returns the remainder of the line.
func parseCheckbox(s string) (rest string, completed bool, ok bool) {
	if len(s) < 5 {
		return "", false, false
	}
	if s[0] != '-' && s[0] != '*' && s[0] != '+' {
		return "", false, false
	}
	if s[1] != ' ' || s[2] != '[' || s[4] != ']' {
		return "", false, false
	}
	switch s[3] {
	case ' ':
	case 'x', 'X':
		completed = true
	default:
		return "", false, false
	}
	rest = s[5:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false, false
	}
	return rest, completed, true
}

// isTag reports whether a word is a tag token: '#' followed by at least one
// non-'#' character.
func isTag(w string) bool {
	return len(w) > 1 && w[0] == '#' && w[1] != '#'
}

func (t *Task) addTag(tag string) {
	if !t.HasTag(tag) {
		t.Tags = append(t.Tags, tag)
	}
}

// timestampLayouts are tried in order when reading a completion timestamp.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	date.Layout,
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// makeID derives a stable task id from the source path and 1-based line
// number.
func makeID(sourcePath string, lineNo int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s:%d", sourcePath, lineNo)
	return strconv.FormatUint(h.Sum64(), 16)
}

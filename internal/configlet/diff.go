package configlet

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// configDiff is a line based summary of a configuration change.
type configDiff struct {
	Added   int
	Removed int
	Text    string
}

func (d configDiff) Changed() bool { return d.Added > 0 || d.Removed > 0 }

func diffConfig(from, to string) configDiff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var res configDiff
	var sb strings.Builder
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		if !strings.HasSuffix(d.Text, "\n") {
			n++
		}

		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			res.Added += n
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			res.Removed += n
			prefix = "- "
		default:
			continue
		}

		for _, l := range strings.SplitAfter(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix + strings.TrimSuffix(l, "\n") + "\n")
		}
	}
	res.Text = sb.String()

	return res
}

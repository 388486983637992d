package configlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffConfig(t *testing.T) {
	tests := map[string]struct {
		from    string
		to      string
		expDiff configDiff
	}{
		"Same content should not have changes.": {
			from:    "hostname leaf1\nntp server 1.1.1.1\n",
			to:      "hostname leaf1\nntp server 1.1.1.1\n",
			expDiff: configDiff{},
		},

		"An added line should be reported.": {
			from:    "hostname leaf1\n",
			to:      "hostname leaf1\nntp server 1.1.1.1\n",
			expDiff: configDiff{Added: 1, Text: "+ ntp server 1.1.1.1\n"},
		},

		"A changed line should be reported as removed and added.": {
			from:    "hostname leaf1\nntp server 1.1.1.1\n",
			to:      "hostname leaf1\nntp server 2.2.2.2\n",
			expDiff: configDiff{Added: 1, Removed: 1, Text: "- ntp server 1.1.1.1\n+ ntp server 2.2.2.2\n"},
		},

		"Content without trailing new line should count the last line.": {
			from:    "",
			to:      "a\nb",
			expDiff: configDiff{Added: 2, Text: "+ a\n+ b\n"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			got := diffConfig(test.from, test.to)

			assert.Equal(test.expDiff, got)
			assert.Equal(test.expDiff.Added > 0 || test.expDiff.Removed > 0, got.Changed())
		})
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes insight rows as a human-readable aligned table to w.
func FormatTable(rows []TopicInsight, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No topics in range.")
		return
	}

	fmt.Fprintf(w, "%-40s  %6s  %6s  %8s  %8s  %9s  %9s  %s\n",
		"Topic", "PubsA", "PubsB", "CitesA", "CitesB", "Pubs%", "Cites%", "Trend")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, r := range rows {
		topic := r.Topic
		if len(topic) > 40 {
			topic = topic[:37] + "..."
		}
		fmt.Fprintf(w, "%-40s  %6d  %6d  %8d  %8d  %9s  %9s  %s\n",
			topic, r.PubsA, r.PubsB, r.CitesA, r.CitesB,
			r.PubsDelta, r.CitesDelta, r.Label)
	}

	fmt.Fprintf(w, "\n%d topics\n", len(rows))
}

// FormatJSON writes insight rows as indented JSON to w.
func FormatJSON(rows []TopicInsight, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

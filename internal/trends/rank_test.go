// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"testing"
)

func TestCompareDeltas(t *testing.T) {
	undef := UndefinedDelta()
	negInf := Delta{State: DeltaNegInf}
	posInf := Delta{State: DeltaPosInf}

	tests := []struct {
		name string
		a, b Delta
		want int
	}{
		{"undefined below -Inf", undef, negInf, -1},
		{"undefined below finite", undef, FiniteDelta(-1e9), -1},
		{"-Inf below finite", negInf, FiniteDelta(-1e9), -1},
		{"finite below +Inf", FiniteDelta(1e9), posInf, -1},
		{"finite ordering", FiniteDelta(-3), FiniteDelta(5), -1},
		{"finite reverse", FiniteDelta(5), FiniteDelta(-3), 1},
		{"equal finite", FiniteDelta(5), FiniteDelta(5), 0},
		{"equal +Inf", posInf, posInf, 0},
		{"equal -Inf", negInf, negInf, 0},
		{"equal undefined", undef, undef, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareDeltas(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareDeltas(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Sorting [undefined, 5, +Inf, -3, -Inf, 5] ascending must yield
// [undefined, -Inf, -3, 5, 5, +Inf] with the two 5s keeping their
// original relative order.
func TestSortInsightsStableAscending(t *testing.T) {
	rows := []TopicInsight{
		{Topic: "undef", PubsDelta: UndefinedDelta()},
		{Topic: "five-first", PubsDelta: FiniteDelta(5)},
		{Topic: "posinf", PubsDelta: Delta{State: DeltaPosInf}},
		{Topic: "minus-three", PubsDelta: FiniteDelta(-3)},
		{Topic: "neginf", PubsDelta: Delta{State: DeltaNegInf}},
		{Topic: "five-second", PubsDelta: FiniteDelta(5)},
	}

	if err := SortInsights(rows, SortPubsDelta, false); err != nil {
		t.Fatalf("SortInsights: %v", err)
	}

	want := []string{"undef", "neginf", "minus-three", "five-first", "five-second", "posinf"}
	for i, name := range want {
		if rows[i].Topic != name {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].Topic, name)
		}
	}
}

// Descending flips the whole order uniformly; the sentinels land at the
// opposite extremes and ties still keep their input order.
func TestSortInsightsDescending(t *testing.T) {
	rows := []TopicInsight{
		{Topic: "five-first", CitesDelta: FiniteDelta(5)},
		{Topic: "undef", CitesDelta: UndefinedDelta()},
		{Topic: "five-second", CitesDelta: FiniteDelta(5)},
		{Topic: "posinf", CitesDelta: Delta{State: DeltaPosInf}},
	}

	if err := SortInsights(rows, SortCitesDelta, true); err != nil {
		t.Fatalf("SortInsights: %v", err)
	}

	want := []string{"posinf", "five-first", "five-second", "undef"}
	for i, name := range want {
		if rows[i].Topic != name {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].Topic, name)
		}
	}
}

func TestSortInsightsByIntAndTopic(t *testing.T) {
	rows := []TopicInsight{
		{Topic: "b", PubsB: 2},
		{Topic: "a", PubsB: 7},
		{Topic: "c", PubsB: 4},
	}

	if err := SortInsights(rows, SortPubsB, true); err != nil {
		t.Fatalf("SortInsights: %v", err)
	}
	if rows[0].Topic != "a" || rows[1].Topic != "c" || rows[2].Topic != "b" {
		t.Errorf("sort by pubsB desc: got %q, %q, %q", rows[0].Topic, rows[1].Topic, rows[2].Topic)
	}

	if err := SortInsights(rows, SortTopic, false); err != nil {
		t.Fatalf("SortInsights: %v", err)
	}
	if rows[0].Topic != "a" || rows[1].Topic != "b" || rows[2].Topic != "c" {
		t.Errorf("sort by topic asc: got %q, %q, %q", rows[0].Topic, rows[1].Topic, rows[2].Topic)
	}
}

func TestSortInsightsUnknownField(t *testing.T) {
	if err := SortInsights(nil, SortField("relevance"), false); err == nil {
		t.Error("expected error for unknown sort field")
	}
}

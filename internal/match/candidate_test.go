package match

import "testing"

func TestParseCandidates(t *testing.T) {
	raw := []byte(`[
		{"name": "Saga", "start_year": 2012, "publisher": "Image", "volume_id": 43113,
		 "rank": 0, "confidence": 0.92, "best_match": true,
		 "issue_image_url": "https://img.example/saga-1.jpg"},
		{"name": "Saga: Compendium", "rank": 1}
	]`)

	candidates, err := ParseCandidates(raw)
	if err != nil {
		t.Fatalf("ParseCandidates failed: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}

	first := candidates[0]
	if first.Name != "Saga" || first.VolumeID != 43113 || !first.BestMatch {
		t.Errorf("first = %+v", first)
	}
	if first.Confidence == nil || *first.Confidence != 0.92 {
		t.Errorf("Confidence = %v, want 0.92", first.Confidence)
	}
	if !first.Selectable() {
		t.Error("candidate with volume id should be selectable")
	}

	second := candidates[1]
	if second.Confidence != nil {
		t.Errorf("Confidence = %v, want nil", second.Confidence)
	}
	if second.Selectable() {
		t.Error("candidate without volume id must not be selectable")
	}
}

func TestParseCandidates_Empty(t *testing.T) {
	for _, raw := range [][]byte{nil, {}} {
		candidates, err := ParseCandidates(raw)
		if err != nil {
			t.Fatalf("ParseCandidates(%q) failed: %v", raw, err)
		}
		if candidates != nil {
			t.Errorf("ParseCandidates(%q) = %v, want nil", raw, candidates)
		}
	}
}

func TestParseCandidates_Malformed(t *testing.T) {
	inputs := []string{
		`not json`,
		`{"name": "object, not array"}`,
		`[{"name": "truncated"`,
	}
	for _, input := range inputs {
		if _, err := ParseCandidates([]byte(input)); err == nil {
			t.Errorf("ParseCandidates(%q) succeeded, want error", input)
		}
	}
}

package similarity

import (
	"math"
	"testing"
)

func vectorFor(name string, weighting Weighting) *Vector {
	return NewVector(Tokenize(name), weighting)
}

func TestCosineNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Vector
		b    *Vector
	}{
		{"both nil", nil, nil},
		{"a nil", nil, vectorFor("report_final.txt", WeightingCount)},
		{"b nil", vectorFor("report_final.txt", WeightingCount), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); got != 0 {
				t.Errorf("Cosine() = %v, want 0", got)
			}
		})
	}
}

func TestCosineIdentical(t *testing.T) {
	a := vectorFor("report_final.txt", WeightingCount)
	b := vectorFor("report_final.txt", WeightingCount)

	if got := Cosine(a, b); got != 1.0 {
		t.Errorf("Cosine(identical) = %v, want 1.0", got)
	}
}

func TestCosineDisjoint(t *testing.T) {
	a := vectorFor("report_final.txt", WeightingCount)
	b := vectorFor("unrelated.csv", WeightingCount)

	if got := Cosine(a, b); got != 0 {
		t.Errorf("Cosine(disjoint) = %v, want 0", got)
	}
}

func TestCosinePartialOverlap(t *testing.T) {
	// {report, final, txt} vs {report, final, v2, txt}: dot=3, norms sqrt(3) and 2.
	a := vectorFor("report_final.txt", WeightingCount)
	b := vectorFor("report_final_v2.txt", WeightingCount)

	want := 3 / (math.Sqrt(3) * 2)
	got := Cosine(a, b)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Cosine(partial) = %v, want %v", got, want)
	}
}

func TestCosineSymmetric(t *testing.T) {
	a := vectorFor("holiday_photos_2023.zip", WeightingCount)
	b := vectorFor("holiday_videos_2023.zip", WeightingCount)

	if ab, ba := Cosine(a, b), Cosine(b, a); ab != ba {
		t.Errorf("Cosine not symmetric: (%v, %v)", ab, ba)
	}
}

func TestCosineBinaryMatchesSetFormula(t *testing.T) {
	// Binary weighting reproduces |A∩B| / sqrt(|A|·|B|) over unique terms.
	a := vectorFor("alpha_beta_beta_gamma.txt", WeightingBinary)
	b := vectorFor("beta_gamma_delta.txt", WeightingBinary)

	// a terms: {alpha, beta, gamma, txt}, b terms: {beta, gamma, delta, txt}.
	want := 3 / math.Sqrt(4*4)
	got := Cosine(a, b)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Cosine(binary) = %v, want %v", got, want)
	}
}

func TestNewVectorEmpty(t *testing.T) {
	if v := NewVector(nil, WeightingCount); v != nil {
		t.Error("expected nil vector for no terms")
	}
	if v := vectorFor("___", WeightingCount); v != nil {
		t.Error("expected nil vector for delimiter-only name")
	}
}

func TestNewVectorNorm(t *testing.T) {
	// "log.log.txt" -> log:2, txt:1 -> squared norm 5.
	v := vectorFor("log.log.txt", WeightingCount)
	if v == nil {
		t.Fatal("expected vector")
	}
	if v.TermCount() != 2 {
		t.Errorf("TermCount() = %d, want 2", v.TermCount())
	}
	if v.norm2 != 5 {
		t.Errorf("norm2 = %v, want 5", v.norm2)
	}
}

func TestParseWeighting(t *testing.T) {
	tests := []struct {
		input   string
		want    Weighting
		wantErr bool
	}{
		{"count", WeightingCount, false},
		{"", WeightingCount, false},
		{"BINARY", WeightingBinary, false},
		{" tfidf ", WeightingTFIDF, false},
		{"jaccard", "", true},
	}

	for _, tt := range tests {
		got, err := ParseWeighting(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWeighting(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeighting(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

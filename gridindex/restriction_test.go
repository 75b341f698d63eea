package gridindex_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hasbyte1/go-gridindex/gridindex"
)

func TestParseRestriction(t *testing.T) {
	tests := []struct {
		token string
		want  gridindex.Restriction
	}{
		{"", gridindex.RestrictionNone},
		{"none", gridindex.RestrictionNone},
		{"NONE", gridindex.RestrictionNone},
		{"lowertr", gridindex.RestrictionLowerTriangular},
		{"LowerTr", gridindex.RestrictionLowerTriangular},
		{"lower_triangular", gridindex.RestrictionLowerTriangular},
		{"Lower-Triangular", gridindex.RestrictionLowerTriangular},
		{"diagonal", gridindex.RestrictionDiagonal},
		{" Diag ", gridindex.RestrictionDiagonal},
		{"diagnol", gridindex.RestrictionDiagonal},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := gridindex.ParseRestriction(tt.token)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParseRestriction_Unknown(t *testing.T) {
	for _, token := range []string{"bogus", "dianol", "upper"} {
		_, err := gridindex.ParseRestriction(token)
		if !errors.Is(err, gridindex.ErrUnknownRestriction) {
			t.Fatalf("%q: got %v, want ErrUnknownRestriction", token, err)
		}
	}
}

func TestRestriction_String(t *testing.T) {
	if got := gridindex.Restriction(7).String(); got != "Restriction(7)" {
		t.Fatalf("String: got %q", got)
	}
	for _, r := range []gridindex.Restriction{
		gridindex.RestrictionNone,
		gridindex.RestrictionLowerTriangular,
		gridindex.RestrictionDiagonal,
	} {
		back, err := gridindex.ParseRestriction(r.String())
		if err != nil || back != r {
			t.Fatalf("%v: String() does not parse back (%v, %v)", r, back, err)
		}
	}
}

func TestRestriction_TextEncoding(t *testing.T) {
	var cfg struct {
		Mode gridindex.Restriction `json:"mode"`
	}
	if err := json.Unmarshal([]byte(`{"mode":"Diagonal"}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != gridindex.RestrictionDiagonal {
		t.Fatalf("decoded: got %v", cfg.Mode)
	}
	out, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"mode":"diagonal"}` {
		t.Fatalf("encoded: got %s", out)
	}
	if err := json.Unmarshal([]byte(`{"mode":"bogus"}`), &cfg); !errors.Is(err, gridindex.ErrUnknownRestriction) {
		t.Fatalf("bogus: got %v", err)
	}
	if _, err := gridindex.Restriction(9).MarshalText(); !errors.Is(err, gridindex.ErrUnknownRestriction) {
		t.Fatalf("MarshalText invalid: got %v", err)
	}
}

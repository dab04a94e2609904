package pagination

import (
	"net/url"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Params
		want Params
	}{
		{name: "defaults", in: Params{}, want: Params{Page: 1, PerPage: DefaultPerPage}},
		{name: "negative page", in: Params{Page: -3, PerPage: 20}, want: Params{Page: 1, PerPage: 20}},
		{name: "capped per page", in: Params{Page: 2, PerPage: 500}, want: Params{Page: 2, PerPage: MaxPerPage}},
		{name: "passthrough", in: Params{Page: 4, PerPage: 12}, want: Params{Page: 4, PerPage: 12}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, PerPage: 12}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := (Params{Page: 3, PerPage: 12}).Offset(); got != 24 {
		t.Fatalf("expected offset 24, got %d", got)
	}
	if got := (Params{}).Offset(); got != 0 {
		t.Fatalf("expected offset 0 for empty params, got %d", got)
	}
}

func TestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("per_page", "24")

	params := FromQuery(values)
	if params.Page != 3 || params.PerPage != 24 {
		t.Fatalf("unexpected params %+v", params)
	}

	junk := url.Values{}
	junk.Set("page", "abc")
	if got := FromQuery(junk); got.Page != 0 {
		t.Fatalf("expected unparsable page to be ignored, got %+v", got)
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Page: 2, PerPage: 12}, 25)
	if meta.Page != 2 || meta.PerPage != 12 {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if meta.Total != 25 {
		t.Fatalf("expected total 25, got %d", meta.Total)
	}
	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", meta.TotalPages)
	}

	empty := NewMeta(Params{}, 0)
	if empty.TotalPages != 1 {
		t.Fatalf("expected at least one page, got %d", empty.TotalPages)
	}
}

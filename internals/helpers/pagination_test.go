package helper

import "testing"

func TestBuildPaginationFromOffset(t *testing.T) {
	p := BuildPaginationFromOffset(95, 40, 20, 20)
	if p.Page != 3 || p.PerPage != 20 || p.TotalPages != 5 {
		t.Fatalf("pagination = %+v", p)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("middle page should have both directions: %+v", p)
	}

	first := BuildPaginationFromOffset(95, 0, 20, 20)
	if first.Page != 1 || first.HasPrev {
		t.Errorf("first page = %+v", first)
	}

	last := BuildPaginationFromOffset(95, 80, 20, 15)
	if last.Page != 5 || last.HasNext || last.Count != 15 {
		t.Errorf("last page = %+v", last)
	}

	empty := BuildPaginationFromOffset(0, 0, 20, 0)
	if empty.TotalPages != 1 || empty.HasNext {
		t.Errorf("empty result = %+v", empty)
	}
}

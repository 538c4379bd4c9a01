package shipping

import (
	"math"
	"testing"

	"shipviet/internal/types"
)

func ptr(v float64) *float64 { return &v }

func TestDirectory_Nearest(t *testing.T) {
	dir := NewDirectory([]Warehouse{
		{Code: "A", Position: types.Point{Lat: 10.0, Lng: 106.0}},
		{Code: "B", Position: types.Point{Lat: 21.0, Lng: 105.8}},
	})

	wh, km, ok := dir.Nearest(ptr(10.1), ptr(106.0))
	if !ok {
		t.Fatal("expected a nearest warehouse")
	}
	if wh.Code != "A" {
		t.Errorf("expected warehouse A, got %s", wh.Code)
	}
	if math.Abs(km-11.12) > 0.5 {
		t.Errorf("unexpected distance %f", km)
	}
}

func TestDirectory_Nearest_TieBreakListOrder(t *testing.T) {
	// Two branches at identical coordinates; the first in list order wins.
	dir := NewDirectory([]Warehouse{
		{Code: "FIRST", Position: types.Point{Lat: 10.0, Lng: 106.0}},
		{Code: "SECOND", Position: types.Point{Lat: 10.0, Lng: 106.0}},
	})
	wh, _, ok := dir.Nearest(ptr(10.5), ptr(106.0))
	if !ok || wh.Code != "FIRST" {
		t.Errorf("tie should go to the first entry, got %v ok=%v", wh.Code, ok)
	}
}

func TestDirectory_Nearest_MissingCoordinates(t *testing.T) {
	dir := NewDirectory(DefaultWarehouses)
	if _, _, ok := dir.Nearest(nil, ptr(106.0)); ok {
		t.Error("nil lat should not resolve")
	}
	if _, _, ok := dir.Nearest(ptr(10.0), nil); ok {
		t.Error("nil lng should not resolve")
	}
}

func TestDirectory_Nearest_EmptyDirectory(t *testing.T) {
	dir := NewDirectory(nil)
	if _, _, ok := dir.Nearest(ptr(10.0), ptr(106.0)); ok {
		t.Error("empty directory should not resolve")
	}
}

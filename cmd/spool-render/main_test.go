package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wesen/spool/pkg/geom"
)

func TestParsePath(t *testing.T) {
	pts, err := parsePath(" 400,100; 700 , 100 ;;1230,360")
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Vec{geom.V(400, 100), geom.V(700, 100), geom.V(1230, 360)}
	if len(pts) != len(want) {
		t.Fatalf("expected %d points, got %v", len(want), pts)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], pts[i])
		}
	}
	for _, bad := range []string{"1", "a,2", "1,b"} {
		if _, err := parsePath(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestRunStraightPlug(t *testing.T) {
	var out, errs bytes.Buffer
	// Level 1 spools sit above and below the center line; a straight
	// drag plugs in without powering them.
	err := run([]string{"-level", "1", "-drag", "1230,360", "-width", "80", "-height", "30"}, &out, &errs)
	if err != nil {
		t.Fatalf("run: %v (%s)", err, errs.String())
	}
	got := out.String()
	for _, want := range []string{"Level 1", "powered 0 / 2", "connected true", "solved false", "■"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunBadLevel(t *testing.T) {
	var out, errs bytes.Buffer
	if err := run([]string{"-level", "99"}, &out, &errs); err == nil {
		t.Error("expected error for missing level")
	}
}

package canvas

import (
	"testing"

	"album/internal/viewport"
)

func TestClampView(t *testing.T) {
	for _, test := range []struct {
		f      float64
		w      int
		region int
		want   float64
	}{
		{f: 0.333, w: 500, region: 1500, want: 0.333},
		{f: 0.666, w: 500, region: 1500, want: 0.666},
		{f: 0.9, w: 500, region: 1500, want: 1 - 500.0/1500},
		{f: -0.1, w: 500, region: 1500, want: 0},
		{f: 0.5, w: 500, region: 500, want: 0},
		{f: 0.5, w: 500, region: 0, want: 0},
	} {
		if got := clampView(test.f, test.w, test.region); got != test.want {
			t.Errorf("unexpected view for f=%v w=%d region=%d: got:%v want:%v",
				test.f, test.w, test.region, got, test.want)
		}
	}
}

func TestHintArrow(t *testing.T) {
	if _, ok := hintArrow(viewport.Neutral, 500, 500); ok {
		t.Error("unexpected arrow for neutral hint")
	}
	l, ok := hintArrow(viewport.CanGoLeft, 500, 500)
	if !ok || l.tipX >= l.baseX || l.tipX > 50 {
		t.Errorf("unexpected left arrow: %+v ok=%t", l, ok)
	}
	r, ok := hintArrow(viewport.CanGoRight, 500, 500)
	if !ok || r.tipX <= r.baseX || r.tipX < 450 {
		t.Errorf("unexpected right arrow: %+v ok=%t", r, ok)
	}
	if l.midY != 250 || r.midY != 250 {
		t.Errorf("arrows not vertically centered: left=%v right=%v", l.midY, r.midY)
	}
}

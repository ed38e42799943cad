package ring

import (
	"testing"
	"time"

	"github.com/matzehuels/ringlayout/pkg/observability"
)

type recordingHooks struct {
	inserts   [][2]int
	removes   [][2]int
	refreshes int
}

func (r *recordingHooks) OnInsert(index, count int) {
	r.inserts = append(r.inserts, [2]int{index, count})
}

func (r *recordingHooks) OnRemove(index, count int) {
	r.removes = append(r.removes, [2]int{index, count})
}

func (r *recordingHooks) OnRefresh(int, time.Duration) {
	r.refreshes++
}

func setLayoutHooks(t *testing.T, h observability.LayoutHooks) {
	t.Helper()
	observability.SetLayoutHooks(h)
	t.Cleanup(observability.Reset)
}

package glcore

import (
	"strings"
	"testing"
)

func TestHandleCacheRefillsInBatches(t *testing.T) {
	drv := newFakeAPI()
	hc := newHandleCache(drv, 0)
	seen := map[uint32]bool{}
	for i := 0; i < textureNamePoolBatch+1; i++ {
		n := hc.AllocTextureName()
		if seen[n] {
			t.Fatalf("duplicate texture name %d at iteration %d", n, i)
		}
		seen[n] = true
	}
	genCalls := 0
	for _, c := range drv.Calls {
		if strings.HasPrefix(c, "GenTexture->") {
			genCalls++
		}
	}
	if genCalls != 2*textureNamePoolBatch {
		t.Errorf("expected two refills (%d names generated), got %d", 2*textureNamePoolBatch, genCalls)
	}
}

func TestHandleCacheDrainDeletesUnusedNames(t *testing.T) {
	drv := newFakeAPI()
	hc := newHandleCache(drv, 0)
	hc.AllocTextureName()
	hc.drain()
	deletes := 0
	for _, c := range drv.Calls {
		if strings.HasPrefix(c, "DeleteTexture(") {
			deletes++
		}
	}
	if deletes != textureNamePoolBatch-1 {
		t.Errorf("expected %d deletes (remaining pool), got %d", textureNamePoolBatch-1, deletes)
	}
	if len(hc.names) != 0 {
		t.Errorf("expected names slice emptied after drain, got %d remaining", len(hc.names))
	}
}

func TestBinderStateDefaultFBOAndTargetSize(t *testing.T) {
	var s BinderState
	s.SetDefaultFBO(42)
	s.SetTargetSize(800, 600)
	if s.g_defaultFBO != 42 || s.targetWidth_ != 800 || s.targetHeight_ != 600 {
		t.Errorf("unexpected state after setters: %+v", s)
	}
}

package glcore

import (
	"strings"
	"testing"
)

func TestCreateDeviceObjectsIsIdempotent(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	d.CreateDeviceObjects()
	first := d.globalVAO
	d.CreateDeviceObjects()
	if d.globalVAO != first {
		t.Errorf("expected globalVAO unchanged on second call, got %d want %d", d.globalVAO, first)
	}
	genCalls := 0
	for _, c := range drv.Calls {
		if c == "GenVertexArray->1" {
			genCalls++
		}
	}
	if genCalls != 1 {
		t.Errorf("expected exactly one GenVertexArray call, got %d", genCalls)
	}
}

func TestDestroyDeviceObjectsReleasesVAOAndTextureNames(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	d.CreateDeviceObjects()
	d.AllocTextureName()
	d.DestroyDeviceObjects()
	if d.globalVAO != 0 {
		t.Errorf("expected globalVAO reset to 0, got %d", d.globalVAO)
	}
	foundDeleteVAO := false
	for _, c := range drv.Calls {
		if c == "DeleteVertexArray(1)" {
			foundDeleteVAO = true
		}
	}
	if !foundDeleteVAO {
		t.Errorf("expected DeleteVertexArray call, got %v", drv.Calls)
	}
	texDeletes := 0
	for _, c := range drv.Calls {
		if strings.HasPrefix(c, "DeleteTexture(") {
			texDeletes++
		}
	}
	if texDeletes != textureNamePoolBatch-1 {
		t.Errorf("expected %d unused texture names deleted, got %d", textureNamePoolBatch-1, texDeletes)
	}
}

func TestDestroyDeviceObjectsIsIdempotent(t *testing.T) {
	d, _ := newTestDevice(FeatureProbe{})
	d.CreateDeviceObjects()
	d.DestroyDeviceObjects()
	d.DestroyDeviceObjects() // must not panic or double-delete.
}

func TestSetDefaultFBOAndTargetSizeForwardToBinderState(t *testing.T) {
	d, _ := newTestDevice(FeatureProbe{})
	d.SetDefaultFBO(7)
	d.SetTargetSize(1024, 768)
	if d.state.g_defaultFBO != 7 {
		t.Errorf("SetDefaultFBO did not reach BinderState, got %d", d.state.g_defaultFBO)
	}
	if d.state.targetWidth_ != 1024 || d.state.targetHeight_ != 768 {
		t.Errorf("SetTargetSize did not reach BinderState: %dx%d", d.state.targetWidth_, d.state.targetHeight_)
	}
}

func TestLogStepsDoesNotExecuteSteps(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	d.LogSteps([]InitStep{&CreateBufferStep{Buf: &Buffer{}, Target: glArrayBuffer, Size: 4}})
	if len(drv.Calls) != 0 {
		t.Errorf("expected LogSteps to avoid driver calls, got %v", drv.Calls)
	}
}

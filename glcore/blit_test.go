package glcore

import "testing"

func TestCopyRejectsDepthAspect(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	err := d.Copy(&Texture{Handle: 1}, &Texture{Handle: 2}, AspectDepth, 0, 0, 0, 0, 4, 4)
	if err == nil {
		t.Fatal("expected error for depth-aspect Copy")
	}
	if len(drv.Calls) != 0 {
		t.Errorf("expected no driver calls for a rejected depth copy, got %v", drv.Calls)
	}
}

func TestCopyDispatchesColorAspectToDriver(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	src := &Texture{Handle: 7}
	dst := &Texture{Handle: 8}
	if err := d.Copy(src, dst, AspectColor, 1, 2, 3, 4, 16, 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCalls(t, drv.Calls, []string{"CopySubImage(7->8)"})
}

func TestOpenBlitInterfacesPanic(t *testing.T) {
	d, _ := newTestDevice(FeatureProbe{})
	cases := []func(){
		func() { d.PerformBlit(nil, nil, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0) },
		func() { d.PerformReadback(nil, 0, 0, 0, 0, 0, 0, nil) },
		func() { d.PerformReadbackImage(nil, 0, 0, 0, 0, 0, 0) },
		func() { d.CopyReadbackBuffer(0, 0, 0, 0, 0, nil) },
	}
	for i, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected panic", i)
				}
			}()
			fn()
		}()
	}
}
